package application

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	"pbpd-order-service/internal/config"
	"pbpd-order-service/internal/handler"
	"pbpd-order-service/internal/router"
	"pbpd-order-service/internal/service"
)

// API wires the order service stack behind one HTTP server.
type API struct {
	cfg     *config.Config
	httpSrv *http.Server
}

func NewAPI(cfg *config.Config) (*API, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, fmt.Errorf("data dir: %w", err)
	}
	if err := os.MkdirAll(cfg.UploadsDir, 0o755); err != nil {
		return nil, fmt.Errorf("uploads dir: %w", err)
	}

	orderSvc := service.NewOrderService(cfg.OrdersPath(), cfg.UploadsDir)
	optionsSvc := service.NewOptionsService(cfg.OptionsPath())

	// Touch both documents so a first run seeds them and a damaged disk
	// fails startup instead of the first request.
	if _, err := orderSvc.List(context.Background()); err != nil {
		return nil, fmt.Errorf("orders document: %w", err)
	}
	if _, err := optionsSvc.List(context.Background()); err != nil {
		return nil, fmt.Errorf("options document: %w", err)
	}

	handlers := router.Handlers{
		Orders:  handler.NewOrderHandler(orderSvc, cfg.AdminPassword),
		Options: handler.NewOptionsHandler(optionsSvc),
		Excel:   handler.NewExcelHandler(orderSvc),
		Admin:   handler.NewAdminHandler(cfg.AdminPassword),
	}

	httpSrv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router.New(handlers, cfg.UploadsDir),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	return &API{cfg: cfg, httpSrv: httpSrv}, nil
}

// Run starts the HTTP server and blocks until ctx is cancelled.
func (a *API) Run(ctx context.Context) error {
	host := a.cfg.AppHost
	if host == "0.0.0.0" {
		host = "localhost"
	}
	base := "http://" + host + ":" + a.cfg.HTTPPort
	slog.Info("HTTP server listening", "addr", a.httpSrv.Addr)
	slog.Info("endpoints",
		"api", base+"/api/",
		"swagger", base+"/swagger",
		"health", base+"/api/health")
	slog.Info("documents",
		"orders", a.cfg.OrdersPath(),
		"options", a.cfg.OptionsPath(),
		"uploads", a.cfg.UploadsDir)

	go func() {
		if err := a.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("http server", "error", err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := a.httpSrv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}
	return nil
}
