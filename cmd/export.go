package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"pbpd-order-service/internal/config"
	"pbpd-order-service/internal/excel"
	"pbpd-order-service/internal/service"
)

var exportOut string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the orders workbook to a local file without running the server",
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVarP(&exportOut, "out", "o", "", "output .xlsx path (defaults to a dated name)")
}

func runExport(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	setupLogging(cfg.LogLevel)

	svc := service.NewOrderService(cfg.OrdersPath(), cfg.UploadsDir)
	orders, err := svc.List(context.Background())
	if err != nil {
		return fmt.Errorf("list orders: %w", err)
	}
	f, err := excel.Export(orders)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	defer f.Close()

	out := exportOut
	if out == "" {
		out = fmt.Sprintf("data_order_pelanggan_%s.xlsx", time.Now().Format("2006-01-02"))
	}
	if err := f.SaveAs(out); err != nil {
		return fmt.Errorf("save %s: %w", out, err)
	}
	slog.Info("export written", "orders", len(orders), "file", out)
	return nil
}
