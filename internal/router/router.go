package router

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"pbpd-order-service/api"
	"pbpd-order-service/internal/handler"
)

type Handlers struct {
	Orders  *handler.OrderHandler
	Options *handler.OptionsHandler
	Excel   *handler.ExcelHandler
	Admin   *handler.AdminHandler
}

func New(h Handlers, uploadsDir string) http.Handler {
	r := gin.New()
	r.Use(gin.Recovery())

	r.GET("/health", handler.Health)
	r.GET("/ready", handler.Ready)
	r.Static("/uploads", uploadsDir)

	r.GET("/swagger", func(c *gin.Context) { c.Redirect(http.StatusFound, "/swagger/") })
	r.GET("/swagger/*any", func(c *gin.Context) {
		if strings.TrimPrefix(c.Param("any"), "/") == "openapi.json" {
			c.Data(http.StatusOK, "application/json", api.OpenAPISpec)
			return
		}
		if strings.TrimPrefix(c.Param("any"), "/") == "" {
			c.Request.URL.Path = "/swagger/index.html"
			c.Request.RequestURI = "/swagger/index.html"
		}
		ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/openapi.json"))(c)
	})

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/health", handler.APIHealth)
		apiGroup.POST("/admin/verify-password", h.Admin.VerifyPassword)

		apiGroup.GET("/orders", h.Orders.List)
		apiGroup.POST("/orders", h.Orders.Create)
		apiGroup.PUT("/orders/:id", h.Orders.Update)
		// gin's routing tree cannot hold a static /reset next to /:id for
		// the same method, so both deletes share one route.
		apiGroup.DELETE("/orders/:id", func(c *gin.Context) {
			if c.Param("id") == "reset" {
				h.Orders.Reset(c)
				return
			}
			h.Orders.Delete(c)
		})
		apiGroup.GET("/orders/export-xlsx", h.Excel.Export)
		apiGroup.POST("/upload-excel", h.Excel.Import)

		apiGroup.GET("/options", h.Options.List)
		apiGroup.PUT("/options", h.Options.ReplaceAll)
		apiGroup.PUT("/options/:category", h.Options.ReplaceCategory)
		apiGroup.POST("/options/:category/values", h.Options.AddValue)
		apiGroup.DELETE("/options/:category/values/:value", h.Options.RemoveValue)
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"message": "Endpoint not found",
			"available_endpoints": []string{
				"GET /api/orders",
				"POST /api/orders (multipart, optional fotoPk file field)",
				"PUT /api/orders/:id (multipart, optional fotoPk file field)",
				"DELETE /api/orders/:id",
				"DELETE /api/orders/reset (body: { password })",
				"GET /api/options",
				"PUT /api/options",
				"PUT /api/options/:category (body: array of strings)",
				"POST /api/options/:category/values (body: { value })",
				"DELETE /api/options/:category/values/:value",
				"GET /api/orders/export-xlsx",
				"POST /api/upload-excel (multipart: excelFile)",
				"POST /api/admin/verify-password (body: { password })",
				"GET /api/health",
			},
		})
	})

	return r
}
