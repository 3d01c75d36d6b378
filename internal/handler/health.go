package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// APIHealth reports liveness plus the endpoint map clients probe for.
func APIHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "OK",
		"message":   "Server is running",
		"service":   "pbpd-order-service",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"endpoints": gin.H{
			"orders":  "/api/orders",
			"options": "/api/options",
			"export":  "/api/orders/export-xlsx",
			"upload":  "/api/upload-excel",
			"health":  "/api/health",
		},
	})
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"service": "pbpd-order-service",
		"time":    time.Now().Unix(),
	})
}

func Ready(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
