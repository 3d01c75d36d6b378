package handler

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"pbpd-order-service/internal/errs"
	"pbpd-order-service/internal/excel"
	"pbpd-order-service/internal/service"
)

// excelField is the multipart file field carrying a workbook upload.
const excelField = "excelFile"

type ExcelHandler struct {
	svc *service.OrderService
}

func NewExcelHandler(svc *service.OrderService) *ExcelHandler {
	return &ExcelHandler{svc: svc}
}

// Export streams the full orders collection as a styled xlsx download.
func (h *ExcelHandler) Export(c *gin.Context) {
	orders, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to export data to Excel", "error": err.Error()})
		return
	}
	f, err := excel.Export(orders)
	if err != nil {
		if errors.Is(err, errs.ErrNoOrders) {
			c.JSON(http.StatusNotFound, gin.H{"message": "No order data available for export."})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to export data to Excel", "error": err.Error()})
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("data_order_pelanggan_%s.xlsx", time.Now().Format("2006-01-02"))
	c.Header("Content-Type", excel.ContentType)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	if err := f.Write(c.Writer); err != nil {
		// Headers are gone; nothing left to do but log via gin recovery path.
		_ = c.Error(err)
	}
}

// Import ingests an uploaded workbook and appends its rows to the
// collection. The temporary upload is removed regardless of outcome.
func (h *ExcelHandler) Import(c *gin.Context) {
	file, err := c.FormFile(excelField)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "No file uploaded."})
		return
	}
	tmp := filepath.Join(os.TempDir(), fmt.Sprintf("%d-%s", time.Now().UnixNano(), filepath.Base(file.Filename)))
	if err := c.SaveUploadedFile(file, tmp); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store uploaded file", "error": err.Error()})
		return
	}
	defer os.Remove(tmp)

	rows, err := excel.ParseWorkbook(tmp)
	if err != nil {
		var missing *excel.MissingHeadersError
		switch {
		case errors.As(err, &missing):
			c.JSON(http.StatusBadRequest, gin.H{"message": fmt.Sprintf("Missing required columns in Excel file: %s", strings.Join(missing.Headers, ", "))})
		case errors.Is(err, excel.ErrNoWorksheet):
			c.JSON(http.StatusBadRequest, gin.H{"message": "First worksheet not found or empty."})
		default:
			c.JSON(http.StatusBadRequest, gin.H{"message": "Failed to process Excel file.", "error": err.Error()})
		}
		return
	}

	count, err := h.svc.BulkCreate(c.Request.Context(), rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to process Excel file.", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":       fmt.Sprintf("Successfully imported %d orders from Excel file.", count),
		"importedCount": count,
	})
}
