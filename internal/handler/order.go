package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"pbpd-order-service/internal/errs"
	"pbpd-order-service/internal/model"
	"pbpd-order-service/internal/service"
)

// photoField is the multipart file field carrying the order photo.
const photoField = "fotoPk"

type OrderHandler struct {
	svc           *service.OrderService
	adminPassword string
}

func NewOrderHandler(svc *service.OrderService, adminPassword string) *OrderHandler {
	return &OrderHandler{svc: svc, adminPassword: adminPassword}
}

func (h *OrderHandler) List(c *gin.Context) {
	orders, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve orders", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, orders)
}

func (h *OrderHandler) Create(c *gin.Context) {
	var order model.Order
	for _, key := range model.FieldKeys {
		if key == photoField {
			continue
		}
		if v, ok := c.GetPostForm(key); ok {
			*order.Field(key) = v
		}
	}

	photo, ok := h.savePhoto(c)
	if !ok {
		return
	}
	order.FotoPK = photo

	created, err := h.svc.Create(c.Request.Context(), order)
	if err != nil {
		if photo != "" {
			h.svc.RemovePhoto(photo)
		}
		var verr *errs.ValidationError
		if errors.As(err, &verr) {
			c.JSON(http.StatusBadRequest, gin.H{"message": verr.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to add order", "error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Order added successfully!", "order": created})
}

func (h *OrderHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid order id"})
		return
	}

	changes := make(map[string]string)
	for _, key := range model.FieldKeys {
		if key == photoField {
			continue
		}
		if v, ok := c.GetPostForm(key); ok {
			changes[key] = v
		}
	}

	photo, ok := h.savePhoto(c)
	if !ok {
		return
	}
	if photo != "" {
		changes[photoField] = photo
	} else if v, present := c.GetPostForm(photoField); present && v == model.PhotoNone {
		// Explicit removal: the stored file is deleted by the service.
		changes[photoField] = model.PhotoNone
	}

	updated, err := h.svc.Update(c.Request.Context(), id, changes)
	if err != nil {
		if photo != "" {
			h.svc.RemovePhoto(photo)
		}
		switch {
		case errors.Is(err, errs.ErrOrderNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Order with ID %d not found.", id)})
		default:
			var verr *errs.ValidationError
			if errors.As(err, &verr) {
				c.JSON(http.StatusBadRequest, gin.H{"message": verr.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update order", "error": err.Error()})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Order with ID %d updated successfully.", id), "order": updated})
}

func (h *OrderHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid order id"})
		return
	}
	if err := h.svc.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, errs.ErrOrderNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Order with ID %d not found.", id)})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to delete order", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Order with ID %d deleted successfully.", id)})
}

type resetRequest struct {
	Password string `json:"password"`
}

func (h *OrderHandler) Reset(c *gin.Context) {
	var req resetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}
	if req.Password != h.adminPassword {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized: Invalid password."})
		return
	}
	if err := h.svc.Reset(c.Request.Context()); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to reset all orders", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All orders and associated files have been reset successfully."})
}

// savePhoto stores an uploaded photo, if any, and returns its public path.
// The second return is false when the upload failed and a response has
// already been written.
func (h *OrderHandler) savePhoto(c *gin.Context) (string, bool) {
	file, err := c.FormFile(photoField)
	if err != nil {
		return "", true
	}
	dst, public := h.svc.PhotoDest(file.Filename)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to store uploaded photo", "error": err.Error()})
		return "", false
	}
	return public, true
}
