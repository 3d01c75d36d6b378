package handler

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"pbpd-order-service/internal/errs"
	"pbpd-order-service/internal/model"
	"pbpd-order-service/internal/service"
)

type OptionsHandler struct {
	svc *service.OptionsService
}

func NewOptionsHandler(svc *service.OptionsService) *OptionsHandler {
	return &OptionsHandler{svc: svc}
}

func (h *OptionsHandler) List(c *gin.Context) {
	options, err := h.svc.List(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to retrieve options", "error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, options)
}

func (h *OptionsHandler) ReplaceAll(c *gin.Context) {
	var options model.OptionMap
	if err := c.ShouldBindJSON(&options); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid options data provided. Expected an object with categories."})
		return
	}
	if err := h.svc.ReplaceAll(c.Request.Context(), options); err != nil {
		h.writeError(c, "", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "All options updated successfully.", "updatedOptions": options})
}

func (h *OptionsHandler) ReplaceCategory(c *gin.Context) {
	category := model.Category(c.Param("category"))
	var values []string
	if err := c.ShouldBindJSON(&values); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Request body for category update must be an array."})
		return
	}
	if err := h.svc.ReplaceCategory(c.Request.Context(), category, values); err != nil {
		h.writeError(c, category, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": fmt.Sprintf("Options for category '%s' updated successfully.", category),
		"options": values,
	})
}

type addValueRequest struct {
	Value string `json:"value" binding:"required"`
}

func (h *OptionsHandler) AddValue(c *gin.Context) {
	category := model.Category(c.Param("category"))
	var req addValueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Request body must carry a non-empty 'value'."})
		return
	}
	if err := h.svc.AddValue(c.Request.Context(), category, req.Value); err != nil {
		h.writeError(c, category, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": fmt.Sprintf("Value added to category '%s'.", category)})
}

func (h *OptionsHandler) RemoveValue(c *gin.Context) {
	category := model.Category(c.Param("category"))
	value := c.Param("value")
	if err := h.svc.RemoveValue(c.Request.Context(), category, value); err != nil {
		h.writeError(c, category, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": fmt.Sprintf("Value removed from category '%s'.", category)})
}

func (h *OptionsHandler) writeError(c *gin.Context, category model.Category, err error) {
	switch {
	case errors.Is(err, errs.ErrCategoryNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Category '%s' not found in options.", category)})
	case errors.Is(err, errs.ErrValueNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": fmt.Sprintf("Value not found in category '%s'.", category)})
	case errors.Is(err, errs.ErrDuplicateValue):
		c.JSON(http.StatusBadRequest, gin.H{"message": fmt.Sprintf("Duplicate value for category '%s'.", category)})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to update options", "error": err.Error()})
	}
}
