package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type AdminHandler struct {
	password string
}

func NewAdminHandler(password string) *AdminHandler {
	return &AdminHandler{password: password}
}

type verifyPasswordRequest struct {
	Password string `json:"password"`
}

// VerifyPassword is a plain equality check against the configured admin
// credential; it gates destructive client flows.
func (h *AdminHandler) VerifyPassword(c *gin.Context) {
	var req verifyPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "invalid body"})
		return
	}
	if req.Password != h.password {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid password."})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Password verified successfully."})
}
