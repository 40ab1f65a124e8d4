package handler

import (
	"github.com/brightbreeze/billing-api/internal/application/service"
	"github.com/brightbreeze/billing-api/internal/presentation/http/dto/request"
	"github.com/brightbreeze/billing-api/internal/presentation/http/dto/response"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates an operator and issues a token
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	result, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", result)
}

// Me returns the authenticated operator's identity
func (h *AuthHandler) Me(c *gin.Context) {
	response.OK(c, "Operator retrieved successfully", gin.H{
		"username": GetUsername(c),
		"role":     GetRole(c),
	})
}
