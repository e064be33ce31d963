package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"texarea-backend/internal/domains/auth"
	"texarea-backend/internal/shared/response"
)

type AuthHandler struct {
	service auth.Service
}

func NewAuthHandler(svc auth.Service) *AuthHandler {
	return &AuthHandler{
		service: svc,
	}
}

// Login handles POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req auth.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "INVALID_PAYLOAD", "failed to parse request body", err.Error())
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req)
	if err != nil {
		var vErrs validation.Errors
		if errors.As(err, &vErrs) {
			response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "request validation failed", vErrs)
			return
		}
		response.ErrorResponse(c, auth.ToHTTPStatus(err), auth.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, resp)
}

// Check handles GET /api/auth/check. AuthMiddleware has already
// validated the token and stashed the identity on the context.
func (h *AuthHandler) Check(c *gin.Context) {
	response.Success(c, http.StatusOK, auth.SessionResponse{
		Username: c.GetString("username"),
		Role:     c.GetString("role"),
	})
}

// Logout handles POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.service.Logout(c.Request.Context(), c.GetString("authToken")); err != nil {
		response.ErrorResponse(c, auth.ToHTTPStatus(err), auth.ToErrorCode(err), err.Error())
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "logged out"})
}
