package handler

import (
	"net/http"

	"hirehub/internal/delivery/http/middleware"
	"hirehub/internal/delivery/http/response"

	"github.com/labstack/echo/v4"
)

// UserHandler serves the authenticated user endpoints.
type UserHandler struct{}

// NewUserHandler is the constructor for UserHandler.
func NewUserHandler() *UserHandler {
	return &UserHandler{}
}

// Me returns the identity extracted from the validated access token.
func (h *UserHandler) Me(c echo.Context) error {
	email, ok := c.Get(middleware.ContextKeyEmail).(string)
	if !ok || email == "" {
		return response.Unauthorized(c, "TOKEN_INVALID", "Invalid identity in token")
	}

	roles, _ := c.Get(middleware.ContextKeyRoles).([]string)

	return response.Success(c, http.StatusOK, map[string]any{
		"email": email,
		"roles": roles,
	}, "Profile retrieved successfully")
}
