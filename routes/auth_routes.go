package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/yurayurastudio/studio_backend/middleware"
)

// RegisterAuthRoutes sets up login and the current-user route
func RegisterAuthRoutes(e *echo.Echo, h *Handlers) {
	e.POST("/api/auth/login", h.Auth.Login)
	e.GET("/api/auth/me", h.Auth.Me, h.JWT.Middleware(), middleware.RequirePrincipal())
}
