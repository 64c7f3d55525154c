package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/yurayurastudio/studio_backend/controllers"
	"github.com/yurayurastudio/studio_backend/middleware"
	"github.com/yurayurastudio/studio_backend/services"
)

// RegisterUserRoutes registers account management routes
func RegisterUserRoutes(g *echo.Group, uc *controllers.UserController, policy services.Policy) {
	manageUsers := middleware.Authorize(policy.CanManageUsers)

	g.GET("/users", uc.ListUsers, manageUsers)
	g.POST("/users", uc.CreateUser, manageUsers)
	g.POST("/users/fcm-token", uc.UpdateFCMToken)
}
