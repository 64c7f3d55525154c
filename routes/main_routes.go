package routes

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/yurayurastudio/studio_backend/controllers"
	"github.com/yurayurastudio/studio_backend/middleware"
	"github.com/yurayurastudio/studio_backend/services"
	"github.com/yurayurastudio/studio_backend/websocket"
)

// Handlers bundles everything the router needs
type Handlers struct {
	Auth          *controllers.AuthController
	Users         *controllers.UserController
	Projects      *controllers.ProjectController
	Rewards       *controllers.RewardController
	Notifications *controllers.NotificationController
	JWT           *middleware.JWTAuth
	Policy        services.Policy
	Hub           *websocket.Hub
	DB            *mongo.Client
}

// SetupRoutes configures all API routes by calling individual route registration functions
func SetupRoutes(e *echo.Echo, h *Handlers) {
	RegisterHealthRoutes(e, h.DB)
	RegisterAuthRoutes(e, h)

	authGroup := e.Group("/api", h.JWT.Middleware(), middleware.RequirePrincipal())
	RegisterUserRoutes(authGroup, h.Users, h.Policy)
	RegisterProjectRoutes(authGroup, h.Projects, h.Rewards)
	RegisterRewardRoutes(authGroup, h.Rewards)
	RegisterNotificationRoutes(authGroup, h.Notifications)

	// Browsers cannot send a bearer header on upgrade; the handler authenticates
	e.GET("/api/ws", websocket.HandleWebSocket(h.Hub, h.JWT))
}

// RegisterHealthRoutes reports liveness and database reachability
func RegisterHealthRoutes(e *echo.Echo, client *mongo.Client) {
	e.Match([]string{http.MethodGet, http.MethodHead}, "/health", func(c echo.Context) error {
		status := "unknown"
		if client != nil {
			ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
			defer cancel()
			if err := client.Ping(ctx, nil); err != nil {
				return c.JSON(http.StatusServiceUnavailable, map[string]string{
					"status":   "unhealthy",
					"database": "unreachable",
				})
			}
			status = "connected"
		}
		return c.JSON(http.StatusOK, map[string]string{
			"status":   "healthy",
			"database": status,
		})
	})
}
