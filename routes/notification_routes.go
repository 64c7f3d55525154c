package routes

import (
	"github.com/labstack/echo/v4"

	"github.com/yurayurastudio/studio_backend/controllers"
)

// RegisterNotificationRoutes registers all notification-related routes
func RegisterNotificationRoutes(g *echo.Group, nc *controllers.NotificationController) {
	g.GET("/notifications", nc.ListNotifications)
	g.GET("/notifications/unread-count", nc.UnreadCount)
	g.POST("/notifications/mark-all-read", nc.MarkAllRead)
	g.PATCH("/notifications/:id/read", nc.MarkRead)
	g.GET("/notification-settings", nc.GetSettings)
	g.POST("/notification-settings", nc.UpdateSettings)
}
