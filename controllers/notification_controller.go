package controllers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/sirupsen/logrus"
	"github.com/yurayurastudio/studio_backend/models"
	"github.com/yurayurastudio/studio_backend/services"
)

type NotificationController struct {
	notifications services.NotificationService
	log           logrus.FieldLogger
}

func NewNotificationController(notifications services.NotificationService, log logrus.FieldLogger) *NotificationController {
	return &NotificationController{notifications: notifications, log: log}
}

// ListNotifications handles GET /api/notifications
func (nc *NotificationController) ListNotifications(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return respondError(c, nc.log, err)
	}

	list, err := nc.notifications.List(c.Request().Context(), actor)
	if err != nil {
		return respondError(c, nc.log, err)
	}
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Notifications retrieved successfully",
		Data:    list,
	})
}

// MarkRead handles PATCH /api/notifications/:id/read
func (nc *NotificationController) MarkRead(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return respondError(c, nc.log, err)
	}
	id, err := objectIDParam(c, "id")
	if err != nil {
		return respondError(c, nc.log, err)
	}

	if err := nc.notifications.MarkRead(c.Request().Context(), actor, id); err != nil {
		return respondError(c, nc.log, err)
	}
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Notification marked as read",
	})
}

// UnreadCount handles GET /api/notifications/unread-count
func (nc *NotificationController) UnreadCount(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return respondError(c, nc.log, err)
	}

	count, err := nc.notifications.UnreadCount(c.Request().Context(), actor)
	if err != nil {
		return respondError(c, nc.log, err)
	}
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Unread count retrieved successfully",
		Data:    map[string]int64{"count": count},
	})
}

// MarkAllRead handles POST /api/notifications/mark-all-read
func (nc *NotificationController) MarkAllRead(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return respondError(c, nc.log, err)
	}

	updated, err := nc.notifications.MarkAllRead(c.Request().Context(), actor)
	if err != nil {
		return respondError(c, nc.log, err)
	}
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "All notifications marked as read",
		Data:    map[string]int64{"updated": updated},
	})
}

// GetSettings handles GET /api/notification-settings
func (nc *NotificationController) GetSettings(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return respondError(c, nc.log, err)
	}

	settings, err := nc.notifications.GetSettings(c.Request().Context(), actor)
	if err != nil {
		return respondError(c, nc.log, err)
	}
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Notification settings retrieved successfully",
		Data:    settings,
	})
}

// UpdateSettings handles POST /api/notification-settings
func (nc *NotificationController) UpdateSettings(c echo.Context) error {
	actor, err := principalFrom(c)
	if err != nil {
		return respondError(c, nc.log, err)
	}

	var req models.UpdateNotificationSettingsRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	settings, err := nc.notifications.UpdateSettings(c.Request().Context(), actor, &req)
	if err != nil {
		return respondError(c, nc.log, err)
	}
	return c.JSON(http.StatusOK, models.Response{
		Status:  http.StatusOK,
		Message: "Notification settings updated successfully",
		Data:    settings,
	})
}
