package services

import (
	"context"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/yurayurastudio/studio_backend/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const notificationListLimit = 100

// notificationService implements the NotificationService interface. The
// realtime, mail and push channels are optional.
type notificationService struct {
	notifications NotificationRepository
	settings      NotificationSettingsRepository
	users         UserRepository
	realtime      RealtimePublisher
	mailer        Mailer
	push          PushSender
	log           logrus.FieldLogger
}

// NotificationChannels groups the optional delivery channels
type NotificationChannels struct {
	Realtime RealtimePublisher
	Mailer   Mailer
	Push     PushSender
}

// NewNotificationService creates a notification service
func NewNotificationService(notifications NotificationRepository, settings NotificationSettingsRepository, users UserRepository, channels NotificationChannels, log logrus.FieldLogger) NotificationService {
	return &notificationService{
		notifications: notifications,
		settings:      settings,
		users:         users,
		realtime:      channels.Realtime,
		mailer:        channels.Mailer,
		push:          channels.Push,
		log:           log,
	}
}

// Notify stores the notification and fans it out over the configured
// channels. Only a failure to store it is returned; channel failures are logged.
func (s *notificationService) Notify(ctx context.Context, userID primitive.ObjectID, kind models.NotificationType, title, message string, data map[string]string) error {
	settings, err := s.settingsFor(ctx, userID)
	if err != nil {
		return err
	}
	if !settings.Allows(kind) {
		s.log.WithFields(logrus.Fields{"userId": userID.Hex(), "type": kind}).Debug("Notification muted by user settings")
		return nil
	}

	n := &models.Notification{
		UserID:    userID,
		Title:     title,
		Message:   message,
		Type:      kind,
		Data:      data,
		CreatedAt: time.Now(),
	}
	if err := s.notifications.Create(ctx, n); err != nil {
		return fmt.Errorf("failed to save notification for user %s: %w", userID.Hex(), err)
	}

	entry := s.log.WithFields(logrus.Fields{"userId": userID.Hex(), "type": kind})

	if s.realtime != nil {
		if err := s.realtime.Publish(userID, n); err != nil {
			entry.WithError(err).Debug("Realtime delivery skipped")
		}
	}

	if s.mailer == nil && s.push == nil {
		return nil
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil || user == nil {
		entry.WithError(err).Warn("Recipient lookup failed, skipping mail and push")
		return nil
	}

	if s.mailer != nil && user.Email != "" {
		body := message
		if link := data["link"]; link != "" {
			body += "\n\n" + link
		}
		if err := s.mailer.Send(user.Email, title, body); err != nil {
			entry.WithError(err).Warn("Failed to send notification email")
		}
	}

	if s.push != nil && user.FCMToken != "" {
		pushData := map[string]string{"type": string(kind), "timestamp": n.CreatedAt.Format(time.RFC3339)}
		for k, v := range data {
			pushData[k] = v
		}
		if err := s.push.Send(ctx, user.FCMToken, title, message, pushData); err != nil {
			entry.WithError(err).Warn("Failed to send push notification")
		}
	}
	return nil
}

// List returns the caller's most recent notifications
func (s *notificationService) List(ctx context.Context, actor Principal) ([]*models.Notification, error) {
	list, err := s.notifications.ListByUser(ctx, actor.UserID, notificationListLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to list notifications: %w", err)
	}
	return list, nil
}

// MarkRead marks one of the caller's notifications as read
func (s *notificationService) MarkRead(ctx context.Context, actor Principal, id primitive.ObjectID) error {
	return s.notifications.MarkRead(ctx, actor.UserID, id)
}

// UnreadCount returns how many of the caller's notifications are unread
func (s *notificationService) UnreadCount(ctx context.Context, actor Principal) (int64, error) {
	count, err := s.notifications.CountUnread(ctx, actor.UserID)
	if err != nil {
		return 0, fmt.Errorf("failed to count unread notifications: %w", err)
	}
	return count, nil
}

// MarkAllRead marks every unread notification of the caller as read
func (s *notificationService) MarkAllRead(ctx context.Context, actor Principal) (int64, error) {
	updated, err := s.notifications.MarkAllRead(ctx, actor.UserID)
	if err != nil {
		return 0, fmt.Errorf("failed to mark notifications as read: %w", err)
	}
	s.log.WithFields(logrus.Fields{"userId": actor.UserID.Hex(), "updated": updated}).Debug("Notifications marked as read")
	return updated, nil
}

// GetSettings returns the caller's settings, defaults when never saved
func (s *notificationService) GetSettings(ctx context.Context, actor Principal) (*models.NotificationSettings, error) {
	return s.settingsFor(ctx, actor.UserID)
}

// UpdateSettings replaces the caller's settings
func (s *notificationService) UpdateSettings(ctx context.Context, actor Principal, req *models.UpdateNotificationSettingsRequest) (*models.NotificationSettings, error) {
	settings := &models.NotificationSettings{
		UserID:                  actor.UserID,
		NotifyProjectCreated:    req.NotifyProjectCreated,
		NotifyProjectUpdated:    req.NotifyProjectUpdated,
		NotifyProjectCompleted:  req.NotifyProjectCompleted,
		NotifyRewardDistributed: req.NotifyRewardDistributed,
	}
	if err := s.settings.Upsert(ctx, settings); err != nil {
		return nil, fmt.Errorf("failed to save notification settings: %w", err)
	}
	return settings, nil
}

func (s *notificationService) settingsFor(ctx context.Context, userID primitive.ObjectID) (*models.NotificationSettings, error) {
	settings, err := s.settings.Get(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load notification settings for user %s: %w", userID.Hex(), err)
	}
	if settings == nil {
		return models.DefaultNotificationSettings(userID), nil
	}
	return settings, nil
}
