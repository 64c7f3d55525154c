package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// NotificationType identifies why a notification was sent
type NotificationType string

const (
	NotificationProjectCreated    NotificationType = "PROJECT_CREATED"
	NotificationProjectAssigned   NotificationType = "PROJECT_ASSIGNED"
	NotificationProjectUpdated    NotificationType = "PROJECT_UPDATED"
	NotificationProjectCompleted  NotificationType = "PROJECT_COMPLETED"
	NotificationRewardDistributed NotificationType = "REWARD_DISTRIBUTED"
)

// Notification model
type Notification struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	UserID    primitive.ObjectID `json:"userId" bson:"userId"`
	Title     string             `json:"title" bson:"title"`
	Message   string             `json:"message" bson:"message"`
	Type      NotificationType   `json:"type" bson:"type"`
	Data      map[string]string  `json:"data,omitempty" bson:"data,omitempty"`
	IsRead    bool               `json:"isRead" bson:"isRead"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

// NotificationSettings are a user's opt-ins per notification kind
type NotificationSettings struct {
	UserID                  primitive.ObjectID `json:"userId" bson:"userId"`
	NotifyProjectCreated    bool               `json:"notifyProjectCreated" bson:"notifyProjectCreated"`
	NotifyProjectUpdated    bool               `json:"notifyProjectUpdated" bson:"notifyProjectUpdated"`
	NotifyProjectCompleted  bool               `json:"notifyProjectCompleted" bson:"notifyProjectCompleted"`
	NotifyRewardDistributed bool               `json:"notifyRewardDistributed" bson:"notifyRewardDistributed"`
}

// DefaultNotificationSettings enables every kind
func DefaultNotificationSettings(userID primitive.ObjectID) *NotificationSettings {
	return &NotificationSettings{
		UserID:                  userID,
		NotifyProjectCreated:    true,
		NotifyProjectUpdated:    true,
		NotifyProjectCompleted:  true,
		NotifyRewardDistributed: true,
	}
}

// Allows reports whether the user wants notifications of kind t
func (s *NotificationSettings) Allows(t NotificationType) bool {
	switch t {
	case NotificationProjectCreated:
		return s.NotifyProjectCreated
	case NotificationProjectAssigned, NotificationProjectUpdated:
		return s.NotifyProjectUpdated
	case NotificationProjectCompleted:
		return s.NotifyProjectCompleted
	case NotificationRewardDistributed:
		return s.NotifyRewardDistributed
	}
	return true
}

// UpdateNotificationSettingsRequest replaces all opt-ins at once
type UpdateNotificationSettingsRequest struct {
	NotifyProjectCreated    bool `json:"notifyProjectCreated"`
	NotifyProjectUpdated    bool `json:"notifyProjectUpdated"`
	NotifyProjectCompleted  bool `json:"notifyProjectCompleted"`
	NotifyRewardDistributed bool `json:"notifyRewardDistributed"`
}
