package utils

import (
	"context"
	"fmt"
	"strings"
	"time"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
)

const fcmChannelID = "studio_fcm_channel"

type messageSender interface {
	Send(ctx context.Context, message *messaging.Message) (string, error)
}

// PushSender delivers notifications through Firebase Cloud Messaging
type PushSender struct {
	client messageSender
}

// NewPushSender returns nil when Firebase is not initialized
func NewPushSender(ctx context.Context, app *firebase.App) (*PushSender, error) {
	if app == nil {
		return nil, nil
	}
	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize messaging client: %w", err)
	}
	return &PushSender{client: client}, nil
}

// Send implements services.PushSender
func (p *PushSender) Send(ctx context.Context, token, title, body string, data map[string]string) error {
	if token == "" {
		return fmt.Errorf("no FCM token")
	}
	_, err := p.client.Send(ctx, buildPushMessage(token, title, body, data))
	if err != nil {
		return fmt.Errorf("failed to send FCM notification: %w", err)
	}
	return nil
}

func buildPushMessage(token, title, body string, data map[string]string) *messaging.Message {
	payload := map[string]string{
		"timestamp": time.Now().Format(time.RFC3339),
	}
	for k, v := range data {
		payload[k] = v
	}
	badge := 1

	return &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: payload,
		Android: &messaging.AndroidConfig{
			Priority: "high",
			Notification: &messaging.AndroidNotification{
				Sound:     "default",
				ChannelID: fcmChannelID,
			},
		},
		APNS: &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{
				Aps: &messaging.Aps{
					Alert: &messaging.ApsAlert{
						Title: title,
						Body:  body,
					},
					Sound:    "default",
					Badge:    &badge,
					Category: strings.ToUpper(payload["type"]),
				},
			},
		},
	}
}
