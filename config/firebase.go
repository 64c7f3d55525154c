package config

import (
	"context"
	"encoding/base64"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

// InitFirebase initializes the Firebase Admin SDK. It returns a nil app when
// no credentials are configured, which disables FCM push.
func InitFirebase(ctx context.Context, cfg *Config, log *logrus.Logger) (*firebase.App, error) {
	var opt option.ClientOption

	switch {
	case cfg.FirebaseCredentialsBase64 != "":
		log.Info("Using Firebase credentials from base64 environment variable")
		decoded, err := base64.StdEncoding.DecodeString(cfg.FirebaseCredentialsBase64)
		if err != nil {
			return nil, fmt.Errorf("decode firebase credentials: %w", err)
		}
		opt = option.WithCredentialsJSON(decoded)
	case cfg.FirebaseCredentialsFile != "":
		log.WithField("file", cfg.FirebaseCredentialsFile).Info("Using Firebase credentials file")
		opt = option.WithCredentialsFile(cfg.FirebaseCredentialsFile)
	default:
		log.Warn("Firebase credentials not configured, push notifications disabled")
		return nil, nil
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.FirebaseProjectID}, opt)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}
	return app, nil
}
