package utils

import (
	"context"
	"os"
	"time"

	firebase "firebase.google.com/go"
	"firebase.google.com/go/messaging"
	"github.com/cenkalti/backoff/v4"
	"github.com/sirupsen/logrus"
	"google.golang.org/api/option"
)

var fcmClient *messaging.Client

// InitFCM connects to Firebase Cloud Messaging. Push delivery is optional:
// without credentials the server runs fine and reminders only log locally.
func InitFCM(log *logrus.Logger) {
	credentialsPath := os.Getenv("FIREBASE_CREDENTIALS")
	if credentialsPath == "" {
		log.Warn("FIREBASE_CREDENTIALS not set, push notifications disabled")
		return
	}

	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(context.Background(), nil, opt)
	if err != nil {
		log.WithError(err).Error("failed to initialize firebase app")
		return
	}

	client, err := app.Messaging(context.Background())
	if err != nil {
		log.WithError(err).Error("failed to get messaging client")
		return
	}

	fcmClient = client
	log.Info("firebase cloud messaging ready")
}

// SendNotification pushes a message to a single device token, retrying
// transient failures with exponential backoff.
func SendNotification(ctx context.Context, token, title, body string, data map[string]string) error {
	if fcmClient == nil || token == "" {
		return nil
	}

	message := &messaging.Message{
		Token: token,
		Notification: &messaging.Notification{
			Title: title,
			Body:  body,
		},
		Data: data,
	}

	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = 30 * time.Second

	return backoff.Retry(func() error {
		_, err := fcmClient.Send(ctx, message)
		return err
	}, backoff.WithContext(policy, ctx))
}
