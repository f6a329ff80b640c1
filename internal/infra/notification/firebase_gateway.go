package notification

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"circlecheck/internal/domain/entity"
	"circlecheck/internal/domain/service"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"google.golang.org/api/option"
)

// firebaseBatchSize is the Firebase limit for SendEach
const firebaseBatchSize = 500

// messagingClient is the subset of *messaging.Client used by the gateway
type messagingClient interface {
	SendEach(ctx context.Context, messages []*messaging.Message) (*messaging.BatchResponse, error)
}

type firebaseGateway struct {
	client messagingClient
	logger *slog.Logger
	// isStaleToken decides which send errors mark a token for cleanup
	isStaleToken func(err error) bool
}

// NewFirebaseGateway creates a push gateway backed by Firebase Cloud Messaging
func NewFirebaseGateway(ctx context.Context, credentialsPath string, logger *slog.Logger) (service.PushGateway, error) {
	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to initialize Firebase app")
	}

	client, err := app.Messaging(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to get messaging client")
	}

	return newFirebaseGateway(client, logger), nil
}

func newFirebaseGateway(client messagingClient, logger *slog.Logger) *firebaseGateway {
	return &firebaseGateway{
		client:       client,
		logger:       logger,
		isStaleToken: messaging.IsUnregistered,
	}
}

// SendBatch sends messages in chunks of at most 500
func (g *firebaseGateway) SendBatch(ctx context.Context, messages []*entity.PushMessage) ([]entity.PushReceipt, error) {
	receipts := make([]entity.PushReceipt, 0, len(messages))
	var firstErr error

	for start := 0; start < len(messages); start += firebaseBatchSize {
		end := min(start+firebaseBatchSize, len(messages))
		chunk := messages[start:end]

		fcmMessages := make([]*messaging.Message, 0, len(chunk))
		for _, msg := range chunk {
			fcmMessages = append(fcmMessages, toFirebaseMessage(msg))
		}

		response, err := g.client.SendEach(ctx, fcmMessages)
		if err != nil {
			g.logger.Error("[Firebase] Failed to send push chunk",
				slog.Int("offset", start),
				slog.Int("size", len(chunk)),
				slog.Any("error", err),
			)
			if firstErr == nil {
				firstErr = errors.Wrap(err, "failed to send firebase messages")
			}

			continue
		}

		for idx, sendResponse := range response.Responses {
			if idx >= len(chunk) {
				break
			}
			receipts = append(receipts, g.toReceipt(chunk[idx].To, sendResponse))
		}
	}

	return receipts, firstErr
}

func (g *firebaseGateway) toReceipt(token string, resp *messaging.SendResponse) entity.PushReceipt {
	if resp == nil {
		return entity.PushReceipt{Token: token, Status: entity.PushStatusError}
	}

	if resp.Success {
		return entity.PushReceipt{Token: token, Status: entity.PushStatusOK}
	}

	receipt := entity.PushReceipt{Token: token, Status: entity.PushStatusError}
	if resp.Error != nil {
		receipt.Message = resp.Error.Error()

		// Invalid-argument errors can come from the payload, so only unregistered tokens are stale
		if g.isStaleToken(resp.Error) {
			receipt.ErrorCode = entity.PushErrorDeviceNotRegistered
		}
	}

	return receipt
}

func toFirebaseMessage(msg *entity.PushMessage) *messaging.Message {
	fcm := &messaging.Message{
		Token: msg.To,
		Notification: &messaging.Notification{
			Title: msg.Title,
			Body:  msg.Body,
		},
		Data: stringifyData(msg.Data),
	}

	if msg.Sound != "" {
		fcm.Android = &messaging.AndroidConfig{
			Notification: &messaging.AndroidNotification{Sound: msg.Sound},
		}
		fcm.APNS = &messaging.APNSConfig{
			Payload: &messaging.APNSPayload{Aps: &messaging.Aps{Sound: msg.Sound}},
		}
	}

	return fcm
}

// stringifyData converts payload values to the string-only map FCM requires
func stringifyData(data map[string]any) map[string]string {
	if len(data) == 0 {
		return nil
	}

	out := make(map[string]string, len(data))
	for key, value := range data {
		switch v := value.(type) {
		case string:
			out[key] = v
		case float64:
			out[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case int64:
			out[key] = strconv.FormatInt(v, 10)
		case int:
			out[key] = strconv.Itoa(v)
		case bool:
			out[key] = strconv.FormatBool(v)
		default:
			out[key] = fmt.Sprint(v)
		}
	}

	return out
}
