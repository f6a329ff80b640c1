package service

import (
	"context"

	"circlecheck/internal/domain/entity"
)

// PushGateway submits notification batches to an external push delivery service.
type PushGateway interface {
	// SendBatch submits all messages, splitting into provider-sized requests when needed.
	// Receipts are returned for every message the gateway answered for; a non-nil error means
	// at least one request failed as a whole.
	SendBatch(ctx context.Context, messages []*entity.PushMessage) ([]entity.PushReceipt, error)
}
