package ports

import (
	"context"

	"github.com/shopspring/decimal"
)

// PaymentIntent is the mocked payment-processor handshake. AlreadyExisted is
// true when an Idempotency-Key matched a previously issued intent.
type PaymentIntent struct {
	ClientSecret   string
	AlreadyExisted bool
}

type PaymentService interface {
	CreateIntent(ctx context.Context, userID int64, amount decimal.Decimal, idempotencyKey string) (*PaymentIntent, error)
}
