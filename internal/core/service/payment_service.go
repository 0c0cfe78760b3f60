package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/autovest/investment-system/internal/api/metrics"
	"github.com/autovest/investment-system/internal/core/domain"
	"github.com/autovest/investment-system/internal/core/ports"
)

// DedupChecker abstracts the idempotency store for payment intents (Redis
// in production, in-memory otherwise).
type DedupChecker interface {
	Lookup(ctx context.Context, key string) (clientSecret string, found bool, err error)
	Store(ctx context.Context, key, clientSecret string) error
}

// PaymentService issues mocked payment intents. No real processor is
// involved: the client secret is a placeholder the demo frontend consumes.
type PaymentService struct {
	dedup DedupChecker
	log   zerolog.Logger
}

func NewPaymentService(dedup DedupChecker, log zerolog.Logger) *PaymentService {
	return &PaymentService{dedup: dedup, log: log}
}

// CreateIntent validates the amount and issues a mock client secret. When an
// Idempotency-Key is supplied, replays return the originally issued secret.
// Dedup-store failures are logged and the intent issued anyway: a duplicate
// mock intent is harmless, a refused deposit is not.
func (s *PaymentService) CreateIntent(ctx context.Context, userID int64, amount decimal.Decimal, idempotencyKey string) (*ports.PaymentIntent, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidTransaction
	}

	if idempotencyKey != "" {
		secret, found, err := s.dedup.Lookup(ctx, idempotencyKey)
		if err != nil {
			s.log.Warn().Err(err).Str("idempotency_key", idempotencyKey).Msg("intent dedup lookup failed, issuing anyway")
		} else if found {
			metrics.PaymentIntentsTotal.WithLabelValues("replayed").Inc()
			s.log.Info().Int64("user_id", userID).Str("idempotency_key", idempotencyKey).Msg("payment intent replayed")
			return &ports.PaymentIntent{ClientSecret: secret, AlreadyExisted: true}, nil
		}
	}

	secret := fmt.Sprintf("pi_mock_%s", uuid.NewString())

	if idempotencyKey != "" {
		if err := s.dedup.Store(ctx, idempotencyKey, secret); err != nil {
			s.log.Warn().Err(err).Str("idempotency_key", idempotencyKey).Msg("failed to store intent dedup key")
		}
	}

	metrics.PaymentIntentsTotal.WithLabelValues("created").Inc()
	s.log.Info().Int64("user_id", userID).Str("amount", amount.String()).Msg("payment intent created")

	return &ports.PaymentIntent{ClientSecret: secret}, nil
}
