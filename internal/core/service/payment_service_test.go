package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/autovest/investment-system/internal/core/domain"
	"github.com/autovest/investment-system/internal/store"
)

// failingDedup simulates an unreachable idempotency store.
type failingDedup struct{}

func (failingDedup) Lookup(context.Context, string) (string, bool, error) {
	return "", false, errors.New("connection refused")
}

func (failingDedup) Store(context.Context, string, string) error {
	return errors.New("connection refused")
}

func TestCreateIntent_IssuesMockSecret(t *testing.T) {
	svc := NewPaymentService(store.NewIntentStore(), discardLogger)

	intent, err := svc.CreateIntent(context.Background(), 1, decimal.NewFromInt(500), "")
	if err != nil {
		t.Fatalf("create intent: %v", err)
	}
	if !strings.HasPrefix(intent.ClientSecret, "pi_mock_") {
		t.Errorf("unexpected client secret format: %s", intent.ClientSecret)
	}
	if intent.AlreadyExisted {
		t.Error("fresh intent must not be marked as replay")
	}
}

func TestCreateIntent_IdempotencyKeyReplays(t *testing.T) {
	svc := NewPaymentService(store.NewIntentStore(), discardLogger)

	first, err := svc.CreateIntent(context.Background(), 1, decimal.NewFromInt(500), "key-1")
	if err != nil {
		t.Fatalf("first intent: %v", err)
	}
	second, err := svc.CreateIntent(context.Background(), 1, decimal.NewFromInt(500), "key-1")
	if err != nil {
		t.Fatalf("second intent: %v", err)
	}

	if second.ClientSecret != first.ClientSecret {
		t.Error("same idempotency key must return the same client secret")
	}
	if !second.AlreadyExisted {
		t.Error("replay must be flagged")
	}

	third, _ := svc.CreateIntent(context.Background(), 1, decimal.NewFromInt(500), "key-2")
	if third.ClientSecret == first.ClientSecret {
		t.Error("different keys must yield different intents")
	}
}

func TestCreateIntent_RejectsNonPositiveAmount(t *testing.T) {
	svc := NewPaymentService(store.NewIntentStore(), discardLogger)

	_, err := svc.CreateIntent(context.Background(), 1, decimal.Zero, "")
	if !errors.Is(err, domain.ErrInvalidTransaction) {
		t.Fatalf("expected ErrInvalidTransaction, got %v", err)
	}
}

func TestCreateIntent_DedupFailureStillIssues(t *testing.T) {
	svc := NewPaymentService(failingDedup{}, discardLogger)

	intent, err := svc.CreateIntent(context.Background(), 1, decimal.NewFromInt(500), "key-1")
	if err != nil {
		t.Fatalf("intent must be issued despite dedup failure, got %v", err)
	}
	if intent.ClientSecret == "" {
		t.Error("expected a client secret")
	}
}
