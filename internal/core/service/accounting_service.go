package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/autovest/investment-system/internal/api/metrics"
	"github.com/autovest/investment-system/internal/core/domain"
	"github.com/autovest/investment-system/internal/core/ports"
)

// AccountingService owns the balance-mutation workflows. Transaction
// creation is the sole balance authority: this service never adjusts a
// balance directly, it appends ledger entries and lets the repository's
// balance rule fire. The mutex makes each precondition check and its
// mutation a single unit, so no caller observes a half-applied purchase.
type AccountingService struct {
	mu           sync.Mutex
	users        ports.UserRepository
	packages     ports.PackageRepository
	investments  ports.InvestmentRepository
	transactions ports.TransactionRepository
	log          zerolog.Logger
}

func NewAccountingService(
	users ports.UserRepository,
	packages ports.PackageRepository,
	investments ports.InvestmentRepository,
	transactions ports.TransactionRepository,
	log zerolog.Logger,
) *AccountingService {
	return &AccountingService{
		users:        users,
		packages:     packages,
		investments:  investments,
		transactions: transactions,
		log:          log,
	}
}

// PurchaseInvestment runs the all-or-nothing purchase workflow. Every
// failure leaves the store untouched: checks complete before the first
// write, and the lock is held across both writes.
func (s *AccountingService) PurchaseInvestment(ctx context.Context, input ports.PurchaseInput) (*domain.Investment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pkg, ok := s.packages.Get(input.PackageID)
	if !ok {
		return nil, domain.ErrPackageNotFound
	}
	if input.Amount.LessThan(pkg.MinInvestment) {
		return nil, fmt.Errorf("%w: minimum for %s is %s", domain.ErrBelowMinimum, pkg.Name, pkg.MinInvestment)
	}

	user, ok := s.users.Get(input.UserID)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if user.Balance.LessThan(input.Amount) {
		return nil, domain.ErrInsufficientBalance
	}

	inv := s.investments.Create(&domain.Investment{
		UserID:         input.UserID,
		PackageID:      input.PackageID,
		Amount:         input.Amount,
		DurationMonths: input.DurationMonths,
	})

	s.transactions.Create(&domain.Transaction{
		UserID:       input.UserID,
		InvestmentID: inv.ID,
		Type:         domain.TypeInvestment,
		Amount:       input.Amount,
		Description:  fmt.Sprintf("Investment in %s", pkg.Name),
	})

	metrics.InvestmentsCreatedTotal.WithLabelValues(pkg.Tier).Inc()
	metrics.TransactionsRecordedTotal.WithLabelValues(string(domain.TypeInvestment)).Inc()
	s.log.Info().
		Int64("user_id", input.UserID).
		Int64("investment_id", inv.ID).
		Str("package", pkg.Name).
		Str("amount", input.Amount.String()).
		Msg("investment purchased")

	return inv, nil
}

// RecordTransaction appends a client-initiated deposit or withdrawal.
// Investment and return entries are produced by the purchase workflow and
// the maturity sweep; accepting them here would re-apply a balance change
// already made, so they are rejected.
func (s *AccountingService) RecordTransaction(ctx context.Context, input ports.RecordTransactionInput) (*domain.Transaction, error) {
	if input.Type != domain.TypeDeposit && input.Type != domain.TypeWithdrawal {
		return nil, domain.ErrInvalidTransaction
	}
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return nil, domain.ErrInvalidTransaction
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users.Get(input.UserID)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	if input.Type == domain.TypeWithdrawal && user.Balance.LessThan(input.Amount) {
		return nil, domain.ErrInsufficientBalance
	}

	tx := s.transactions.Create(&domain.Transaction{
		UserID:       input.UserID,
		InvestmentID: input.InvestmentID,
		Type:         input.Type,
		Amount:       input.Amount,
		Description:  input.Description,
	})

	metrics.TransactionsRecordedTotal.WithLabelValues(string(input.Type)).Inc()
	s.log.Info().
		Int64("user_id", input.UserID).
		Str("type", string(input.Type)).
		Str("amount", input.Amount.String()).
		Msg("transaction recorded")

	return tx, nil
}

// SettleInvestment closes a matured investment: marks it inactive, records
// the earned total, and credits it through a return transaction. A second
// settlement of the same investment is a no-op.
func (s *AccountingService) SettleInvestment(ctx context.Context, investmentID int64, earned decimal.Decimal) (*domain.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	inv, ok := s.investments.Get(investmentID)
	if !ok {
		return nil, domain.ErrInvestmentNotFound
	}
	if !inv.IsActive {
		return nil, nil
	}

	inactive := false
	s.investments.Update(investmentID, ports.InvestmentPatch{
		IsActive:    &inactive,
		TotalEarned: &earned,
	})

	tx := s.transactions.Create(&domain.Transaction{
		UserID:       inv.UserID,
		InvestmentID: inv.ID,
		Type:         domain.TypeReturn,
		Amount:       earned,
		Description:  fmt.Sprintf("Return on investment #%d", inv.ID),
	})

	metrics.InvestmentsSettledTotal.Inc()
	metrics.TransactionsRecordedTotal.WithLabelValues(string(domain.TypeReturn)).Inc()
	s.log.Info().
		Int64("investment_id", inv.ID).
		Int64("user_id", inv.UserID).
		Str("earned", earned.String()).
		Msg("investment settled")

	return tx, nil
}

// ListPortfolio returns the user's investments, active and completed, in
// insertion order.
func (s *AccountingService) ListPortfolio(ctx context.Context, userID int64) []*domain.Investment {
	return s.investments.List(ports.InvestmentFilter{UserID: userID})
}

// ListLedger returns the user's transactions in chronological order.
func (s *AccountingService) ListLedger(ctx context.Context, userID int64) []*domain.Transaction {
	return s.transactions.List(userID)
}

func (s *AccountingService) GetUser(ctx context.Context, id int64) (*domain.User, error) {
	user, ok := s.users.Get(id)
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *AccountingService) ListUsers(ctx context.Context) []*domain.User {
	return s.users.List()
}
