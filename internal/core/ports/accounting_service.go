package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/autovest/investment-system/internal/core/domain"
)

// PurchaseInput carries everything needed to buy into a package. UserID comes
// from the authenticated principal, never from the request body.
type PurchaseInput struct {
	UserID         int64
	PackageID      int64
	Amount         decimal.Decimal
	DurationMonths int
}

// RecordTransactionInput carries a client-initiated ledger entry.
// InvestmentID is optional and stored as-is when the caller wants to tie a
// deposit to an investment.
type RecordTransactionInput struct {
	UserID       int64
	Type         domain.TransactionType
	Amount       decimal.Decimal
	Description  string
	InvestmentID int64
}

// AccountingService is the single place allowed to drive balance mutation.
// Every method that writes serializes internally so the precondition check
// and the mutation are one unit.
type AccountingService interface {
	// PurchaseInvestment runs the all-or-nothing purchase workflow: package
	// exists, amount meets the package minimum, balance covers the amount,
	// then investment + debit transaction.
	PurchaseInvestment(ctx context.Context, input PurchaseInput) (*domain.Investment, error)
	// RecordTransaction appends a deposit or withdrawal and applies the
	// balance rule. Investment and return entries are produced internally by
	// the purchase workflow and the maturity sweep, never accepted here.
	RecordTransaction(ctx context.Context, input RecordTransactionInput) (*domain.Transaction, error)
	// SettleInvestment deactivates a matured investment and credits earned
	// through a return transaction. Settling an already-inactive investment
	// is a no-op returning (nil, nil).
	SettleInvestment(ctx context.Context, investmentID int64, earned decimal.Decimal) (*domain.Transaction, error)

	ListPortfolio(ctx context.Context, userID int64) []*domain.Investment
	ListLedger(ctx context.Context, userID int64) []*domain.Transaction
	GetUser(ctx context.Context, id int64) (*domain.User, error)
	ListUsers(ctx context.Context) []*domain.User
}
