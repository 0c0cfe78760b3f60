package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger entry. The type carries the sign:
// amounts are always stored positive, and the balance rule decides whether
// an entry credits or debits the owning user.
type TransactionType string

const (
	TypeDeposit    TransactionType = "deposit"
	TypeWithdrawal TransactionType = "withdrawal"
	TypeInvestment TransactionType = "investment"
	TypeReturn     TransactionType = "return"
)

// Credits reports whether the type increases the user's balance.
func (t TransactionType) Credits() bool {
	return t == TypeDeposit || t == TypeReturn
}

// Valid reports whether t is one of the four known transaction types.
func (t TransactionType) Valid() bool {
	switch t {
	case TypeDeposit, TypeWithdrawal, TypeInvestment, TypeReturn:
		return true
	}
	return false
}

type TransactionStatus string

const (
	StatusPending   TransactionStatus = "pending"
	StatusCompleted TransactionStatus = "completed"
)

// Transaction is an immutable ledger entry recording a balance-affecting
// event. InvestmentID is zero when the entry is not tied to an investment.
type Transaction struct {
	ID           int64             `json:"id"`
	UserID       int64             `json:"user_id"`
	InvestmentID int64             `json:"investment_id,omitempty"`
	Type         TransactionType   `json:"type"`
	Amount       decimal.Decimal   `json:"amount"`
	Description  string            `json:"description,omitempty"`
	Status       TransactionStatus `json:"status"`
	Date         time.Time         `json:"date"`
}
