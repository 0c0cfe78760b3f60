package ports

import "github.com/autovest/investment-system/internal/core/domain"

// TransactionRepository defines persistence for the ledger. Creating a
// transaction is the single authority for balance mutation: the repository
// applies the signed rule (deposit/return credit, withdrawal/investment
// debit) to the owning user as part of the append. Callers are responsible
// for precondition checks (sufficient balance) before appending.
type TransactionRepository interface {
	// Create assigns the next id, stamps Date, defaults Status to completed,
	// applies the balance rule, and returns the stored value.
	Create(tx *domain.Transaction) *domain.Transaction
	Get(id int64) (*domain.Transaction, bool)
	// List returns transactions in insertion order, which is chronological
	// order in this single-process design. UserID 0 returns all entries.
	List(userID int64) []*domain.Transaction
}
