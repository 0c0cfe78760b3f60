package ports

import "github.com/autovest/investment-system/internal/core/domain"

// UserRepository defines persistence operations for users. Read misses are
// values (comma-ok), never errors; business-rule errors belong to services.
type UserRepository interface {
	// Create assigns the next id and CreatedAt, stores the user, and returns
	// the stored value.
	Create(user *domain.User) *domain.User
	Get(id int64) (*domain.User, bool)
	// GetByUsername performs a case-sensitive exact match.
	GetByUsername(username string) (*domain.User, bool)
	// List returns all users in insertion order.
	List() []*domain.User
}
