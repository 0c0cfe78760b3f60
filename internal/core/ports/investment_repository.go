package ports

import (
	"github.com/shopspring/decimal"

	"github.com/autovest/investment-system/internal/core/domain"
)

// InvestmentFilter narrows List results. The zero value matches everything:
// UserID 0 means all users (admin listings), nil Active means any state.
type InvestmentFilter struct {
	UserID int64
	Active *bool
}

// InvestmentPatch lists the investment fields the maturity sweep may change.
type InvestmentPatch struct {
	IsActive    *bool
	TotalEarned *decimal.Decimal
}

// InvestmentRepository defines persistence operations for investments.
type InvestmentRepository interface {
	// Create assigns the next id, stamps StartDate when unset, derives EndDate
	// from DurationMonths, and returns the stored value.
	Create(inv *domain.Investment) *domain.Investment
	Get(id int64) (*domain.Investment, bool)
	// List returns matching investments in insertion order.
	List(filter InvestmentFilter) []*domain.Investment
	Update(id int64, patch InvestmentPatch) (*domain.Investment, bool)
}
