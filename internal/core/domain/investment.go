package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Investment is a user's purchase of a Package for a fixed amount and
// duration. EndDate is derived at creation (StartDate + DurationMonths).
// TotalEarned stays zero until the maturity sweep settles the investment.
type Investment struct {
	ID             int64           `json:"id"`
	UserID         int64           `json:"user_id"`
	PackageID      int64           `json:"package_id"`
	Amount         decimal.Decimal `json:"amount"`
	StartDate      time.Time       `json:"start_date"`
	EndDate        time.Time       `json:"end_date"`
	DurationMonths int             `json:"duration_months"`
	IsActive       bool            `json:"is_active"`
	TotalEarned    decimal.Decimal `json:"total_earned"`
}

// Matured reports whether the investment's term has elapsed at the given time.
func (i *Investment) Matured(now time.Time) bool {
	return now.After(i.EndDate)
}
