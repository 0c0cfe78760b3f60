package domain

import "github.com/shopspring/decimal"

// Package is a purchasable investment product template. Packages are never
// hard-deleted: deactivation (IsActive=false) is the only removal mechanism.
type Package struct {
	ID            int64           `json:"id"`
	Name          string          `json:"name"`
	Description   string          `json:"description,omitempty"`
	Tier          string          `json:"tier"`
	WeeklyReturn  decimal.Decimal `json:"weekly_return"`
	MinInvestment decimal.Decimal `json:"min_investment"`
	ImageURL      string          `json:"image_url,omitempty"`
	IsActive      bool            `json:"is_active"`
}
