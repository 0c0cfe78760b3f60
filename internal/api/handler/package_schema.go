package handler

import "github.com/shopspring/decimal"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createPackageRequest struct {
	Name          string          `json:"name"           validate:"required"`
	Description   string          `json:"description"`
	Tier          string          `json:"tier"           validate:"required"`
	WeeklyReturn  decimal.Decimal `json:"weekly_return"  validate:"required"`
	MinInvestment decimal.Decimal `json:"min_investment" validate:"required"`
	ImageURL      string          `json:"image_url"`
}

// updatePackageRequest mirrors ports.PackagePatch: nil fields are left
// untouched, so a partial body updates only what it names.
type updatePackageRequest struct {
	Name          *string          `json:"name"`
	Description   *string          `json:"description"`
	Tier          *string          `json:"tier"`
	WeeklyReturn  *decimal.Decimal `json:"weekly_return"`
	MinInvestment *decimal.Decimal `json:"min_investment"`
	ImageURL      *string          `json:"image_url"`
	IsActive      *bool            `json:"is_active"`
}
