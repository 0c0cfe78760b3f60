package ports

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/autovest/investment-system/internal/core/domain"
)

// CreatePackageInput carries the admin payload for a new package.
type CreatePackageInput struct {
	Name          string
	Description   string
	Tier          string
	WeeklyReturn  decimal.Decimal
	MinInvestment decimal.Decimal
	ImageURL      string
}

type PackageService interface {
	List(ctx context.Context) []*domain.Package
	Get(ctx context.Context, id int64) (*domain.Package, error)
	Create(ctx context.Context, input CreatePackageInput) *domain.Package
	Update(ctx context.Context, id int64, patch PackagePatch) (*domain.Package, error)
}
