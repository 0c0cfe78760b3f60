package ports

import (
	"github.com/shopspring/decimal"

	"github.com/autovest/investment-system/internal/core/domain"
)

// PackagePatch lists exactly the package fields an admin may change.
// Nil pointers leave the existing value untouched.
type PackagePatch struct {
	Name          *string
	Description   *string
	Tier          *string
	WeeklyReturn  *decimal.Decimal
	MinInvestment *decimal.Decimal
	ImageURL      *string
	IsActive      *bool
}

// PackageRepository defines persistence operations for investment packages.
type PackageRepository interface {
	// Create assigns the next id, defaults IsActive to true, and returns the
	// stored value.
	Create(pkg *domain.Package) *domain.Package
	Get(id int64) (*domain.Package, bool)
	// List returns all packages in insertion order.
	List() []*domain.Package
	// Update shallow-merges patch onto the existing record. The second return
	// is false when the id does not exist; update never creates.
	Update(id int64, patch PackagePatch) (*domain.Package, bool)
}
