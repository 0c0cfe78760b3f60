package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/autovest/investment-system/internal/core/domain"
	"github.com/autovest/investment-system/internal/core/ports"
)

// PackageService manages the investment catalog. Deactivation via Update is
// the only removal mechanism; there is no delete.
type PackageService struct {
	packages ports.PackageRepository
	log      zerolog.Logger
}

func NewPackageService(packages ports.PackageRepository, log zerolog.Logger) *PackageService {
	return &PackageService{packages: packages, log: log}
}

func (s *PackageService) List(ctx context.Context) []*domain.Package {
	return s.packages.List()
}

func (s *PackageService) Get(ctx context.Context, id int64) (*domain.Package, error) {
	pkg, ok := s.packages.Get(id)
	if !ok {
		return nil, domain.ErrPackageNotFound
	}
	return pkg, nil
}

func (s *PackageService) Create(ctx context.Context, input ports.CreatePackageInput) *domain.Package {
	pkg := s.packages.Create(&domain.Package{
		Name:          input.Name,
		Description:   input.Description,
		Tier:          input.Tier,
		WeeklyReturn:  input.WeeklyReturn,
		MinInvestment: input.MinInvestment,
		ImageURL:      input.ImageURL,
	})

	s.log.Info().Int64("package_id", pkg.ID).Str("name", pkg.Name).Str("tier", pkg.Tier).Msg("package created")
	return pkg
}

func (s *PackageService) Update(ctx context.Context, id int64, patch ports.PackagePatch) (*domain.Package, error) {
	pkg, ok := s.packages.Update(id, patch)
	if !ok {
		return nil, domain.ErrPackageNotFound
	}

	s.log.Info().Int64("package_id", pkg.ID).Bool("is_active", pkg.IsActive).Msg("package updated")
	return pkg, nil
}
