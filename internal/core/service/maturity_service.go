package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/autovest/investment-system/internal/api/metrics"
	"github.com/autovest/investment-system/internal/core/domain"
	"github.com/autovest/investment-system/internal/core/ports"
)

const defaultSweepInterval = time.Hour

var hundred = decimal.NewFromInt(100)

// investmentSettler is the slice of AccountingService the sweep needs.
type investmentSettler interface {
	SettleInvestment(ctx context.Context, investmentID int64, earned decimal.Decimal) (*domain.Transaction, error)
}

// MaturityService is the accrual/maturity sweep: a background pass that
// closes investments whose term has elapsed and credits their earnings.
type MaturityService struct {
	investments ports.InvestmentRepository
	packages    ports.PackageRepository
	settler     investmentSettler
	interval    time.Duration
	now         func() time.Time
	log         zerolog.Logger
}

func NewMaturityService(
	investments ports.InvestmentRepository,
	packages ports.PackageRepository,
	settler investmentSettler,
	interval time.Duration,
	log zerolog.Logger,
) *MaturityService {
	if interval <= 0 {
		interval = defaultSweepInterval
	}
	return &MaturityService{
		investments: investments,
		packages:    packages,
		settler:     settler,
		interval:    interval,
		now:         time.Now,
		log:         log,
	}
}

// Start launches the sweep loop. It stops when ctx is cancelled.
func (s *MaturityService) Start(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(s.interval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := s.Sweep(ctx); err != nil {
					s.log.Error().Err(err).Msg("maturity sweep failed")
				}
			}
		}
	}()
}

// Sweep runs one pass: every active investment past its end date is settled.
// Returns the number of investments settled. Settlement is idempotent per
// investment, so an investment settled mid-pass by a concurrent caller is
// simply skipped.
func (s *MaturityService) Sweep(ctx context.Context) (int, error) {
	start := time.Now()
	defer func() {
		metrics.SweepDuration.Observe(time.Since(start).Seconds())
	}()

	active := true
	now := s.now()
	settled := 0

	for _, inv := range s.investments.List(ports.InvestmentFilter{Active: &active}) {
		if !inv.Matured(now) {
			continue
		}

		pkg, ok := s.packages.Get(inv.PackageID)
		if !ok {
			// Packages are never deleted, so this indicates a corrupted store.
			s.log.Warn().Int64("investment_id", inv.ID).Int64("package_id", inv.PackageID).Msg("package missing for matured investment")
			continue
		}

		tx, err := s.settler.SettleInvestment(ctx, inv.ID, earnings(inv, pkg))
		if err != nil {
			return settled, err
		}
		if tx != nil {
			settled++
		}
	}

	if settled > 0 {
		s.log.Info().Int("settled", settled).Msg("maturity sweep completed")
	}
	return settled, nil
}

// earnings computes the flat return over the investment's full term:
// amount × weeklyReturn% × full weeks held.
func earnings(inv *domain.Investment, pkg *domain.Package) decimal.Decimal {
	weeks := int64(inv.EndDate.Sub(inv.StartDate).Hours() / (24 * 7))
	if weeks <= 0 {
		return decimal.Zero
	}
	return inv.Amount.Mul(pkg.WeeklyReturn).Div(hundred).Mul(decimal.NewFromInt(weeks))
}
