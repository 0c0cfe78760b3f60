package store

import (
	"fmt"

	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"

	"github.com/autovest/investment-system/internal/core/domain"
)

// defaultPackages is the documented catalog the store boots with.
var defaultPackages = []domain.Package{
	{
		Name:          "Economy Tier",
		Description:   "Entry level investment with steady returns.",
		Tier:          "Economy",
		WeeklyReturn:  decimal.NewFromFloat(1.2),
		MinInvestment: decimal.NewFromInt(100),
		ImageURL:      "https://images.unsplash.com/photo-1541899481282-d53bffe3c35d?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
	},
	{
		Name:          "Premium Tier",
		Description:   "Mid-range portfolio with enhanced returns.",
		Tier:          "Premium",
		WeeklyReturn:  decimal.NewFromFloat(1.5),
		MinInvestment: decimal.NewFromInt(500),
		ImageURL:      "https://images.unsplash.com/photo-1603584173870-7f23fdae1b7a?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
	},
	{
		Name:          "Luxury Tier",
		Description:   "High-end portfolio with premium returns.",
		Tier:          "Luxury",
		WeeklyReturn:  decimal.NewFromFloat(2.0),
		MinInvestment: decimal.NewFromInt(2000),
		ImageURL:      "https://images.unsplash.com/photo-1616422285623-13ff0162193c?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
	},
	{
		Name:          "Supercar Tier",
		Description:   "Elite portfolio with maximum returns.",
		Tier:          "Supercar",
		WeeklyReturn:  decimal.NewFromFloat(2.5),
		MinInvestment: decimal.NewFromInt(5000),
		ImageURL:      "https://images.unsplash.com/photo-1503376780353-7e6692767b70?ixlib=rb-4.0.3&auto=format&fit=crop&w=800&q=80",
	},
}

// Seed populates the default package catalog and, when credentials are
// given, an admin user. It runs once per process lifetime at construction
// and skips the admin when the username is already taken.
func (s *Store) Seed(adminUsername, adminPassword string) error {
	for i := range defaultPackages {
		pkg := defaultPackages[i]
		s.CreatePackage(&pkg)
	}

	if adminUsername == "" || adminPassword == "" {
		return nil
	}
	if _, exists := s.GetUserByUsername(adminUsername); exists {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("seed admin: %w", err)
	}
	s.CreateUser(&domain.User{
		Username:     adminUsername,
		PasswordHash: string(hash),
		Email:        adminUsername + "@autovest.local",
		FullName:     "Admin User",
		Role:         domain.RoleAdmin,
		Balance:      decimal.Zero,
	})
	return nil
}
