package store

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/autovest/investment-system/internal/core/domain"
	"github.com/autovest/investment-system/internal/core/ports"
)

func newUser(t *testing.T, s *Store, username string, balance int64) *domain.User {
	t.Helper()
	return s.CreateUser(&domain.User{
		Username:     username,
		PasswordHash: "x",
		Email:        username + "@example.com",
		Role:         domain.RoleUser,
		Balance:      decimal.NewFromInt(balance),
	})
}

func TestStore_CreateUser_AssignsSequentialIDs(t *testing.T) {
	s := New()

	u1 := newUser(t, s, "alice", 0)
	u2 := newUser(t, s, "bob", 0)

	if u1.ID != 1 || u2.ID != 2 {
		t.Fatalf("expected ids 1 and 2, got %d and %d", u1.ID, u2.ID)
	}
	if u1.CreatedAt.IsZero() {
		t.Error("CreatedAt must be stamped")
	}
}

func TestStore_GetUser_MissIsValue(t *testing.T) {
	s := New()

	if _, ok := s.GetUser(42); ok {
		t.Fatal("expected miss for unknown id")
	}
}

func TestStore_GetUserByUsername_ExactMatch(t *testing.T) {
	s := New()
	newUser(t, s, "Alice", 0)

	if _, ok := s.GetUserByUsername("alice"); ok {
		t.Error("username match must be case-sensitive")
	}
	if _, ok := s.GetUserByUsername("Alice"); !ok {
		t.Error("expected exact username to match")
	}
}

func TestStore_CreatePackage_RoundTrip(t *testing.T) {
	s := New()

	created := s.CreatePackage(&domain.Package{
		Name:          "Economy Tier",
		Tier:          "Economy",
		WeeklyReturn:  decimal.NewFromFloat(1.2),
		MinInvestment: decimal.NewFromInt(100),
	})

	got, ok := s.GetPackage(created.ID)
	if !ok {
		t.Fatal("package not found after create")
	}
	if !got.IsActive {
		t.Error("new package must default to active")
	}
	if got.Name != "Economy Tier" || got.Tier != "Economy" {
		t.Errorf("stored fields differ: %+v", got)
	}
	if !got.MinInvestment.Equal(decimal.NewFromInt(100)) {
		t.Errorf("expected min investment 100, got %s", got.MinInvestment)
	}
}

func TestStore_UpdatePackage_DeactivationOnly(t *testing.T) {
	s := New()
	created := s.CreatePackage(&domain.Package{
		Name:          "Premium Tier",
		Tier:          "Premium",
		WeeklyReturn:  decimal.NewFromFloat(1.5),
		MinInvestment: decimal.NewFromInt(500),
	})

	inactive := false
	updated, ok := s.UpdatePackage(created.ID, ports.PackagePatch{IsActive: &inactive})
	if !ok {
		t.Fatal("update miss on existing package")
	}
	if updated.IsActive {
		t.Error("expected package deactivated")
	}

	got, _ := s.GetPackage(created.ID)
	if got.IsActive {
		t.Error("deactivation not persisted")
	}
	if got.Name != "Premium Tier" || !got.MinInvestment.Equal(decimal.NewFromInt(500)) {
		t.Errorf("untouched fields changed: %+v", got)
	}
}

func TestStore_UpdatePackage_MissNeverCreates(t *testing.T) {
	s := New()

	name := "ghost"
	if _, ok := s.UpdatePackage(7, ports.PackagePatch{Name: &name}); ok {
		t.Fatal("update on unknown id must miss")
	}
	if got := s.ListPackages(); len(got) != 0 {
		t.Fatalf("update miss must not create, found %d packages", len(got))
	}
}

func TestStore_CreateInvestment_DerivesEndDate(t *testing.T) {
	s := New()
	start := time.Date(2026, 1, 15, 0, 0, 0, 0, time.UTC)

	inv := s.CreateInvestment(&domain.Investment{
		UserID:         1,
		PackageID:      1,
		Amount:         decimal.NewFromInt(100),
		StartDate:      start,
		DurationMonths: 3,
	})

	want := time.Date(2026, 4, 15, 0, 0, 0, 0, time.UTC)
	if !inv.EndDate.Equal(want) {
		t.Errorf("expected end date %s, got %s", want, inv.EndDate)
	}
	if !inv.IsActive {
		t.Error("new investment must be active")
	}
	if !inv.TotalEarned.IsZero() {
		t.Errorf("new investment must start with zero earnings, got %s", inv.TotalEarned)
	}
}

func TestStore_ListInvestments_OptionalFilter(t *testing.T) {
	s := New()
	s.CreateInvestment(&domain.Investment{UserID: 1, PackageID: 1, Amount: decimal.NewFromInt(100), DurationMonths: 1})
	s.CreateInvestment(&domain.Investment{UserID: 2, PackageID: 1, Amount: decimal.NewFromInt(200), DurationMonths: 1})
	s.CreateInvestment(&domain.Investment{UserID: 1, PackageID: 2, Amount: decimal.NewFromInt(300), DurationMonths: 1})

	all := s.ListInvestments(ports.InvestmentFilter{})
	if len(all) != 3 {
		t.Fatalf("expected 3 investments without filter, got %d", len(all))
	}
	// Insertion order.
	if all[0].ID != 1 || all[1].ID != 2 || all[2].ID != 3 {
		t.Errorf("expected insertion order, got %d,%d,%d", all[0].ID, all[1].ID, all[2].ID)
	}

	mine := s.ListInvestments(ports.InvestmentFilter{UserID: 1})
	if len(mine) != 2 {
		t.Fatalf("expected 2 investments for user 1, got %d", len(mine))
	}
}

func TestStore_CreateTransaction_BalanceRule(t *testing.T) {
	s := New()
	u := newUser(t, s, "carol", 0)

	steps := []struct {
		txType domain.TransactionType
		amount int64
		want   int64
	}{
		{domain.TypeDeposit, 1000, 1000},
		{domain.TypeWithdrawal, 300, 700},
		{domain.TypeInvestment, 200, 500},
		{domain.TypeReturn, 50, 550},
	}

	for _, step := range steps {
		s.CreateTransaction(&domain.Transaction{
			UserID: u.ID,
			Type:   step.txType,
			Amount: decimal.NewFromInt(step.amount),
		})
		got, _ := s.GetUser(u.ID)
		if !got.Balance.Equal(decimal.NewFromInt(step.want)) {
			t.Fatalf("after %s of %d: expected balance %d, got %s", step.txType, step.amount, step.want, got.Balance)
		}
	}
}

func TestStore_CreateTransaction_Defaults(t *testing.T) {
	s := New()
	u := newUser(t, s, "dave", 0)

	tx := s.CreateTransaction(&domain.Transaction{
		UserID: u.ID,
		Type:   domain.TypeDeposit,
		Amount: decimal.NewFromInt(10),
	})

	if tx.Status != domain.StatusCompleted {
		t.Errorf("expected default status completed, got %s", tx.Status)
	}
	if tx.Date.IsZero() {
		t.Error("Date must be stamped")
	}
}

func TestStore_ListTransactions_ChronologicalPerUser(t *testing.T) {
	s := New()
	u1 := newUser(t, s, "erin", 0)
	u2 := newUser(t, s, "frank", 0)

	s.CreateTransaction(&domain.Transaction{UserID: u1.ID, Type: domain.TypeDeposit, Amount: decimal.NewFromInt(1)})
	s.CreateTransaction(&domain.Transaction{UserID: u2.ID, Type: domain.TypeDeposit, Amount: decimal.NewFromInt(2)})
	s.CreateTransaction(&domain.Transaction{UserID: u1.ID, Type: domain.TypeDeposit, Amount: decimal.NewFromInt(3)})

	ledger := s.ListTransactions(u1.ID)
	if len(ledger) != 2 {
		t.Fatalf("expected 2 entries for user 1, got %d", len(ledger))
	}
	if ledger[0].ID >= ledger[1].ID {
		t.Error("ledger must be in insertion order")
	}

	all := s.ListTransactions(0)
	if len(all) != 3 {
		t.Fatalf("expected full ledger of 3 with userID 0, got %d", len(all))
	}
}

func TestStore_ReadsAreIsolatedFromCallerMutation(t *testing.T) {
	s := New()
	created := s.CreatePackage(&domain.Package{
		Name:          "Luxury Tier",
		Tier:          "Luxury",
		WeeklyReturn:  decimal.NewFromFloat(2.0),
		MinInvestment: decimal.NewFromInt(2000),
	})

	created.Name = "mutated"

	got, _ := s.GetPackage(created.ID)
	if got.Name != "Luxury Tier" {
		t.Error("store must not share records with callers")
	}
}

func TestStore_Seed(t *testing.T) {
	s := New()
	if err := s.Seed("admin", "admin123"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}

	pkgs := s.ListPackages()
	if len(pkgs) != 4 {
		t.Fatalf("expected 4 seeded packages, got %d", len(pkgs))
	}
	if pkgs[0].Tier != "Economy" || pkgs[3].Tier != "Supercar" {
		t.Errorf("unexpected seed order: %s ... %s", pkgs[0].Tier, pkgs[3].Tier)
	}

	admin, ok := s.GetUserByUsername("admin")
	if !ok {
		t.Fatal("admin user not seeded")
	}
	if admin.Role != domain.RoleAdmin {
		t.Errorf("expected admin role, got %s", admin.Role)
	}
	if admin.PasswordHash == "admin123" {
		t.Error("admin password must be stored hashed")
	}
}

func TestStore_Seed_SkipsExistingAdmin(t *testing.T) {
	s := New()
	newUser(t, s, "admin", 0)

	if err := s.Seed("admin", "admin123"); err != nil {
		t.Fatalf("seed failed: %v", err)
	}
	if got := len(s.ListUsers()); got != 1 {
		t.Fatalf("expected existing admin untouched, got %d users", got)
	}
}
