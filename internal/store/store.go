// Package store is the in-memory Ledger & Portfolio Store: four entity
// collections keyed by auto-incrementing per-type ids with insertion-ordered
// iteration. It stands in for a relational database and holds no state
// across restarts.
package store

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/autovest/investment-system/internal/core/domain"
	"github.com/autovest/investment-system/internal/core/ports"
)

// Store owns the entity maps and the monotonic id counters (one per entity
// type, never reused, never decremented). A single RWMutex guards all four
// collections; records are cloned on every read and write so callers never
// observe a half-applied mutation.
type Store struct {
	mu sync.RWMutex

	users        map[int64]*domain.User
	packages     map[int64]*domain.Package
	investments  map[int64]*domain.Investment
	transactions map[int64]*domain.Transaction

	userSeq        int64
	packageSeq     int64
	investmentSeq  int64
	transactionSeq int64
}

// New returns an empty store. Seed populates the default catalog separately
// so tests can start from a blank slate.
func New() *Store {
	return &Store{
		users:        make(map[int64]*domain.User),
		packages:     make(map[int64]*domain.Package),
		investments:  make(map[int64]*domain.Investment),
		transactions: make(map[int64]*domain.Transaction),
	}
}

func cloneUser(u *domain.User) *domain.User {
	c := *u
	return &c
}

func clonePackage(p *domain.Package) *domain.Package {
	c := *p
	return &c
}

func cloneInvestment(i *domain.Investment) *domain.Investment {
	c := *i
	return &c
}

func cloneTransaction(t *domain.Transaction) *domain.Transaction {
	c := *t
	return &c
}

// --- Users ---

// CreateUser assigns the next user id, stamps CreatedAt when unset, and
// stores the record. The returned value is a copy of what was stored.
func (s *Store) CreateUser(user *domain.User) *domain.User {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.userSeq++
	stored := cloneUser(user)
	stored.ID = s.userSeq
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	s.users[stored.ID] = stored
	return cloneUser(stored)
}

func (s *Store) GetUser(id int64) (*domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	u, ok := s.users[id]
	if !ok {
		return nil, false
	}
	return cloneUser(u), true
}

// GetUserByUsername scans in insertion order with a case-sensitive exact
// match, mirroring the uniqueness rule enforced at registration.
func (s *Store) GetUserByUsername(username string) (*domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for id := int64(1); id <= s.userSeq; id++ {
		if u, ok := s.users[id]; ok && u.Username == username {
			return cloneUser(u), true
		}
	}
	return nil, false
}

func (s *Store) ListUsers() []*domain.User {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.User, 0, len(s.users))
	for id := int64(1); id <= s.userSeq; id++ {
		if u, ok := s.users[id]; ok {
			out = append(out, cloneUser(u))
		}
	}
	return out
}

// --- Packages ---

// CreatePackage assigns the next package id and defaults IsActive to true.
func (s *Store) CreatePackage(pkg *domain.Package) *domain.Package {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.packageSeq++
	stored := clonePackage(pkg)
	stored.ID = s.packageSeq
	stored.IsActive = true
	s.packages[stored.ID] = stored
	return clonePackage(stored)
}

func (s *Store) GetPackage(id int64) (*domain.Package, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.packages[id]
	if !ok {
		return nil, false
	}
	return clonePackage(p), true
}

func (s *Store) ListPackages() []*domain.Package {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Package, 0, len(s.packages))
	for id := int64(1); id <= s.packageSeq; id++ {
		if p, ok := s.packages[id]; ok {
			out = append(out, clonePackage(p))
		}
	}
	return out
}

// UpdatePackage merges the patch onto the existing record and replaces it
// whole. Returns false when the id does not exist; update never creates.
func (s *Store) UpdatePackage(id int64, patch ports.PackagePatch) (*domain.Package, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.packages[id]
	if !ok {
		return nil, false
	}

	updated := clonePackage(existing)
	if patch.Name != nil {
		updated.Name = *patch.Name
	}
	if patch.Description != nil {
		updated.Description = *patch.Description
	}
	if patch.Tier != nil {
		updated.Tier = *patch.Tier
	}
	if patch.WeeklyReturn != nil {
		updated.WeeklyReturn = *patch.WeeklyReturn
	}
	if patch.MinInvestment != nil {
		updated.MinInvestment = *patch.MinInvestment
	}
	if patch.ImageURL != nil {
		updated.ImageURL = *patch.ImageURL
	}
	if patch.IsActive != nil {
		updated.IsActive = *patch.IsActive
	}
	s.packages[id] = updated
	return clonePackage(updated), true
}

// --- Investments ---

// CreateInvestment assigns the next investment id, stamps StartDate when
// unset, and derives EndDate as StartDate plus DurationMonths calendar
// months. New investments are active with zero earnings.
func (s *Store) CreateInvestment(inv *domain.Investment) *domain.Investment {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.investmentSeq++
	stored := cloneInvestment(inv)
	stored.ID = s.investmentSeq
	if stored.StartDate.IsZero() {
		stored.StartDate = time.Now().UTC()
	}
	stored.EndDate = stored.StartDate.AddDate(0, stored.DurationMonths, 0)
	stored.IsActive = true
	stored.TotalEarned = decimal.Zero
	s.investments[stored.ID] = stored
	return cloneInvestment(stored)
}

func (s *Store) GetInvestment(id int64) (*domain.Investment, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.investments[id]
	if !ok {
		return nil, false
	}
	return cloneInvestment(i), true
}

func (s *Store) ListInvestments(filter ports.InvestmentFilter) []*domain.Investment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.Investment
	for id := int64(1); id <= s.investmentSeq; id++ {
		i, ok := s.investments[id]
		if !ok {
			continue
		}
		if filter.UserID != 0 && i.UserID != filter.UserID {
			continue
		}
		if filter.Active != nil && i.IsActive != *filter.Active {
			continue
		}
		out = append(out, cloneInvestment(i))
	}
	return out
}

func (s *Store) UpdateInvestment(id int64, patch ports.InvestmentPatch) (*domain.Investment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.investments[id]
	if !ok {
		return nil, false
	}

	updated := cloneInvestment(existing)
	if patch.IsActive != nil {
		updated.IsActive = *patch.IsActive
	}
	if patch.TotalEarned != nil {
		updated.TotalEarned = *patch.TotalEarned
	}
	s.investments[id] = updated
	return cloneInvestment(updated), true
}

// --- Transactions ---

// CreateTransaction appends a ledger entry and applies the balance rule to
// the owning user in the same critical section: deposit and return credit,
// withdrawal and investment debit. This is the only code path that mutates
// a balance. Precondition checks (sufficient funds) belong to the caller.
func (s *Store) CreateTransaction(tx *domain.Transaction) *domain.Transaction {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactionSeq++
	stored := cloneTransaction(tx)
	stored.ID = s.transactionSeq
	if stored.Date.IsZero() {
		stored.Date = time.Now().UTC()
	}
	if stored.Status == "" {
		stored.Status = domain.StatusCompleted
	}
	s.transactions[stored.ID] = stored

	if user, ok := s.users[stored.UserID]; ok {
		updated := cloneUser(user)
		if stored.Type.Credits() {
			updated.Balance = updated.Balance.Add(stored.Amount)
		} else {
			updated.Balance = updated.Balance.Sub(stored.Amount)
		}
		s.users[user.ID] = updated
	}

	return cloneTransaction(stored)
}

func (s *Store) GetTransaction(id int64) (*domain.Transaction, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	t, ok := s.transactions[id]
	if !ok {
		return nil, false
	}
	return cloneTransaction(t), true
}

// ListTransactions returns entries in insertion order, which doubles as
// chronological order since ids and dates are assigned together. UserID 0
// returns the full ledger.
func (s *Store) ListTransactions(userID int64) []*domain.Transaction {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []*domain.Transaction
	for id := int64(1); id <= s.transactionSeq; id++ {
		t, ok := s.transactions[id]
		if !ok {
			continue
		}
		if userID != 0 && t.UserID != userID {
			continue
		}
		out = append(out, cloneTransaction(t))
	}
	return out
}
