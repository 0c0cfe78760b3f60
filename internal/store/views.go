package store

import (
	"github.com/autovest/investment-system/internal/core/domain"
	"github.com/autovest/investment-system/internal/core/ports"
)

// The collection views adapt the Store's prefixed methods to the repository
// ports. All four share the Store's lock, so cross-collection operations
// like the transaction balance rule stay atomic.

type userView struct{ s *Store }

func (v userView) Create(user *domain.User) *domain.User { return v.s.CreateUser(user) }
func (v userView) Get(id int64) (*domain.User, bool) { return v.s.GetUser(id) }
func (v userView) GetByUsername(u string) (*domain.User, bool) { return v.s.GetUserByUsername(u) }
func (v userView) List() []*domain.User { return v.s.ListUsers() }

type packageView struct{ s *Store }

func (v packageView) Create(pkg *domain.Package) *domain.Package { return v.s.CreatePackage(pkg) }
func (v packageView) Get(id int64) (*domain.Package, bool) { return v.s.GetPackage(id) }
func (v packageView) List() []*domain.Package { return v.s.ListPackages() }
func (v packageView) Update(id int64, patch ports.PackagePatch) (*domain.Package, bool) {
	return v.s.UpdatePackage(id, patch)
}

type investmentView struct{ s *Store }

func (v investmentView) Create(inv *domain.Investment) *domain.Investment {
	return v.s.CreateInvestment(inv)
}
func (v investmentView) Get(id int64) (*domain.Investment, bool) { return v.s.GetInvestment(id) }
func (v investmentView) List(filter ports.InvestmentFilter) []*domain.Investment {
	return v.s.ListInvestments(filter)
}
func (v investmentView) Update(id int64, patch ports.InvestmentPatch) (*domain.Investment, bool) {
	return v.s.UpdateInvestment(id, patch)
}

type transactionView struct{ s *Store }

func (v transactionView) Create(tx *domain.Transaction) *domain.Transaction {
	return v.s.CreateTransaction(tx)
}
func (v transactionView) Get(id int64) (*domain.Transaction, bool) { return v.s.GetTransaction(id) }
func (v transactionView) List(userID int64) []*domain.Transaction {
	return v.s.ListTransactions(userID)
}

func (s *Store) Users() ports.UserRepository { return userView{s} }
func (s *Store) Packages() ports.PackageRepository { return packageView{s} }
func (s *Store) Investments() ports.InvestmentRepository { return investmentView{s} }
func (s *Store) Transactions() ports.TransactionRepository { return transactionView{s} }
