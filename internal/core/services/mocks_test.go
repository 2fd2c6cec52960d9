package services_test

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/walletapp/wallet_ledger_app/internal/core/domain"
	portsrepo "github.com/walletapp/wallet_ledger_app/internal/core/ports/repositories"
)

// --- Mock AccountRepository ---

type MockAccountRepository struct {
	mock.Mock
	FindAccountByIDFn     func(ctx context.Context, accountID string) (*domain.Account, error)
	FindAccountByUserIDFn func(ctx context.Context, userID string) (*domain.Account, error)
	SaveAccountFn         func(ctx context.Context, account domain.Account) error
}

func (m *MockAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	if m.FindAccountByIDFn != nil {
		return m.FindAccountByIDFn(ctx, accountID)
	}
	args := m.Called(ctx, accountID)
	var account *domain.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) FindAccountByUserID(ctx context.Context, userID string) (*domain.Account, error) {
	if m.FindAccountByUserIDFn != nil {
		return m.FindAccountByUserIDFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	var account *domain.Account
	if args.Get(0) != nil {
		account = args.Get(0).(*domain.Account)
	}
	return account, args.Error(1)
}

func (m *MockAccountRepository) SaveAccount(ctx context.Context, account domain.Account) error {
	if m.SaveAccountFn != nil {
		return m.SaveAccountFn(ctx, account)
	}
	args := m.Called(ctx, account)
	return args.Error(0)
}

func (m *MockAccountRepository) UpdateAccountStatus(ctx context.Context, accountID string, status domain.AccountStatus) error {
	args := m.Called(ctx, accountID, status)
	return args.Error(0)
}

// --- Mock TransactionRepository ---

type MockTransactionRepository struct {
	mock.Mock
	FindTransactionByIDFn        func(ctx context.Context, transactionID string) (*domain.Transaction, error)
	FindTransactionByReferenceFn func(ctx context.Context, reference string) (*domain.Transaction, error)
	SumPendingByAccountFn        func(ctx context.Context, accountID string) (portsrepo.PendingTotals, error)
	SaveTransactionAndBalanceFn  func(ctx context.Context, txn domain.Transaction, newBalance decimal.Decimal) error
	MarkTransactionReversedFn    func(ctx context.Context, transactionID string, reversalID string, now time.Time) error
}

func (m *MockTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	if m.FindTransactionByIDFn != nil {
		return m.FindTransactionByIDFn(ctx, transactionID)
	}
	args := m.Called(ctx, transactionID)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) FindTransactionByReference(ctx context.Context, reference string) (*domain.Transaction, error) {
	if m.FindTransactionByReferenceFn != nil {
		return m.FindTransactionByReferenceFn(ctx, reference)
	}
	args := m.Called(ctx, reference)
	var txn *domain.Transaction
	if args.Get(0) != nil {
		txn = args.Get(0).(*domain.Transaction)
	}
	return txn, args.Error(1)
}

func (m *MockTransactionRepository) SumPendingByAccount(ctx context.Context, accountID string) (portsrepo.PendingTotals, error) {
	if m.SumPendingByAccountFn != nil {
		return m.SumPendingByAccountFn(ctx, accountID)
	}
	args := m.Called(ctx, accountID)
	return args.Get(0).(portsrepo.PendingTotals), args.Error(1)
}

func (m *MockTransactionRepository) SummarizeByAccount(ctx context.Context, accountID string) (portsrepo.AccountJournalStats, error) {
	args := m.Called(ctx, accountID)
	return args.Get(0).(portsrepo.AccountJournalStats), args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByAccount(ctx context.Context, accountID string, filters portsrepo.TransactionFilters, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	args := m.Called(ctx, accountID, filters, limit, nextToken)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return txns, token, args.Error(2)
}

func (m *MockTransactionRepository) SaveTransactionAndBalance(ctx context.Context, txn domain.Transaction, newBalance decimal.Decimal) error {
	if m.SaveTransactionAndBalanceFn != nil {
		return m.SaveTransactionAndBalanceFn(ctx, txn, newBalance)
	}
	args := m.Called(ctx, txn, newBalance)
	return args.Error(0)
}

func (m *MockTransactionRepository) MarkTransactionReversed(ctx context.Context, transactionID string, reversalID string, now time.Time) error {
	if m.MarkTransactionReversedFn != nil {
		return m.MarkTransactionReversedFn(ctx, transactionID, reversalID, now)
	}
	args := m.Called(ctx, transactionID, reversalID, now)
	return args.Error(0)
}

func (m *MockTransactionRepository) ArchiveTransactions(ctx context.Context, accountID string, olderThan time.Time) (int64, error) {
	args := m.Called(ctx, accountID, olderThan)
	return args.Get(0).(int64), args.Error(1)
}

// --- Mock UserRepository ---

type MockUserRepository struct {
	mock.Mock
	SaveUserFn func(ctx context.Context, user domain.User) error
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	if m.SaveUserFn != nil {
		return m.SaveUserFn(ctx, user)
	}
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

// --- Mock BalanceCache ---

type MockBalanceCache struct {
	mock.Mock
	GetBalanceFn func(ctx context.Context, userID string) (portsrepo.CachedBalance, bool, error)
}

func (m *MockBalanceCache) GetBalance(ctx context.Context, userID string) (portsrepo.CachedBalance, bool, error) {
	if m.GetBalanceFn != nil {
		return m.GetBalanceFn(ctx, userID)
	}
	args := m.Called(ctx, userID)
	return args.Get(0).(portsrepo.CachedBalance), args.Bool(1), args.Error(2)
}

func (m *MockBalanceCache) SetBalance(ctx context.Context, userID string, entry portsrepo.CachedBalance, ttl time.Duration) error {
	args := m.Called(ctx, userID, entry, ttl)
	return args.Error(0)
}

func (m *MockBalanceCache) Invalidate(ctx context.Context, userID string) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

// --- Mock BalanceInvalidator ---

type MockBalanceInvalidator struct {
	mock.Mock
}

func (m *MockBalanceInvalidator) InvalidateBalance(ctx context.Context, userID string) {
	m.Called(ctx, userID)
}
