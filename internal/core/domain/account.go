package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountStatus describes whether an account may be mutated.
// Only ACTIVE accounts accept transactions.
type AccountStatus string

const (
	AccountActive    AccountStatus = "ACTIVE"
	AccountInactive  AccountStatus = "INACTIVE"
	AccountSuspended AccountStatus = "SUSPENDED"
	AccountDormant   AccountStatus = "DORMANT"
)

// IsMutable reports whether the ledger may apply transactions to an
// account in this status.
func (s AccountStatus) IsMutable() bool {
	return s == AccountActive
}

// Account represents a user's monetary account within the core domain.
// This is the primary representation used by services. The account carries
// no mutation logic; balance changes flow exclusively through the ledger
// service, which checks the invariants.
type Account struct {
	AccountID         string          `json:"accountID"`         // Primary Key (UUID)
	UserID            string          `json:"userID"`            // Owning user; exactly one non-deleted account per user
	Balance           decimal.Decimal `json:"balance"`           // Committed balance; never negative
	CurrencyCode      string          `json:"currencyCode"`      // ISO 4217, immutable after creation
	Status            AccountStatus   `json:"status"`            // Read, never written, by the ledger
	LastTransactionAt *time.Time      `json:"lastTransactionAt"` // Nil until the first applied transaction
	DeletedAt         *time.Time      `json:"deletedAt"`         // Soft removal only, preserves journal integrity
	AuditFields
}
