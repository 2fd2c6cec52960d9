package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountStatus mirrors domain.AccountStatus at the persistence layer.
type AccountStatus string

// Account represents a row in the accounts table.
type Account struct {
	AccountID         string          `db:"account_id"`
	UserID            string          `db:"user_id"`
	Balance           decimal.Decimal `db:"balance"`
	CurrencyCode      string          `db:"currency_code"`
	Status            AccountStatus   `db:"status"`
	LastTransactionAt *time.Time      `db:"last_transaction_at"`
	DeletedAt         *time.Time      `db:"deleted_at"`
	AuditFields
}
