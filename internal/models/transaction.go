package models

import (
	"github.com/shopspring/decimal"
)

// TransactionType mirrors domain.TransactionType at the persistence layer.
type TransactionType string

// TransactionStatus mirrors domain.TransactionStatus at the persistence layer.
type TransactionStatus string

// Transaction represents a row in the transactions table.
// Metadata is the raw jsonb payload; mapping handles (un)marshalling.
type Transaction struct {
	TransactionID string            `db:"transaction_id"`
	AccountID     string            `db:"account_id"`
	Amount        decimal.Decimal   `db:"amount"`
	Type          TransactionType   `db:"transaction_type"`
	Description   string            `db:"description"`
	Reference     string            `db:"reference"`
	Status        TransactionStatus `db:"status"`
	BalanceAfter  decimal.Decimal   `db:"balance_after"`
	Reversed      bool              `db:"reversed"`
	ReversalID    *string           `db:"reversal_id"`
	Metadata      []byte            `db:"metadata"`
	AuditFields
}
