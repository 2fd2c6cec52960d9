package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionType indicates whether a transaction credits or debits the account.
type TransactionType string

const (
	Credit TransactionType = "CREDIT"
	Debit  TransactionType = "DEBIT"
)

// IsValid reports whether the type is one of the two supported values.
func (t TransactionType) IsValid() bool {
	return t == Credit || t == Debit
}

// Opposite returns the inverse type, used when building reversals.
func (t TransactionType) Opposite() TransactionType {
	if t == Credit {
		return Debit
	}
	return Credit
}

// TransactionStatus describes the lifecycle state of a transaction.
// Created transactions are COMPLETED; afterwards the only transitions are
// COMPLETED -> REVERSED (through the reversal engine) and * -> ARCHIVED
// (retention housekeeping).
type TransactionStatus string

const (
	TransactionPending   TransactionStatus = "PENDING"
	TransactionCompleted TransactionStatus = "COMPLETED"
	TransactionFailed    TransactionStatus = "FAILED"
	TransactionReversed  TransactionStatus = "REVERSED"
	TransactionArchived  TransactionStatus = "ARCHIVED"
)

// Reversal links a transaction to the compensating transaction that undid it.
type Reversal struct {
	Reversed   bool    `json:"reversed"`
	ReversalID *string `json:"reversalID,omitempty"` // ID of the compensating transaction
}

// Transaction is a single balance-changing event in the journal.
// Amount is always a positive magnitude; the direction is carried by Type.
// BalanceAfter snapshots the account balance at the moment this record
// committed and must equal the account's balance at that instant.
type Transaction struct {
	TransactionID string            `json:"transactionID"` // Primary Key (UUID)
	AccountID     string            `json:"accountID"`     // Owning account, immutable
	Amount        decimal.Decimal   `json:"amount"`        // Strictly positive magnitude
	Type          TransactionType   `json:"type"`
	Description   string            `json:"description,omitempty"`
	Reference     string            `json:"reference"` // Idempotency key, globally unique
	Status        TransactionStatus `json:"status"`
	BalanceAfter  decimal.Decimal   `json:"balanceAfter"`
	Reversal      Reversal          `json:"reversal"`
	Metadata      map[string]string `json:"metadata,omitempty"` // Origin IP, user agent, ...
	AuditFields
}

// IsReversible reports whether the transaction can still be compensated:
// it must be completed, not yet reversed, and younger than the window.
func (t *Transaction) IsReversible(now time.Time, window time.Duration) bool {
	if t.Status != TransactionCompleted || t.Reversal.Reversed {
		return false
	}
	return now.Sub(t.CreatedAt) < window
}

// SignedAmount returns the balance delta this transaction applied:
// positive for credits, negative for debits.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == Debit {
		return t.Amount.Neg()
	}
	return t.Amount
}
