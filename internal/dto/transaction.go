package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/walletapp/wallet_ledger_app/internal/core/domain"
)

// CreateTransactionRequest is the payload for applying a credit or debit.
// Reference is the caller-supplied idempotency key; when omitted the ledger
// generates one.
type CreateTransactionRequest struct {
	Amount      decimal.Decimal        `json:"amount" binding:"required"`
	Type        domain.TransactionType `json:"type" binding:"required,oneof=CREDIT DEBIT"`
	Description string                 `json:"description" binding:"omitempty,max=255"`
	Reference   string                 `json:"reference" binding:"omitempty,max=64,reference"`
}

// ListTransactionsParams carries the history filters and cursor.
type ListTransactionsParams struct {
	Type      string     `form:"type" binding:"omitempty,oneof=CREDIT DEBIT"`
	Status    string     `form:"status" binding:"omitempty,oneof=PENDING COMPLETED FAILED REVERSED ARCHIVED"`
	DateFrom  *time.Time `form:"dateFrom" time_format:"2006-01-02T15:04:05Z07:00"`
	DateTo    *time.Time `form:"dateTo" time_format:"2006-01-02T15:04:05Z07:00"`
	Limit     int        `form:"limit" binding:"omitempty,min=1,max=100"`
	NextToken string     `form:"nextToken"`
}

// TransactionResponse is the API shape of a transaction.
type TransactionResponse struct {
	TransactionID string            `json:"transactionID"`
	AccountID     string            `json:"accountID"`
	Amount        decimal.Decimal   `json:"amount"`
	Type          string            `json:"type"`
	Description   string            `json:"description,omitempty"`
	Reference     string            `json:"reference"`
	Status        string            `json:"status"`
	BalanceAfter  decimal.Decimal   `json:"balanceAfter"`
	Reversed      bool              `json:"reversed"`
	ReversalID    *string           `json:"reversalID,omitempty"`
	Metadata      map[string]string `json:"metadata,omitempty"`
	CreatedAt     time.Time         `json:"createdAt"`
}

// ListTransactionsResponse wraps a page of transactions plus the cursor for
// the next page, if any.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}

// ToTransactionResponse converts a domain Transaction to its API shape.
func ToTransactionResponse(t domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID: t.TransactionID,
		AccountID:     t.AccountID,
		Amount:        t.Amount,
		Type:          string(t.Type),
		Description:   t.Description,
		Reference:     t.Reference,
		Status:        string(t.Status),
		BalanceAfter:  t.BalanceAfter,
		Reversed:      t.Reversal.Reversed,
		ReversalID:    t.Reversal.ReversalID,
		Metadata:      t.Metadata,
		CreatedAt:     t.CreatedAt,
	}
}

// ToTransactionResponseSlice converts a slice of domain Transactions.
func ToTransactionResponseSlice(ts []domain.Transaction) []TransactionResponse {
	out := make([]TransactionResponse, len(ts))
	for i, t := range ts {
		out[i] = ToTransactionResponse(t)
	}
	return out
}
