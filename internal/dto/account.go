package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/walletapp/wallet_ledger_app/internal/core/domain"
)

// CreateAccountRequest opens an account for the authenticated user.
type CreateAccountRequest struct {
	CurrencyCode string `json:"currencyCode" binding:"omitempty,len=3,uppercase"`
}

// UpdateAccountStatusRequest changes the status of the caller's account.
type UpdateAccountStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=ACTIVE INACTIVE SUSPENDED DORMANT"`
}

// AccountResponse is the API shape of an account.
type AccountResponse struct {
	AccountID         string          `json:"accountID"`
	UserID            string          `json:"userID"`
	Balance           decimal.Decimal `json:"balance"`
	CurrencyCode      string          `json:"currencyCode"`
	Status            string          `json:"status"`
	LastTransactionAt *time.Time      `json:"lastTransactionAt,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// AccountSummary aggregates account state with journal statistics.
type AccountSummary struct {
	AccountID         string          `json:"accountID"`
	Balance           decimal.Decimal `json:"balance"`
	CurrencyCode      string          `json:"currencyCode"`
	Status            string          `json:"status"`
	TransactionCount  int64           `json:"transactionCount"`
	LargestCredit     decimal.Decimal `json:"largestCredit"`
	LargestDebit      decimal.Decimal `json:"largestDebit"`
	LastTransactionAt *time.Time      `json:"lastTransactionAt,omitempty"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// ToAccountResponse converts a domain Account to its API shape.
func ToAccountResponse(a domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:         a.AccountID,
		UserID:            a.UserID,
		Balance:           a.Balance,
		CurrencyCode:      a.CurrencyCode,
		Status:            string(a.Status),
		LastTransactionAt: a.LastTransactionAt,
		CreatedAt:         a.CreatedAt,
	}
}
