package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// BalanceResponse is the lightweight current-balance read.
type BalanceResponse struct {
	Balance   decimal.Decimal `json:"balance"`
	Currency  string          `json:"currency"`
	Timestamp time.Time       `json:"timestamp"`
}

// BalanceDetails expands the balance with pending totals and availability.
// AvailableBalance is the committed balance minus the sum of pending debits.
type BalanceDetails struct {
	CurrentBalance   decimal.Decimal `json:"currentBalance"`
	AvailableBalance decimal.Decimal `json:"availableBalance"`
	PendingCredits   decimal.Decimal `json:"pendingCredits"`
	PendingDebits    decimal.Decimal `json:"pendingDebits"`
	Currency         string          `json:"currency"`
	Status           string          `json:"status"`
}
