package domain_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/walletapp/wallet_ledger_app/internal/core/domain"
)

func TestTransactionType_Opposite(t *testing.T) {
	assert.Equal(t, domain.Debit, domain.Credit.Opposite())
	assert.Equal(t, domain.Credit, domain.Debit.Opposite())
}

func TestTransactionType_IsValid(t *testing.T) {
	assert.True(t, domain.Credit.IsValid())
	assert.True(t, domain.Debit.IsValid())
	assert.False(t, domain.TransactionType("TRANSFER").IsValid())
	assert.False(t, domain.TransactionType("").IsValid())
}

func TestTransaction_IsReversible(t *testing.T) {
	now := time.Now()
	window := 24 * time.Hour

	tests := []struct {
		name string
		txn  domain.Transaction
		want bool
	}{
		{
			name: "completed transaction created 10 minutes ago",
			txn: domain.Transaction{
				Status:      domain.TransactionCompleted,
				AuditFields: domain.AuditFields{CreatedAt: now.Add(-10 * time.Minute)},
			},
			want: true,
		},
		{
			name: "completed transaction created 1 minute ago",
			txn: domain.Transaction{
				Status:      domain.TransactionCompleted,
				AuditFields: domain.AuditFields{CreatedAt: now.Add(-time.Minute)},
			},
			want: true,
		},
		{
			name: "completed transaction created 30 hours ago",
			txn: domain.Transaction{
				Status:      domain.TransactionCompleted,
				AuditFields: domain.AuditFields{CreatedAt: now.Add(-30 * time.Hour)},
			},
			want: false,
		},
		{
			name: "pending transaction inside the window",
			txn: domain.Transaction{
				Status:      domain.TransactionPending,
				AuditFields: domain.AuditFields{CreatedAt: now.Add(-time.Minute)},
			},
			want: false,
		},
		{
			name: "already reversed transaction inside the window",
			txn: domain.Transaction{
				Status:      domain.TransactionCompleted,
				Reversal:    domain.Reversal{Reversed: true},
				AuditFields: domain.AuditFields{CreatedAt: now.Add(-time.Minute)},
			},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.txn.IsReversible(now, window))
		})
	}
}

func TestTransaction_SignedAmount(t *testing.T) {
	amount := decimal.NewFromFloat(125.50)

	credit := domain.Transaction{Type: domain.Credit, Amount: amount}
	assert.True(t, credit.SignedAmount().Equal(amount))

	debit := domain.Transaction{Type: domain.Debit, Amount: amount}
	assert.True(t, debit.SignedAmount().Equal(amount.Neg()))
}
