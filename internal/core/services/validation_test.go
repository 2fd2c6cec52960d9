package services

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/walletapp/wallet_ledger_app/internal/apperrors"
	"github.com/walletapp/wallet_ledger_app/internal/core/domain"
)

func TestTransactionValidator(t *testing.T) {
	validator := newTransactionValidator(decimal.NewFromInt(1000000))

	tests := []struct {
		name    string
		amount  string
		txnType domain.TransactionType
		status  domain.AccountStatus
		wantErr error
	}{
		{"valid credit", "100.00", domain.Credit, domain.AccountActive, nil},
		{"valid debit", "0.01", domain.Debit, domain.AccountActive, nil},
		{"amount at limit", "1000000.00", domain.Credit, domain.AccountActive, nil},
		{"unknown type", "100.00", domain.TransactionType("TRANSFER"), domain.AccountActive, apperrors.ErrInvalidType},
		{"empty type", "100.00", domain.TransactionType(""), domain.AccountActive, apperrors.ErrInvalidType},
		{"zero amount", "0", domain.Credit, domain.AccountActive, apperrors.ErrInvalidAmount},
		{"negative amount", "-5.00", domain.Debit, domain.AccountActive, apperrors.ErrInvalidAmount},
		{"amount above limit", "1000000.01", domain.Credit, domain.AccountActive, apperrors.ErrInvalidAmount},
		{"inactive account", "100.00", domain.Credit, domain.AccountInactive, &apperrors.InactiveAccountError{}},
		{"suspended account", "100.00", domain.Debit, domain.AccountSuspended, &apperrors.InactiveAccountError{}},
		{"dormant account", "100.00", domain.Credit, domain.AccountDormant, &apperrors.InactiveAccountError{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := validator.Validate(decimal.RequireFromString(tc.amount), tc.txnType, tc.status)
			if tc.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

// Type is checked before amount, amount before status: a request that is
// wrong in several ways reports the first failure in that order.
func TestTransactionValidator_CheckOrder(t *testing.T) {
	validator := newTransactionValidator(decimal.NewFromInt(1000000))

	err := validator.Validate(decimal.NewFromInt(-1), domain.TransactionType("BOGUS"), domain.AccountSuspended)
	require.ErrorIs(t, err, apperrors.ErrInvalidType)

	err = validator.Validate(decimal.NewFromInt(-1), domain.Credit, domain.AccountSuspended)
	require.ErrorIs(t, err, apperrors.ErrInvalidAmount)

	err = validator.Validate(decimal.NewFromInt(10), domain.Credit, domain.AccountSuspended)
	var inactiveErr *apperrors.InactiveAccountError
	require.True(t, errors.As(err, &inactiveErr))
	assert.Equal(t, string(domain.AccountSuspended), inactiveErr.Status)
}
