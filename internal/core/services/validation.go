package services

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/walletapp/wallet_ledger_app/internal/apperrors"
	"github.com/walletapp/wallet_ledger_app/internal/core/domain"
)

// transactionValidator is the pure validation pipeline run on a prospective
// mutation. Checks run in order and short-circuit on the first failure; the
// pipeline has no side effects and is safe to run repeatedly (the ledger
// runs it again on the fresh snapshot once the account lock is held).
type transactionValidator struct {
	maxAmount decimal.Decimal
}

func newTransactionValidator(maxAmount decimal.Decimal) *transactionValidator {
	return &transactionValidator{maxAmount: maxAmount}
}

// Validate checks the mutation against the given account status snapshot.
func (v *transactionValidator) Validate(amount decimal.Decimal, txnType domain.TransactionType, status domain.AccountStatus) error {
	if !txnType.IsValid() {
		return fmt.Errorf("%w: %q", apperrors.ErrInvalidType, txnType)
	}

	if !amount.IsPositive() {
		return fmt.Errorf("%w: amount must be positive, got %s", apperrors.ErrInvalidAmount, amount)
	}
	if amount.GreaterThan(v.maxAmount) {
		return fmt.Errorf("%w: amount %s exceeds maximum %s", apperrors.ErrInvalidAmount, amount, v.maxAmount)
	}

	if !status.IsMutable() {
		return &apperrors.InactiveAccountError{Status: string(status)}
	}

	return nil
}
