package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Sentinel errors for the ledger's business-rule failures. These are
// deterministic given the same inputs and are never retried internally.
var (
	// ErrNotFound indicates that a requested resource could not be found.
	ErrNotFound = errors.New("resource not found")

	// ErrAccountNotFound indicates that no account exists for the given owner.
	ErrAccountNotFound = errors.New("account not found")

	// ErrAccountExists indicates the owner already has a non-deleted account.
	ErrAccountExists = errors.New("account already exists for user")

	// ErrValidation indicates that input data failed validation checks.
	ErrValidation = errors.New("validation error")

	// ErrInvalidType indicates a transaction type outside {credit, debit}.
	ErrInvalidType = errors.New("invalid transaction type")

	// ErrInvalidAmount indicates a non-positive or out-of-bounds amount.
	ErrInvalidAmount = errors.New("invalid transaction amount")

	// ErrDuplicateReference indicates a reference that has already been used.
	// A caller retrying with the same idempotency reference receives this
	// instead of a second transaction.
	ErrDuplicateReference = errors.New("transaction reference already used")

	// ErrDuplicate indicates an attempt to create a resource that already exists.
	ErrDuplicate = errors.New("resource already exists")

	// ErrNotReversible indicates the transaction is outside the reversal
	// window or not in a completed state.
	ErrNotReversible = errors.New("transaction cannot be reversed")

	// ErrAlreadyReversed indicates the transaction was reversed before.
	ErrAlreadyReversed = errors.New("transaction already reversed")

	// ErrBalanceConflict indicates the locked account balance no longer
	// matches the balance the ledger computed from. The caller may retry.
	ErrBalanceConflict = errors.New("account balance changed concurrently")

	// ErrLockTimeout indicates the per-account lock could not be acquired in
	// time. Retryable; the caller must reuse the same reference when it does.
	ErrLockTimeout = errors.New("timed out waiting for account lock")

	// ErrForbidden indicates the caller is not allowed to act on the resource.
	ErrForbidden = errors.New("forbidden")
)

// InactiveAccountError is returned when a mutation targets an account whose
// status is not active. Status carries the sub-code (suspended, dormant, ...).
type InactiveAccountError struct {
	Status string
}

func (e *InactiveAccountError) Error() string {
	return fmt.Sprintf("account is not active (status: %s)", e.Status)
}

// Is lets errors.Is match any InactiveAccountError regardless of status.
func (e *InactiveAccountError) Is(target error) bool {
	_, ok := target.(*InactiveAccountError)
	return ok
}

// InsufficientFundsError is returned when a debit would drive the available
// balance below zero.
type InsufficientFundsError struct {
	Available decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds: available %s, requested %s",
		e.Available.StringFixed(2), e.Requested.StringFixed(2))
}

// Is lets errors.Is match any InsufficientFundsError regardless of amounts.
func (e *InsufficientFundsError) Is(target error) bool {
	_, ok := target.(*InsufficientFundsError)
	return ok
}

// Shortage returns how much the request exceeded the available balance.
func (e *InsufficientFundsError) Shortage() decimal.Decimal {
	return e.Requested.Sub(e.Available)
}

// AppError wraps infrastructure failures with an HTTP-ish status code.
// Storage-layer faults surface as AppError; the ledger never retries them.
type AppError struct {
	Code    int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new AppError wrapping an underlying cause.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}
