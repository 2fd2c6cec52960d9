package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/walletapp/wallet_ledger_app/internal/apperrors"
)

// ErrorBody is the uniform error payload: a stable machine-readable code, a
// human-readable message, and optional structured details.
type ErrorBody struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// ErrorResponse wraps the error body under a single key.
type ErrorResponse struct {
	Error ErrorBody `json:"error"`
}

// respondError maps a service error onto the error taxonomy and writes it.
func respondError(c *gin.Context, err error) {
	status, body := mapError(err)
	c.JSON(status, ErrorResponse{Error: body})
}

func mapError(err error) (int, ErrorBody) {
	var insufficientErr *apperrors.InsufficientFundsError
	if errors.As(err, &insufficientErr) {
		return http.StatusUnprocessableEntity, ErrorBody{
			Code:    "INSUFFICIENT_FUNDS",
			Message: "available balance does not cover the requested debit",
			Details: map[string]string{
				"available": insufficientErr.Available.StringFixed(2),
				"requested": insufficientErr.Requested.StringFixed(2),
				"shortage":  insufficientErr.Shortage().StringFixed(2),
			},
		}
	}

	var inactiveErr *apperrors.InactiveAccountError
	if errors.As(err, &inactiveErr) {
		return http.StatusUnprocessableEntity, ErrorBody{
			Code:    "INACTIVE_ACCOUNT",
			Message: "account does not accept transactions",
			Details: map[string]string{"status": inactiveErr.Status},
		}
	}

	var appErr *apperrors.AppError
	if errors.As(err, &appErr) {
		return appErr.Code, ErrorBody{Code: "INTERNAL", Message: appErr.Message}
	}

	switch {
	case errors.Is(err, apperrors.ErrAccountNotFound):
		return http.StatusNotFound, ErrorBody{Code: "ACCOUNT_NOT_FOUND", Message: "account not found"}
	case errors.Is(err, apperrors.ErrNotFound):
		return http.StatusNotFound, ErrorBody{Code: "NOT_FOUND", Message: "resource not found"}
	case errors.Is(err, apperrors.ErrAccountExists):
		return http.StatusConflict, ErrorBody{Code: "ACCOUNT_EXISTS", Message: "user already has an account"}
	case errors.Is(err, apperrors.ErrDuplicateReference):
		return http.StatusConflict, ErrorBody{Code: "DUPLICATE_REFERENCE", Message: "transaction reference already used"}
	case errors.Is(err, apperrors.ErrDuplicate):
		return http.StatusConflict, ErrorBody{Code: "DUPLICATE", Message: "resource already exists"}
	case errors.Is(err, apperrors.ErrInvalidAmount):
		return http.StatusBadRequest, ErrorBody{Code: "INVALID_AMOUNT", Message: "amount must be positive and within the transaction limit"}
	case errors.Is(err, apperrors.ErrInvalidType):
		return http.StatusBadRequest, ErrorBody{Code: "INVALID_TYPE", Message: "transaction type must be CREDIT or DEBIT"}
	case errors.Is(err, apperrors.ErrValidation):
		return http.StatusBadRequest, ErrorBody{Code: "VALIDATION_ERROR", Message: err.Error()}
	case errors.Is(err, apperrors.ErrNotReversible):
		return http.StatusUnprocessableEntity, ErrorBody{Code: "NOT_REVERSIBLE", Message: "transaction is outside the reversal window or not completed"}
	case errors.Is(err, apperrors.ErrAlreadyReversed):
		return http.StatusConflict, ErrorBody{Code: "ALREADY_REVERSED", Message: "transaction has already been reversed"}
	case errors.Is(err, apperrors.ErrBalanceConflict):
		return http.StatusConflict, ErrorBody{Code: "BALANCE_CONFLICT", Message: "account balance changed concurrently, retry the request"}
	case errors.Is(err, apperrors.ErrLockTimeout):
		return http.StatusConflict, ErrorBody{Code: "LOCK_TIMEOUT", Message: "account is busy, retry the request"}
	case errors.Is(err, apperrors.ErrForbidden):
		return http.StatusForbidden, ErrorBody{Code: "FORBIDDEN", Message: "operation not permitted"}
	default:
		return http.StatusInternalServerError, ErrorBody{Code: "INTERNAL", Message: "internal server error"}
	}
}

// respondBindingError reports a malformed or invalid request payload.
func respondBindingError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Error: ErrorBody{
		Code:    "VALIDATION_ERROR",
		Message: "invalid request: " + err.Error(),
	}})
}
