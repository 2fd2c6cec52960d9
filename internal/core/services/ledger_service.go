package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/walletapp/wallet_ledger_app/internal/apperrors"
	"github.com/walletapp/wallet_ledger_app/internal/core/domain"
	portsrepo "github.com/walletapp/wallet_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/walletapp/wallet_ledger_app/internal/core/ports/services"
	"github.com/walletapp/wallet_ledger_app/internal/dto"
	"github.com/walletapp/wallet_ledger_app/internal/metrics"
	"github.com/walletapp/wallet_ledger_app/internal/utils"
)

const defaultListLimit = 20

// LedgerConfig carries the ledger's tunables.
type LedgerConfig struct {
	MaxTransactionAmount decimal.Decimal
	AccountLockTimeout   time.Duration
	ReversalWindow       time.Duration
}

// ledgerService is the core mutation engine: it validates a credit/debit
// against account state, serializes it against concurrent mutations on the
// same account, persists the transaction and the updated balance atomically,
// and invalidates the balance cache. The reversal engine is layered on the
// same apply path so reversal eligibility is checked under the same
// per-account lock as the compensating transaction.
type ledgerService struct {
	BaseService
	transactionRepo portsrepo.TransactionRepositoryFacade
	accountRepo     portsrepo.AccountRepositoryFacade
	balanceSvc      portssvc.BalanceInvalidator
	validator       *transactionValidator
	locker          *accountLocker
	cfg             LedgerConfig
}

// NewLedgerService creates the ledger engine.
func NewLedgerService(
	transactionRepo portsrepo.TransactionRepositoryFacade,
	accountRepo portsrepo.AccountRepositoryFacade,
	balanceSvc portssvc.BalanceInvalidator,
	cfg LedgerConfig,
) portssvc.LedgerSvcFacade {
	return &ledgerService{
		transactionRepo: transactionRepo,
		accountRepo:     accountRepo,
		balanceSvc:      balanceSvc,
		validator:       newTransactionValidator(cfg.MaxTransactionAmount),
		locker:          newAccountLocker(),
		cfg:             cfg,
	}
}

// Ensure ledgerService implements the LedgerSvcFacade interface
var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// ApplyTransaction applies one credit or debit against the caller's account.
func (s *ledgerService) ApplyTransaction(ctx context.Context, params portssvc.ApplyTransactionParams) (*domain.Transaction, error) {
	timer := time.Now()
	defer func() { metrics.TransactionDuration.Observe(time.Since(timer).Seconds()) }()

	account, err := s.accountRepo.FindAccountByUserID(ctx, params.UserID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrAccountNotFound) {
			s.LogError(ctx, err, "Failed to resolve account for transaction",
				slog.String("user_id", params.UserID))
		}
		metrics.TransactionsTotal.WithLabelValues(string(params.Type), outcomeLabel(err)).Inc()
		return nil, err
	}

	release, err := s.acquireAccountLock(ctx, account.AccountID)
	if err != nil {
		metrics.TransactionsTotal.WithLabelValues(string(params.Type), outcomeLabel(err)).Inc()
		return nil, err
	}
	defer release()

	txn, err := s.applyLocked(ctx, account.AccountID, params)
	metrics.TransactionsTotal.WithLabelValues(string(params.Type), outcomeLabel(err)).Inc()
	return txn, err
}

// acquireAccountLock enters the per-account critical section, bounded by the
// configured lock timeout.
func (s *ledgerService) acquireAccountLock(ctx context.Context, accountID string) (func(), error) {
	lockCtx, cancel := context.WithTimeout(ctx, s.cfg.AccountLockTimeout)
	defer cancel()

	release, err := s.locker.Acquire(lockCtx, accountID)
	if err != nil {
		s.LogWarn(ctx, "Timed out waiting for account lock",
			slog.String("account_id", accountID),
			slog.Duration("timeout", s.cfg.AccountLockTimeout))
		return nil, err
	}
	return release, nil
}

// applyLocked runs the mutation with the account lock already held. It
// re-reads the account so validation sees the freshest snapshot, computes the
// new balance, and hands both writes to the repository as one atomic unit.
func (s *ledgerService) applyLocked(ctx context.Context, accountID string, params portssvc.ApplyTransactionParams) (*domain.Transaction, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}

	// Status may have changed since the pre-lock read.
	if err := s.validator.Validate(params.Amount, params.Type, account.Status); err != nil {
		return nil, err
	}

	if params.Type == domain.Debit {
		pending, err := s.transactionRepo.SumPendingByAccount(ctx, account.AccountID)
		if err != nil {
			return nil, err
		}
		available := account.Balance.Sub(pending.Debits)
		if available.LessThan(params.Amount) {
			return nil, &apperrors.InsufficientFundsError{
				Available: available,
				Requested: params.Amount,
			}
		}
	}

	reference := params.Reference
	if reference == "" {
		reference, err = utils.GenerateTransactionReference()
		if err != nil {
			return nil, apperrors.NewAppError(500, "failed to generate transaction reference", err)
		}
	} else {
		// Request-level idempotency: a retry with a used reference must not
		// create a second transaction. The unique index catches the race this
		// pre-check cannot see.
		if _, err := s.transactionRepo.FindTransactionByReference(ctx, reference); err == nil {
			return nil, fmt.Errorf("%w: %s", apperrors.ErrDuplicateReference, reference)
		} else if !errors.Is(err, apperrors.ErrNotFound) {
			return nil, err
		}
	}

	newBalance := account.Balance.Add(params.Amount)
	if params.Type == domain.Debit {
		newBalance = account.Balance.Sub(params.Amount)
	}

	now := time.Now().UTC()
	txn := domain.Transaction{
		TransactionID: uuid.NewString(),
		AccountID:     account.AccountID,
		Amount:        params.Amount,
		Type:          params.Type,
		Description:   params.Description,
		Reference:     reference,
		Status:        domain.TransactionCompleted,
		BalanceAfter:  newBalance,
		Metadata:      params.Metadata,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			LastUpdatedAt: now,
		},
	}

	if err := s.transactionRepo.SaveTransactionAndBalance(ctx, txn, newBalance); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicateReference) {
			s.LogError(ctx, err, "Failed to persist transaction",
				slog.String("account_id", account.AccountID),
				slog.String("reference", reference))
		}
		return nil, err
	}

	// Last step of a successful mutation: drop the cached balance.
	s.balanceSvc.InvalidateBalance(ctx, params.UserID)

	s.LogInfo(ctx, "Transaction applied",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("account_id", account.AccountID),
		slog.String("type", string(params.Type)),
		slog.String("amount", params.Amount.StringFixed(2)),
		slog.String("balance_after", newBalance.StringFixed(2)),
		slog.String("reference", reference))
	return &txn, nil
}

// ReverseTransaction compensates a completed transaction with an inverse one.
func (s *ledgerService) ReverseTransaction(ctx context.Context, transactionID string, requesterID string) (*domain.Transaction, error) {
	original, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		metrics.ReversalsTotal.WithLabelValues(outcomeLabel(err)).Inc()
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByUserID(ctx, requesterID)
	if err != nil {
		metrics.ReversalsTotal.WithLabelValues(outcomeLabel(err)).Inc()
		return nil, err
	}
	if original.AccountID != account.AccountID {
		// Return NotFound to obscure existence from other users.
		metrics.ReversalsTotal.WithLabelValues(outcomeLabel(apperrors.ErrNotFound)).Inc()
		return nil, apperrors.ErrNotFound
	}

	reversal, err := s.reverseLocked(ctx, account.AccountID, original.TransactionID, requesterID)
	metrics.ReversalsTotal.WithLabelValues(outcomeLabel(err)).Inc()
	return reversal, err
}

// reverseLocked serializes concurrent reversal attempts the same way account
// mutations are serialized: eligibility is re-checked under the per-account
// lock, and the compensating transaction is applied without releasing it.
func (s *ledgerService) reverseLocked(ctx context.Context, accountID, transactionID, requesterID string) (*domain.Transaction, error) {
	release, err := s.acquireAccountLock(ctx, accountID)
	if err != nil {
		return nil, err
	}
	defer release()

	// Fresh read under lock: a concurrent reversal may have won the race.
	original, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}
	if original.Reversal.Reversed {
		return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrAlreadyReversed, transactionID)
	}
	if !original.IsReversible(time.Now().UTC(), s.cfg.ReversalWindow) {
		return nil, fmt.Errorf("%w: transaction %s", apperrors.ErrNotReversible, transactionID)
	}

	reversal, err := s.applyLocked(ctx, accountID, portssvc.ApplyTransactionParams{
		UserID:      requesterID,
		Amount:      original.Amount,
		Type:        original.Type.Opposite(),
		Description: fmt.Sprintf("Reversal of transaction %s", original.Reference),
		Metadata:    map[string]string{"reversalOf": original.TransactionID},
	})
	if err != nil {
		return nil, err
	}

	// Metadata-only linkage on the original; deliberately not atomic with the
	// compensating transaction. The reversal's balance effect is already
	// authoritative, so a failure here leaves a detectable, repairable gap
	// rather than a balance error.
	if err := s.transactionRepo.MarkTransactionReversed(ctx, original.TransactionID, reversal.TransactionID, time.Now().UTC()); err != nil {
		s.LogError(ctx, err, "Reversal committed but original transaction not flagged",
			slog.String("original_id", original.TransactionID),
			slog.String("reversal_id", reversal.TransactionID))
		return reversal, nil
	}

	s.LogInfo(ctx, "Transaction reversed",
		slog.String("original_id", original.TransactionID),
		slog.String("reversal_id", reversal.TransactionID))
	return reversal, nil
}

// GetTransaction returns one of the requester's transactions.
func (s *ledgerService) GetTransaction(ctx context.Context, transactionID string, requesterID string) (*domain.Transaction, error) {
	txn, err := s.transactionRepo.FindTransactionByID(ctx, transactionID)
	if err != nil {
		return nil, err
	}

	account, err := s.accountRepo.FindAccountByUserID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if txn.AccountID != account.AccountID {
		return nil, apperrors.ErrNotFound
	}
	return txn, nil
}

// ListTransactions returns a page of the requester's history, newest first.
func (s *ledgerService) ListTransactions(ctx context.Context, userID string, params dto.ListTransactionsParams) (*dto.ListTransactionsResponse, error) {
	account, err := s.accountRepo.FindAccountByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	filters := portsrepo.TransactionFilters{
		DateFrom: params.DateFrom,
		DateTo:   params.DateTo,
	}
	if params.Type != "" {
		txnType := domain.TransactionType(params.Type)
		filters.Type = &txnType
	}
	if params.Status != "" {
		status := domain.TransactionStatus(params.Status)
		filters.Status = &status
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}

	var nextToken *string
	if params.NextToken != "" {
		nextToken = &params.NextToken
	}

	txns, outToken, err := s.transactionRepo.ListTransactionsByAccount(ctx, account.AccountID, filters, limit, nextToken)
	if err != nil {
		s.LogError(ctx, err, "Failed to list transactions",
			slog.String("account_id", account.AccountID))
		return nil, err
	}

	return &dto.ListTransactionsResponse{
		Transactions: dto.ToTransactionResponseSlice(txns),
		NextToken:    outToken,
	}, nil
}

// ArchiveTransactions bulk-moves the requester's old transactions to ARCHIVED.
func (s *ledgerService) ArchiveTransactions(ctx context.Context, userID string, olderThan time.Time) (int64, error) {
	account, err := s.accountRepo.FindAccountByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}

	count, err := s.transactionRepo.ArchiveTransactions(ctx, account.AccountID, olderThan)
	if err != nil {
		s.LogError(ctx, err, "Failed to archive transactions",
			slog.String("account_id", account.AccountID))
		return 0, err
	}

	if count > 0 {
		s.LogInfo(ctx, "Archived transactions",
			slog.String("account_id", account.AccountID),
			slog.Int64("count", count))
	}
	return count, nil
}

// outcomeLabel maps an error to its stable taxonomy code for metrics.
func outcomeLabel(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, apperrors.ErrAccountNotFound), errors.Is(err, apperrors.ErrNotFound):
		return "not_found"
	case errors.Is(err, &apperrors.InactiveAccountError{}):
		return "inactive_account"
	case errors.Is(err, apperrors.ErrInvalidAmount):
		return "invalid_amount"
	case errors.Is(err, apperrors.ErrInvalidType):
		return "invalid_type"
	case errors.Is(err, &apperrors.InsufficientFundsError{}):
		return "insufficient_funds"
	case errors.Is(err, apperrors.ErrDuplicateReference):
		return "duplicate_reference"
	case errors.Is(err, apperrors.ErrNotReversible):
		return "not_reversible"
	case errors.Is(err, apperrors.ErrAlreadyReversed):
		return "already_reversed"
	case errors.Is(err, apperrors.ErrBalanceConflict):
		return "balance_conflict"
	case errors.Is(err, apperrors.ErrLockTimeout):
		return "lock_timeout"
	default:
		return "persistence_failure"
	}
}
