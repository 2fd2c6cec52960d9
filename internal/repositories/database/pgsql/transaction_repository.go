package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
	"github.com/walletapp/wallet_ledger_app/internal/apperrors"
	"github.com/walletapp/wallet_ledger_app/internal/core/domain"
	portsrepo "github.com/walletapp/wallet_ledger_app/internal/core/ports/repositories"
	"github.com/walletapp/wallet_ledger_app/internal/models"
	"github.com/walletapp/wallet_ledger_app/internal/utils/mapping"
	"github.com/walletapp/wallet_ledger_app/internal/utils/pagination"
)

type PgxTransactionRepository struct {
	BaseRepository
}

// NewTransactionRepository creates a new repository for the transaction journal.
func NewTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepositoryFacade {
	return &PgxTransactionRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepositoryFacade
var _ portsrepo.TransactionRepositoryFacade = (*PgxTransactionRepository)(nil)

const transactionColumns = `transaction_id, account_id, amount, transaction_type, description, reference, status, balance_after, reversed, reversal_id, metadata, created_at, last_updated_at`

// priorBalance inverts the balance update: the balance the account must
// still hold for newBalance to be the correct post-transaction value.
func priorBalance(txnType models.TransactionType, amount, newBalance decimal.Decimal) decimal.Decimal {
	if txnType == models.TransactionType(domain.Debit) {
		return newBalance.Add(amount)
	}
	return newBalance.Sub(amount)
}

func scanTransaction(row pgx.Row) (*models.Transaction, error) {
	var m models.Transaction
	err := row.Scan(
		&m.TransactionID,
		&m.AccountID,
		&m.Amount,
		&m.Type,
		&m.Description,
		&m.Reference,
		&m.Status,
		&m.BalanceAfter,
		&m.Reversed,
		&m.ReversalID,
		&m.Metadata,
		&m.CreatedAt,
		&m.LastUpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &m, nil
}

// SaveTransactionAndBalance persists the transaction record and the new
// account balance as one database transaction. The account row is locked
// with FOR UPDATE so the per-account exclusion property holds even when
// several ledger instances share the store. On any error nothing is visible:
// the deferred rollback undoes both writes.
func (r *PgxTransactionRepository) SaveTransactionAndBalance(ctx context.Context, txn domain.Transaction, newBalance decimal.Decimal) error {
	m, err := mapping.ToModelTransaction(txn)
	if err != nil {
		return apperrors.NewAppError(500, "failed to map transaction "+txn.TransactionID, err)
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer r.Rollback(ctx, tx) //nolint:errcheck // no-op after successful commit

	// Lock the account row for the duration of the write.
	var lockedBalance decimal.Decimal
	err = tx.QueryRow(ctx,
		`SELECT balance FROM accounts WHERE account_id = $1 AND deleted_at IS NULL FOR UPDATE;`,
		m.AccountID,
	).Scan(&lockedBalance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrAccountNotFound
		}
		return apperrors.NewAppError(500, "failed to lock account "+m.AccountID, err)
	}

	// newBalance was computed from a read taken before the lock. If another
	// writer committed in between, the locked balance has moved and blindly
	// writing newBalance would drop that update. Abort; the caller retries.
	if prior := priorBalance(m.Type, m.Amount, newBalance); !lockedBalance.Equal(prior) {
		return fmt.Errorf("%w: account %s: expected %s, found %s",
			apperrors.ErrBalanceConflict, m.AccountID, prior.StringFixed(2), lockedBalance.StringFixed(2))
	}

	insertQuery := `
		INSERT INTO transactions (transaction_id, account_id, amount, transaction_type, description, reference, status, balance_after, reversed, reversal_id, metadata, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err = tx.Exec(ctx, insertQuery,
		m.TransactionID,
		m.AccountID,
		m.Amount,
		m.Type,
		m.Description,
		m.Reference,
		m.Status,
		m.BalanceAfter,
		m.Reversed,
		m.ReversalID,
		m.Metadata,
		m.CreatedAt,
		m.LastUpdatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return fmt.Errorf("%w: %s", apperrors.ErrDuplicateReference, m.Reference)
		}
		return apperrors.NewAppError(500, "failed to insert transaction "+m.TransactionID, err)
	}

	updateQuery := `
		UPDATE accounts
		SET balance = $2, last_transaction_at = $3, last_updated_at = $3
		WHERE account_id = $1;
	`
	if _, err := tx.Exec(ctx, updateQuery, m.AccountID, newBalance, m.CreatedAt); err != nil {
		return apperrors.NewAppError(500, "failed to update balance for account "+m.AccountID, err)
	}

	return r.Commit(ctx, tx)
}

// FindTransactionByID retrieves a transaction by its identifier.
func (r *PgxTransactionRepository) FindTransactionByID(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE transaction_id = $1;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, transactionID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find transaction "+transactionID, err)
	}

	txn, err := mapping.ToDomainTransaction(*m)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to map transaction "+transactionID, err)
	}
	return &txn, nil
}

// FindTransactionByReference retrieves a transaction by its idempotency reference.
func (r *PgxTransactionRepository) FindTransactionByReference(ctx context.Context, reference string) (*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE reference = $1;`

	m, err := scanTransaction(r.Pool.QueryRow(ctx, query, reference))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find transaction by reference", err)
	}

	txn, err := mapping.ToDomainTransaction(*m)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to map transaction "+m.TransactionID, err)
	}
	return &txn, nil
}

// SumPendingByAccount returns the pending credit and debit totals for an account.
func (r *PgxTransactionRepository) SumPendingByAccount(ctx context.Context, accountID string) (portsrepo.PendingTotals, error) {
	query := `
		SELECT
			COALESCE(SUM(amount) FILTER (WHERE transaction_type = 'CREDIT'), 0),
			COALESCE(SUM(amount) FILTER (WHERE transaction_type = 'DEBIT'), 0)
		FROM transactions
		WHERE account_id = $1 AND status = 'PENDING';
	`
	var totals portsrepo.PendingTotals
	err := r.Pool.QueryRow(ctx, query, accountID).Scan(&totals.Credits, &totals.Debits)
	if err != nil {
		return portsrepo.PendingTotals{}, apperrors.NewAppError(500, "failed to sum pending transactions for account "+accountID, err)
	}
	return totals, nil
}

// SummarizeByAccount aggregates journal statistics for an account.
func (r *PgxTransactionRepository) SummarizeByAccount(ctx context.Context, accountID string) (portsrepo.AccountJournalStats, error) {
	query := `
		SELECT
			COUNT(*),
			COALESCE(MAX(amount) FILTER (WHERE transaction_type = 'CREDIT'), 0),
			COALESCE(MAX(amount) FILTER (WHERE transaction_type = 'DEBIT'), 0),
			MAX(created_at)
		FROM transactions
		WHERE account_id = $1;
	`
	var stats portsrepo.AccountJournalStats
	err := r.Pool.QueryRow(ctx, query, accountID).Scan(
		&stats.TransactionCount,
		&stats.LargestCredit,
		&stats.LargestDebit,
		&stats.LastTransactionAt,
	)
	if err != nil {
		return portsrepo.AccountJournalStats{}, apperrors.NewAppError(500, "failed to summarize transactions for account "+accountID, err)
	}
	return stats, nil
}

// ListTransactionsByAccount returns a page of an account's transactions,
// newest first, using a (created_at, transaction_id) keyset cursor.
func (r *PgxTransactionRepository) ListTransactionsByAccount(ctx context.Context, accountID string, filters portsrepo.TransactionFilters, limit int, nextToken *string) ([]domain.Transaction, *string, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE account_id = $1`
	args := []any{accountID}

	if filters.Type != nil {
		args = append(args, string(*filters.Type))
		query += ` AND transaction_type = $` + strconv.Itoa(len(args))
	}
	if filters.Status != nil {
		args = append(args, string(*filters.Status))
		query += ` AND status = $` + strconv.Itoa(len(args))
	}
	if filters.DateFrom != nil {
		args = append(args, *filters.DateFrom)
		query += ` AND created_at >= $` + strconv.Itoa(len(args))
	}
	if filters.DateTo != nil {
		args = append(args, *filters.DateTo)
		query += ` AND created_at <= $` + strconv.Itoa(len(args))
	}

	if nextToken != nil && *nextToken != "" {
		cursorCreatedAt, cursorID, err := pagination.DecodeToken(*nextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
		}
		args = append(args, cursorCreatedAt)
		createdArg := strconv.Itoa(len(args))
		args = append(args, cursorID)
		idArg := strconv.Itoa(len(args))
		query += ` AND (created_at, transaction_id) < ($` + createdArg + `, $` + idArg + `)`
	}

	// Fetch one extra row to know whether another page exists.
	args = append(args, limit+1)
	query += ` ORDER BY created_at DESC, transaction_id DESC LIMIT $` + strconv.Itoa(len(args)) + `;`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to list transactions for account "+accountID, err)
	}
	defer rows.Close()

	var ms []models.Transaction
	for rows.Next() {
		m, err := scanTransaction(rows)
		if err != nil {
			return nil, nil, apperrors.NewAppError(500, "failed to scan transaction row", err)
		}
		ms = append(ms, *m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed reading transaction rows", err)
	}

	var outToken *string
	if len(ms) > limit {
		ms = ms[:limit]
		last := ms[len(ms)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.TransactionID)
		outToken = &token
	}

	txns, err := mapping.ToDomainTransactionSlice(ms)
	if err != nil {
		return nil, nil, apperrors.NewAppError(500, "failed to map transactions", err)
	}
	return txns, outToken, nil
}

// MarkTransactionReversed records the reversal linkage on the original
// transaction. Metadata-only; balances are untouched.
func (r *PgxTransactionRepository) MarkTransactionReversed(ctx context.Context, transactionID string, reversalID string, now time.Time) error {
	query := `
		UPDATE transactions
		SET status = 'REVERSED', reversed = TRUE, reversal_id = $2, last_updated_at = $3
		WHERE transaction_id = $1 AND reversed = FALSE;
	`
	tag, err := r.Pool.Exec(ctx, query, transactionID, reversalID, now)
	if err != nil {
		return apperrors.NewAppError(500, "failed to mark transaction "+transactionID+" reversed", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrAlreadyReversed
	}
	return nil
}

// ArchiveTransactions bulk-moves an account's old transactions to ARCHIVED.
func (r *PgxTransactionRepository) ArchiveTransactions(ctx context.Context, accountID string, olderThan time.Time) (int64, error) {
	query := `
		UPDATE transactions
		SET status = 'ARCHIVED', last_updated_at = NOW()
		WHERE account_id = $1 AND created_at < $2 AND status NOT IN ('ARCHIVED', 'PENDING');
	`
	tag, err := r.Pool.Exec(ctx, query, accountID, olderThan)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to archive transactions for account "+accountID, err)
	}
	return tag.RowsAffected(), nil
}
