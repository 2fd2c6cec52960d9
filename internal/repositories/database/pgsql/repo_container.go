package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"
	portsrepo "github.com/walletapp/wallet_ledger_app/internal/core/ports/repositories"
)

// NewRepositoryProvider wires all pgsql repositories onto one pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		AccountRepo:     NewAccountRepository(dbPool),
		TransactionRepo: NewTransactionRepository(dbPool),
		UserRepo:        NewUserRepository(dbPool),
	}
}
