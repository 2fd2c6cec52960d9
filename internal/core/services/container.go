package services

import (
	portsrepo "github.com/walletapp/wallet_ledger_app/internal/core/ports/repositories"
	portssvc "github.com/walletapp/wallet_ledger_app/internal/core/ports/services"
	"github.com/walletapp/wallet_ledger_app/internal/platform/config"
)

// Container holds all the services and manages their dependencies
type Container struct {
	User    portssvc.UserSvcFacade
	Account portssvc.AccountSvcFacade
	Balance portssvc.BalanceSvcFacade
	Ledger  portssvc.LedgerSvcFacade
}

// NewContainer creates a new service container with properly initialized dependencies
func NewContainer(repos *portsrepo.RepositoryProvider, cache portsrepo.BalanceCache, cfg *config.Config) *Container {
	container := &Container{}

	container.User = NewUserService(repos.UserRepo)

	container.Account = NewAccountService(
		repos.AccountRepo,
		repos.TransactionRepo,
		cfg.DefaultCurrency,
	)

	// Balance service first: the ledger invalidates through it after writes.
	container.Balance = NewBalanceService(
		repos.AccountRepo,
		repos.TransactionRepo,
		cache,
		cfg.BalanceCacheTTL,
	)

	container.Ledger = NewLedgerService(
		repos.TransactionRepo,
		repos.AccountRepo,
		container.Balance,
		LedgerConfig{
			MaxTransactionAmount: cfg.MaxTransactionAmount,
			AccountLockTimeout:   cfg.AccountLockTimeout,
			ReversalWindow:       cfg.ReversalWindow,
		},
	)

	return container
}
