package mapping

import (
	"github.com/walletapp/wallet_ledger_app/internal/core/domain"
	"github.com/walletapp/wallet_ledger_app/internal/models"
)

// ToModelAccount converts a domain Account to a model Account.
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:         d.AccountID,
		UserID:            d.UserID,
		Balance:           d.Balance,
		CurrencyCode:      d.CurrencyCode,
		Status:            models.AccountStatus(d.Status),
		LastTransactionAt: d.LastTransactionAt,
		DeletedAt:         d.DeletedAt,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}
}

// ToDomainAccount converts a model Account to a domain Account.
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:         m.AccountID,
		UserID:            m.UserID,
		Balance:           m.Balance,
		CurrencyCode:      m.CurrencyCode,
		Status:            domain.AccountStatus(m.Status),
		LastTransactionAt: m.LastTransactionAt,
		DeletedAt:         m.DeletedAt,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}
}
