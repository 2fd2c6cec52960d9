package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/walletapp/wallet_ledger_app/internal/core/domain"
	"github.com/walletapp/wallet_ledger_app/internal/models"
)

// ToModelTransaction converts a domain Transaction to a model Transaction,
// marshalling the metadata map into jsonb bytes.
func ToModelTransaction(d domain.Transaction) (models.Transaction, error) {
	var metadata []byte
	if len(d.Metadata) > 0 {
		var err error
		metadata, err = json.Marshal(d.Metadata)
		if err != nil {
			return models.Transaction{}, fmt.Errorf("failed to marshal transaction metadata: %w", err)
		}
	}

	return models.Transaction{
		TransactionID: d.TransactionID,
		AccountID:     d.AccountID,
		Amount:        d.Amount,
		Type:          models.TransactionType(d.Type),
		Description:   d.Description,
		Reference:     d.Reference,
		Status:        models.TransactionStatus(d.Status),
		BalanceAfter:  d.BalanceAfter,
		Reversed:      d.Reversal.Reversed,
		ReversalID:    d.Reversal.ReversalID,
		Metadata:      metadata,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			LastUpdatedAt: d.LastUpdatedAt,
		},
	}, nil
}

// ToDomainTransaction converts a model Transaction to a domain Transaction.
func ToDomainTransaction(m models.Transaction) (domain.Transaction, error) {
	var metadata map[string]string
	if len(m.Metadata) > 0 {
		if err := json.Unmarshal(m.Metadata, &metadata); err != nil {
			return domain.Transaction{}, fmt.Errorf("failed to unmarshal metadata for transaction %s: %w", m.TransactionID, err)
		}
	}

	return domain.Transaction{
		TransactionID: m.TransactionID,
		AccountID:     m.AccountID,
		Amount:        m.Amount,
		Type:          domain.TransactionType(m.Type),
		Description:   m.Description,
		Reference:     m.Reference,
		Status:        domain.TransactionStatus(m.Status),
		BalanceAfter:  m.BalanceAfter,
		Reversal: domain.Reversal{
			Reversed:   m.Reversed,
			ReversalID: m.ReversalID,
		},
		Metadata: metadata,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			LastUpdatedAt: m.LastUpdatedAt,
		},
	}, nil
}

// ToDomainTransactionSlice converts a slice of model Transactions.
func ToDomainTransactionSlice(ms []models.Transaction) ([]domain.Transaction, error) {
	ds := make([]domain.Transaction, len(ms))
	for i, m := range ms {
		d, err := ToDomainTransaction(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
