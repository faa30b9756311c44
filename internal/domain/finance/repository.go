package finance

import (
	"context"

	"github.com/bizsuite/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AccountRepository defines persistence operations for ledger accounts
type AccountRepository interface {
	// FindByName resolves an account by its exact name, nil when absent.
	FindByName(ctx context.Context, tenantID uuid.UUID, name string) (*Account, error)
	Save(ctx context.Context, account *Account) error
}

// TransactionRepository defines persistence operations for ledger postings
type TransactionRepository interface {
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]Transaction, int64, error)
	Create(ctx context.Context, transaction *Transaction) error
}

// ExpenseRecordRepository defines persistence operations for expense records
type ExpenseRecordRepository interface {
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]ExpenseRecord, int64, error)
	Create(ctx context.Context, record *ExpenseRecord) error
}
