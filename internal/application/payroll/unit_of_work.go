package payroll

import (
	"context"

	"github.com/bizsuite/backend/internal/domain/document"
	"github.com/bizsuite/backend/internal/domain/finance"
	"github.com/bizsuite/backend/internal/domain/payroll"
)

// Stores bundles the write-side repositories of one payroll unit of work.
// All writes issued through a Stores instance share one transaction.
type Stores struct {
	Payroll      payroll.Repository
	Transactions finance.TransactionRepository
	Expenses     finance.ExpenseRecordRepository
	Documents    document.Repository
}

// UnitOfWork executes a function inside a single atomic transaction.
// Every write performed through the supplied Stores commits together or
// rolls back together; the payroll record, ledger posting, expense
// records and document metadata of one invocation are never persisted
// partially.
type UnitOfWork interface {
	Execute(ctx context.Context, fn func(ctx context.Context, stores Stores) error) error
}
