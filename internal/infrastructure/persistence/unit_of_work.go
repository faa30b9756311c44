package persistence

import (
	"context"

	payrollapp "github.com/bizsuite/backend/internal/application/payroll"
	"gorm.io/gorm"
)

// GormUnitOfWork executes payroll write batches inside a single database
// transaction. Every store handed to the callback is bound to that
// transaction, so either all writes commit or none do.
type GormUnitOfWork struct {
	db *gorm.DB
}

// NewGormUnitOfWork creates a new GormUnitOfWork
func NewGormUnitOfWork(db *gorm.DB) *GormUnitOfWork {
	return &GormUnitOfWork{db: db}
}

// Execute runs fn within a transaction, rolling back on error
func (u *GormUnitOfWork) Execute(ctx context.Context, fn func(ctx context.Context, stores payrollapp.Stores) error) error {
	return u.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		stores := payrollapp.Stores{
			Payroll:      NewGormPayrollRepository(tx),
			Transactions: NewGormTransactionRepository(tx),
			Expenses:     NewGormExpenseRecordRepository(tx),
			Documents:    NewGormDocumentRepository(tx),
		}
		return fn(ctx, stores)
	})
}
