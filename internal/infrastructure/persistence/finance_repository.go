package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/bizsuite/backend/internal/domain/finance"
	"github.com/bizsuite/backend/internal/domain/shared"
	"github.com/bizsuite/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormAccountRepository implements finance.AccountRepository using GORM
type GormAccountRepository struct {
	db *gorm.DB
}

// NewGormAccountRepository creates a new GormAccountRepository
func NewGormAccountRepository(db *gorm.DB) *GormAccountRepository {
	return &GormAccountRepository{db: db}
}

// FindByName resolves a ledger account by its exact name, nil when absent
func (r *GormAccountRepository) FindByName(ctx context.Context, tenantID uuid.UUID, name string) (*finance.Account, error) {
	var model models.AccountModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND name = ?", tenantID, name).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Save creates or updates a ledger account
func (r *GormAccountRepository) Save(ctx context.Context, account *finance.Account) error {
	var model models.AccountModel
	model.FromDomain(account)
	return r.db.WithContext(ctx).Save(&model).Error
}

// GormTransactionRepository implements finance.TransactionRepository using GORM
type GormTransactionRepository struct {
	db *gorm.DB
}

// NewGormTransactionRepository creates a new GormTransactionRepository
func NewGormTransactionRepository(db *gorm.DB) *GormTransactionRepository {
	return &GormTransactionRepository{db: db}
}

// FindAllForTenant returns ledger postings for a tenant with filtering and a total count
func (r *GormTransactionRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]finance.Transaction, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.TransactionModel{}).
		Where("tenant_id = ?", tenantID)

	if txType, ok := filter.Filters["type"]; ok {
		query = query.Where("type = ?", txType)
	}
	if filter.Search != "" {
		query = query.Where("description ILIKE ?", "%"+filter.Search+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortField := ValidateSortField(filter.OrderBy, TransactionSortFields, "occurred_at")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", sortField, sortOrder))

	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize)
		if offset := (filter.Page - 1) * filter.PageSize; offset > 0 {
			query = query.Offset(offset)
		}
	}

	var txModels []models.TransactionModel
	if err := query.Find(&txModels).Error; err != nil {
		return nil, 0, err
	}
	transactions := make([]finance.Transaction, len(txModels))
	for i, model := range txModels {
		transactions[i] = *model.ToDomain()
	}
	return transactions, total, nil
}

// Create inserts a new ledger posting
func (r *GormTransactionRepository) Create(ctx context.Context, transaction *finance.Transaction) error {
	var model models.TransactionModel
	model.FromDomain(transaction)
	return r.db.WithContext(ctx).Create(&model).Error
}

// GormExpenseRecordRepository implements finance.ExpenseRecordRepository using GORM
type GormExpenseRecordRepository struct {
	db *gorm.DB
}

// NewGormExpenseRecordRepository creates a new GormExpenseRecordRepository
func NewGormExpenseRecordRepository(db *gorm.DB) *GormExpenseRecordRepository {
	return &GormExpenseRecordRepository{db: db}
}

// FindAllForTenant returns expense records for a tenant with filtering and a total count
func (r *GormExpenseRecordRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]finance.ExpenseRecord, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.ExpenseRecordModel{}).
		Where("tenant_id = ?", tenantID)

	if category, ok := filter.Filters["category"]; ok {
		query = query.Where("category = ?", category)
	}
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("(title ILIKE ? OR description ILIKE ?)", pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortField := ValidateSortField(filter.OrderBy, ExpenseRecordSortFields, "incurred_at")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", sortField, sortOrder))

	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize)
		if offset := (filter.Page - 1) * filter.PageSize; offset > 0 {
			query = query.Offset(offset)
		}
	}

	var expenseModels []models.ExpenseRecordModel
	if err := query.Find(&expenseModels).Error; err != nil {
		return nil, 0, err
	}
	expenses := make([]finance.ExpenseRecord, len(expenseModels))
	for i, model := range expenseModels {
		expenses[i] = *model.ToDomain()
	}
	return expenses, total, nil
}

// Create inserts a new expense record
func (r *GormExpenseRecordRepository) Create(ctx context.Context, record *finance.ExpenseRecord) error {
	var model models.ExpenseRecordModel
	model.FromDomain(record)
	return r.db.WithContext(ctx).Create(&model).Error
}
