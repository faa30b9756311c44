package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/bizsuite/backend/internal/domain/payroll"
	"github.com/bizsuite/backend/internal/domain/shared"
	"github.com/bizsuite/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// GormPayrollRepository implements payroll.Repository using GORM
type GormPayrollRepository struct {
	db *gorm.DB
}

// NewGormPayrollRepository creates a new GormPayrollRepository
func NewGormPayrollRepository(db *gorm.DB) *GormPayrollRepository {
	return &GormPayrollRepository{db: db}
}

// FindByIDForTenant finds a payroll record by ID for a specific tenant, nil when absent
func (r *GormPayrollRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*payroll.PayrollRecord, error) {
	var model models.PayrollRecordModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByEmployeeAndPeriod finds the record for an (employee, period) pair, nil when absent
func (r *GormPayrollRepository) FindByEmployeeAndPeriod(ctx context.Context, tenantID, employeeID uuid.UUID, period string) (*payroll.PayrollRecord, error) {
	var model models.PayrollRecordModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND employee_id = ? AND period = ?", tenantID, employeeID, period).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAllForTenant returns payroll records for a tenant with filtering and a total count
func (r *GormPayrollRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]payroll.PayrollRecord, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.PayrollRecordModel{}).
		Where("tenant_id = ?", tenantID)

	if period, ok := filter.Filters["period"]; ok {
		query = query.Where("period = ?", period)
	}
	if employeeID, ok := filter.Filters["employee_id"]; ok {
		query = query.Where("employee_id = ?", employeeID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortField := ValidateSortField(filter.OrderBy, PayrollRecordSortFields, "created_at")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", sortField, sortOrder))

	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize)
		if offset := (filter.Page - 1) * filter.PageSize; offset > 0 {
			query = query.Offset(offset)
		}
	}

	var recordModels []models.PayrollRecordModel
	if err := query.Find(&recordModels).Error; err != nil {
		return nil, 0, err
	}
	records := make([]payroll.PayrollRecord, len(recordModels))
	for i, model := range recordModels {
		records[i] = *model.ToDomain()
	}
	return records, total, nil
}

// Create inserts a new payroll record. A unique-index violation on
// (employee, period) surfaces as payroll.ErrDuplicatePeriod.
func (r *GormPayrollRepository) Create(ctx context.Context, record *payroll.PayrollRecord) error {
	var model models.PayrollRecordModel
	model.FromDomain(record)
	if err := r.db.WithContext(ctx).Create(&model).Error; err != nil {
		if isUniqueViolation(err) {
			return payroll.ErrDuplicatePeriod
		}
		return err
	}
	return nil
}

// isUniqueViolation reports whether the error is a unique-constraint
// violation from the postgres driver
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
