package persistence

import (
	"context"
	"errors"
	"fmt"

	"github.com/bizsuite/backend/internal/domain/hr"
	"github.com/bizsuite/backend/internal/domain/shared"
	"github.com/bizsuite/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormEmployeeRepository implements hr.EmployeeRepository using GORM
type GormEmployeeRepository struct {
	db *gorm.DB
}

// NewGormEmployeeRepository creates a new GormEmployeeRepository
func NewGormEmployeeRepository(db *gorm.DB) *GormEmployeeRepository {
	return &GormEmployeeRepository{db: db}
}

// FindByIDForTenant finds an employee by ID for a specific tenant, nil when absent
func (r *GormEmployeeRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*hr.Employee, error) {
	var model models.EmployeeModel
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

// FindActiveForTenant returns all currently employed staff for a tenant
func (r *GormEmployeeRepository) FindActiveForTenant(ctx context.Context, tenantID uuid.UUID) ([]hr.Employee, error) {
	var employeeModels []models.EmployeeModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND status IN ?", tenantID, []hr.EmploymentStatus{hr.EmploymentStatusActive, hr.EmploymentStatusOnLeave}).
		Order("employee_number ASC").
		Find(&employeeModels).Error; err != nil {
		return nil, err
	}
	employees := make([]hr.Employee, len(employeeModels))
	for i, model := range employeeModels {
		employees[i] = *model.ToDomain()
	}
	return employees, nil
}

// FindAllForTenant returns employees for a tenant with filtering and a total count
func (r *GormEmployeeRepository) FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]hr.Employee, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.EmployeeModel{}).
		Where("tenant_id = ?", tenantID)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.Where("(employee_number ILIKE ? OR position ILIKE ?)", pattern, pattern)
	}
	if status, ok := filter.Filters["status"]; ok {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortField := ValidateSortField(filter.OrderBy, EmployeeSortFields, "created_at")
	sortOrder := ValidateSortOrder(filter.OrderDir)
	query = query.Order(fmt.Sprintf("%s %s", sortField, sortOrder))

	if filter.PageSize > 0 {
		query = query.Limit(filter.PageSize)
		if offset := (filter.Page - 1) * filter.PageSize; offset > 0 {
			query = query.Offset(offset)
		}
	}

	var employeeModels []models.EmployeeModel
	if err := query.Find(&employeeModels).Error; err != nil {
		return nil, 0, err
	}
	employees := make([]hr.Employee, len(employeeModels))
	for i, model := range employeeModels {
		employees[i] = *model.ToDomain()
	}
	return employees, total, nil
}

// Save creates or updates an employee
func (r *GormEmployeeRepository) Save(ctx context.Context, employee *hr.Employee) error {
	var model models.EmployeeModel
	model.FromDomain(employee)
	return r.db.WithContext(ctx).Save(&model).Error
}
