package persistence

import (
	"context"

	"github.com/bizsuite/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTenantSource lists tenants that have employee records. The
// scheduler uses it to know which tenants to run monthly payroll for.
type GormTenantSource struct {
	db *gorm.DB
}

// NewGormTenantSource creates a new GormTenantSource
func NewGormTenantSource(db *gorm.DB) *GormTenantSource {
	return &GormTenantSource{db: db}
}

// ListTenantIDs returns the distinct tenant IDs present in the employees table
func (s *GormTenantSource) ListTenantIDs(ctx context.Context) ([]uuid.UUID, error) {
	var tenantIDs []uuid.UUID
	if err := s.db.WithContext(ctx).
		Model(&models.EmployeeModel{}).
		Distinct("tenant_id").
		Pluck("tenant_id", &tenantIDs).Error; err != nil {
		return nil, err
	}
	return tenantIDs, nil
}
