package payroll

import (
	"context"

	"github.com/bizsuite/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Repository defines persistence operations for payroll records.
// Implementations must enforce uniqueness per (employee, period) and
// surface a violation as ErrDuplicatePeriod. Employee IDs are globally
// unique, so this also bounds the pair within a tenant.
type Repository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*PayrollRecord, error)
	FindByEmployeeAndPeriod(ctx context.Context, tenantID, employeeID uuid.UUID, period string) (*PayrollRecord, error)
	FindAllForTenant(ctx context.Context, tenantID uuid.UUID, filter shared.Filter) ([]PayrollRecord, int64, error)
	Create(ctx context.Context, record *PayrollRecord) error
}
