package identity

import (
	"strings"

	"github.com/bizsuite/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Department represents an organizational department aggregate root
type Department struct {
	shared.TenantAggregateRoot
	Name     string
	Code     string
	ParentID *uuid.UUID
}

// NewDepartment creates a new department
func NewDepartment(tenantID uuid.UUID, name, code string) (*Department, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Department name cannot be empty")
	}
	if len(name) > 100 {
		return nil, shared.NewDomainError("INVALID_NAME", "Department name cannot exceed 100 characters")
	}
	return &Department{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                name,
		Code:                strings.TrimSpace(code),
	}, nil
}

// SetParent assigns a parent department
func (d *Department) SetParent(parentID uuid.UUID) {
	d.ParentID = &parentID
}
