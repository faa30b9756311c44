package identity

import (
	"strings"

	"github.com/bizsuite/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Team represents a team within a department
type Team struct {
	shared.TenantAggregateRoot
	Name         string
	DepartmentID uuid.UUID
}

// NewTeam creates a new team belonging to a department
func NewTeam(tenantID, departmentID uuid.UUID, name string) (*Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Team name cannot be empty")
	}
	if departmentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_DEPARTMENT", "Team must belong to a department")
	}
	return &Team{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                name,
		DepartmentID:        departmentID,
	}, nil
}
