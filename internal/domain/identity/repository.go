package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines persistence operations for users
type UserRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*User, error)
	Save(ctx context.Context, user *User) error
}

// DepartmentRepository defines persistence operations for departments
type DepartmentRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Department, error)
	Save(ctx context.Context, department *Department) error
}

// TeamRepository defines persistence operations for teams
type TeamRepository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Team, error)
	Save(ctx context.Context, team *Team) error
}
