package identity

import (
	"strings"

	"github.com/bizsuite/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// UserStatus represents the lifecycle status of a user account
type UserStatus string

const (
	UserStatusActive   UserStatus = "ACTIVE"
	UserStatusInactive UserStatus = "INACTIVE"
	UserStatusLocked   UserStatus = "LOCKED"
)

// IsValid checks if the status is a valid UserStatus
func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusActive, UserStatusInactive, UserStatusLocked:
		return true
	}
	return false
}

// String returns the string representation of UserStatus
func (s UserStatus) String() string {
	return string(s)
}

// User represents a user account aggregate root.
// Payroll documents and training expenses are owned by and credited to users.
type User struct {
	shared.TenantAggregateRoot
	Username    string
	Email       string
	DisplayName string
	Status      UserStatus
}

// NewUser creates a new user
func NewUser(tenantID uuid.UUID, username, email, displayName string) (*User, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, shared.NewDomainError("INVALID_USERNAME", "Username cannot be empty")
	}
	if displayName == "" {
		displayName = username
	}
	return &User{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Username:            username,
		Email:               strings.TrimSpace(email),
		DisplayName:         displayName,
		Status:              UserStatusActive,
	}, nil
}

// IsActive returns true if the user account is active
func (u *User) IsActive() bool {
	return u.Status == UserStatusActive
}

// Name returns the name used when crediting records to this user.
// Falls back to the username when no display name is set.
func (u *User) Name() string {
	if u.DisplayName != "" {
		return u.DisplayName
	}
	return u.Username
}
