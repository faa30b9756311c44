package hr

import (
	"time"

	"github.com/bizsuite/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// OnboardingStatus represents the status of an onboarding checklist
type OnboardingStatus string

const (
	OnboardingStatusPending    OnboardingStatus = "PENDING"
	OnboardingStatusInProgress OnboardingStatus = "IN_PROGRESS"
	OnboardingStatusCompleted  OnboardingStatus = "COMPLETED"
)

// IsValid checks if the status is a valid OnboardingStatus
func (s OnboardingStatus) IsValid() bool {
	switch s {
	case OnboardingStatusPending, OnboardingStatusInProgress, OnboardingStatusCompleted:
		return true
	}
	return false
}

// String returns the string representation of OnboardingStatus
func (s OnboardingStatus) String() string {
	return string(s)
}

// OnboardingRecord tracks an employee's onboarding progress.
// Payroll reads it for downstream reporting; it carries no monetary effect.
type OnboardingRecord struct {
	shared.TenantAggregateRoot
	EmployeeID  uuid.UUID
	Status      OnboardingStatus
	CompletedAt *time.Time
}

// NewOnboardingRecord creates a new onboarding record in pending status
func NewOnboardingRecord(tenantID, employeeID uuid.UUID) (*OnboardingRecord, error) {
	if employeeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE", "Onboarding record must reference an employee")
	}
	return &OnboardingRecord{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		EmployeeID:          employeeID,
		Status:              OnboardingStatusPending,
	}, nil
}

// Complete marks the onboarding as completed
func (o *OnboardingRecord) Complete() error {
	if o.Status == OnboardingStatusCompleted {
		return shared.NewDomainError("INVALID_STATE", "Onboarding is already completed")
	}
	now := time.Now()
	o.Status = OnboardingStatusCompleted
	o.CompletedAt = &now
	o.UpdatedAt = now
	return nil
}
