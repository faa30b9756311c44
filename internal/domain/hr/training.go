package hr

import (
	"strings"
	"time"

	"github.com/bizsuite/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Training represents a scheduled training program
type Training struct {
	shared.TenantAggregateRoot
	Title              string
	StartDate          time.Time
	EndDate            time.Time
	CostPerParticipant decimal.Decimal
}

// NewTraining creates a new training program
func NewTraining(tenantID uuid.UUID, title string, startDate, endDate time.Time, costPerParticipant decimal.Decimal) (*Training, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Training title cannot be empty")
	}
	if endDate.Before(startDate) {
		return nil, shared.NewDomainError("INVALID_RANGE", "Training end date cannot precede start date")
	}
	if costPerParticipant.IsNegative() {
		return nil, shared.NewDomainError("INVALID_COST", "Cost per participant cannot be negative")
	}
	return &Training{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Title:               title,
		StartDate:           startDate,
		EndDate:             endDate,
		CostPerParticipant:  costPerParticipant,
	}, nil
}

// CountsToward reports whether the training's date range overlaps the period
func (t *Training) CountsToward(p Period) bool {
	return p.OverlapsRange(t.StartDate, t.EndDate)
}

// HasBillableCost returns true when the training carries a positive
// per-participant cost
func (t *Training) HasBillableCost() bool {
	return t.CostPerParticipant.IsPositive()
}

// TrainingEnrollment links an employee to a training program.
// Each qualifying enrollment contributes the training's full cost to
// payroll deductions and produces its own expense record; enrollments
// are deliberately not deduplicated per training.
type TrainingEnrollment struct {
	shared.TenantAggregateRoot
	EmployeeID uuid.UUID
	TrainingID uuid.UUID
	EnrolledAt time.Time
}

// NewTrainingEnrollment enrolls an employee into a training
func NewTrainingEnrollment(tenantID, employeeID, trainingID uuid.UUID) (*TrainingEnrollment, error) {
	if employeeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE", "Enrollment must reference an employee")
	}
	if trainingID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_TRAINING", "Enrollment must reference a training")
	}
	return &TrainingEnrollment{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		EmployeeID:          employeeID,
		TrainingID:          trainingID,
		EnrolledAt:          time.Now(),
	}, nil
}

// EnrolledTraining pairs an enrollment with its resolved training
type EnrolledTraining struct {
	Enrollment TrainingEnrollment
	Training   Training
}
