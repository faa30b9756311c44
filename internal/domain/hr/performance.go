package hr

import (
	"time"

	"github.com/bizsuite/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReviewStatus represents the status of a performance review
type ReviewStatus string

const (
	ReviewStatusDraft      ReviewStatus = "DRAFT"
	ReviewStatusInProgress ReviewStatus = "IN_PROGRESS"
	ReviewStatusCompleted  ReviewStatus = "COMPLETED"
)

// IsValid checks if the status is a valid ReviewStatus
func (s ReviewStatus) IsValid() bool {
	switch s {
	case ReviewStatusDraft, ReviewStatusInProgress, ReviewStatusCompleted:
		return true
	}
	return false
}

// String returns the string representation of ReviewStatus
func (s ReviewStatus) String() string {
	return string(s)
}

// PerformanceReview represents a per-period performance review.
// A completed review's bonus feeds into gross pay for its period.
type PerformanceReview struct {
	shared.TenantAggregateRoot
	EmployeeID   uuid.UUID
	ReviewPeriod string // canonical YYYY-MM form
	Status       ReviewStatus
	Rating       *int
	Bonus        *decimal.Decimal
	Summary      string
}

// NewPerformanceReview creates a new review in draft status
func NewPerformanceReview(tenantID, employeeID uuid.UUID, period Period) (*PerformanceReview, error) {
	if employeeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE", "Review must reference an employee")
	}
	if period.IsZero() {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Review period is required")
	}
	return &PerformanceReview{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		EmployeeID:          employeeID,
		ReviewPeriod:        period.String(),
		Status:              ReviewStatusDraft,
	}, nil
}

// Complete finalizes the review with an optional bonus
func (r *PerformanceReview) Complete(bonus decimal.Decimal, summary string) error {
	if r.Status == ReviewStatusCompleted {
		return shared.NewDomainError("INVALID_STATE", "Review is already completed")
	}
	if bonus.IsNegative() {
		return shared.NewDomainError("INVALID_BONUS", "Bonus cannot be negative")
	}
	r.Status = ReviewStatusCompleted
	r.Bonus = &bonus
	r.Summary = summary
	r.UpdatedAt = time.Now()
	return nil
}

// BonusAmount returns the awarded bonus, zero when unset
func (r *PerformanceReview) BonusAmount() decimal.Decimal {
	if r.Bonus == nil {
		return decimal.Zero
	}
	return *r.Bonus
}
