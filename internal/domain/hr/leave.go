package hr

import (
	"strings"
	"time"

	"github.com/bizsuite/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LeaveType represents a configured category of leave.
// Only requests of an unpaid type contribute payroll deductions.
type LeaveType struct {
	shared.TenantAggregateRoot
	Name   string
	IsPaid bool
}

// NewLeaveType creates a new leave type
func NewLeaveType(tenantID uuid.UUID, name string, isPaid bool) (*LeaveType, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Leave type name cannot be empty")
	}
	return &LeaveType{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Name:                name,
		IsPaid:              isPaid,
	}, nil
}

// LeaveStatus represents the approval status of a leave request
type LeaveStatus string

const (
	LeaveStatusPending  LeaveStatus = "PENDING"
	LeaveStatusApproved LeaveStatus = "APPROVED"
	LeaveStatusRejected LeaveStatus = "REJECTED"
	LeaveStatusCanceled LeaveStatus = "CANCELED"
)

// IsValid checks if the status is a valid LeaveStatus
func (s LeaveStatus) IsValid() bool {
	switch s {
	case LeaveStatusPending, LeaveStatusApproved, LeaveStatusRejected, LeaveStatusCanceled:
		return true
	}
	return false
}

// String returns the string representation of LeaveStatus
func (s LeaveStatus) String() string {
	return string(s)
}

// LeaveRequest represents an employee's request for a span of leave days
type LeaveRequest struct {
	shared.TenantAggregateRoot
	EmployeeID    uuid.UUID
	LeaveTypeID   uuid.UUID
	StartDate     time.Time
	EndDate       time.Time
	DaysRequested decimal.Decimal
	Status        LeaveStatus
	Reason        string
}

// NewLeaveRequest creates a new leave request in pending status
func NewLeaveRequest(tenantID, employeeID, leaveTypeID uuid.UUID, startDate, endDate time.Time, daysRequested decimal.Decimal) (*LeaveRequest, error) {
	if employeeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE", "Leave request must reference an employee")
	}
	if leaveTypeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_LEAVE_TYPE", "Leave request must reference a leave type")
	}
	if endDate.Before(startDate) {
		return nil, shared.NewDomainError("INVALID_RANGE", "Leave end date cannot precede start date")
	}
	if !daysRequested.IsPositive() {
		return nil, shared.NewDomainError("INVALID_DAYS", "Days requested must be positive")
	}
	return &LeaveRequest{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		EmployeeID:          employeeID,
		LeaveTypeID:         leaveTypeID,
		StartDate:           startDate,
		EndDate:             endDate,
		DaysRequested:       daysRequested,
		Status:              LeaveStatusPending,
	}, nil
}

// Approve moves the request to approved status
func (l *LeaveRequest) Approve() error {
	if l.Status != LeaveStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Only pending leave requests can be approved")
	}
	l.Status = LeaveStatusApproved
	l.UpdatedAt = time.Now()
	return nil
}

// Reject moves the request to rejected status
func (l *LeaveRequest) Reject() error {
	if l.Status != LeaveStatusPending {
		return shared.NewDomainError("INVALID_STATE", "Only pending leave requests can be rejected")
	}
	l.Status = LeaveStatusRejected
	l.UpdatedAt = time.Now()
	return nil
}

// CountsToward reports whether this request contributes to the given period:
// approved, and its date range overlaps the period
func (l *LeaveRequest) CountsToward(p Period) bool {
	return l.Status == LeaveStatusApproved && p.OverlapsRange(l.StartDate, l.EndDate)
}
