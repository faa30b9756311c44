package hr

import (
	"time"

	"github.com/bizsuite/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AttendanceStatus represents the status of a daily attendance record
type AttendanceStatus string

const (
	AttendanceStatusPresent AttendanceStatus = "PRESENT"
	AttendanceStatusAbsent  AttendanceStatus = "ABSENT"
	AttendanceStatusLate    AttendanceStatus = "LATE"
	AttendanceStatusHalfDay AttendanceStatus = "HALF_DAY"
	AttendanceStatusOnLeave AttendanceStatus = "ON_LEAVE"
)

// IsValid checks if the status is a valid AttendanceStatus
func (s AttendanceStatus) IsValid() bool {
	switch s {
	case AttendanceStatusPresent, AttendanceStatusAbsent, AttendanceStatusLate,
		AttendanceStatusHalfDay, AttendanceStatusOnLeave:
		return true
	}
	return false
}

// String returns the string representation of AttendanceStatus
func (s AttendanceStatus) String() string {
	return string(s)
}

// AttendanceRecord represents one employee's attendance on one calendar day
type AttendanceRecord struct {
	shared.TenantAggregateRoot
	EmployeeID    uuid.UUID
	Date          time.Time
	Status        AttendanceStatus
	OvertimeHours decimal.Decimal
}

// NewAttendanceRecord creates a new attendance record
func NewAttendanceRecord(tenantID, employeeID uuid.UUID, date time.Time, status AttendanceStatus, overtimeHours decimal.Decimal) (*AttendanceRecord, error) {
	if employeeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE", "Attendance record must reference an employee")
	}
	if !status.IsValid() {
		return nil, shared.NewDomainError("INVALID_STATUS", "Attendance status is not valid")
	}
	if overtimeHours.IsNegative() {
		return nil, shared.NewDomainError("INVALID_OVERTIME", "Overtime hours cannot be negative")
	}
	return &AttendanceRecord{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		EmployeeID:          employeeID,
		Date:                date,
		Status:              status,
		OvertimeHours:       overtimeHours,
	}, nil
}

// IsAbsence returns true if the record counts as an absence day
func (a *AttendanceRecord) IsAbsence() bool {
	return a.Status == AttendanceStatusAbsent
}
