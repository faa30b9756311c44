package hr

import (
	"strings"
	"time"

	"github.com/bizsuite/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// EmploymentStatus represents the lifecycle status of an employee
type EmploymentStatus string

const (
	EmploymentStatusActive     EmploymentStatus = "ACTIVE"
	EmploymentStatusOnLeave    EmploymentStatus = "ON_LEAVE"
	EmploymentStatusTerminated EmploymentStatus = "TERMINATED"
)

// IsValid checks if the status is a valid EmploymentStatus
func (s EmploymentStatus) IsValid() bool {
	switch s {
	case EmploymentStatusActive, EmploymentStatusOnLeave, EmploymentStatusTerminated:
		return true
	}
	return false
}

// String returns the string representation of EmploymentStatus
func (s EmploymentStatus) String() string {
	return string(s)
}

// Employee represents the employee master record aggregate root.
// Compensation rates are optional; a missing rate contributes zero to
// payroll arithmetic rather than failing the computation.
type Employee struct {
	shared.TenantAggregateRoot
	EmployeeNumber string
	UserID         uuid.UUID
	DepartmentID   uuid.UUID
	TeamID         *uuid.UUID
	Position       string
	Status         EmploymentStatus
	HireDate       time.Time
	Salary         *decimal.Decimal // base monthly amount
	OvertimeRate   *decimal.Decimal // currency per hour
	DailyRate      *decimal.Decimal // currency per day
}

// NewEmployee creates a new employee master record
func NewEmployee(tenantID uuid.UUID, employeeNumber string, userID, departmentID uuid.UUID, hireDate time.Time) (*Employee, error) {
	employeeNumber = strings.TrimSpace(employeeNumber)
	if employeeNumber == "" {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE_NUMBER", "Employee number cannot be empty")
	}
	if userID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "Employee must be linked to a user")
	}
	if departmentID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_DEPARTMENT", "Employee must belong to a department")
	}
	return &Employee{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		EmployeeNumber:      employeeNumber,
		UserID:              userID,
		DepartmentID:        departmentID,
		Status:              EmploymentStatusActive,
		HireDate:            hireDate,
	}, nil
}

// SetCompensation sets the employee's compensation rates
func (e *Employee) SetCompensation(salary, overtimeRate, dailyRate decimal.Decimal) error {
	if salary.IsNegative() || overtimeRate.IsNegative() || dailyRate.IsNegative() {
		return shared.NewDomainError("INVALID_COMPENSATION", "Compensation rates cannot be negative")
	}
	e.Salary = &salary
	e.OvertimeRate = &overtimeRate
	e.DailyRate = &dailyRate
	e.UpdatedAt = time.Now()
	return nil
}

// AssignTeam assigns the employee to a team
func (e *Employee) AssignTeam(teamID uuid.UUID) {
	e.TeamID = &teamID
	e.UpdatedAt = time.Now()
}

// Terminate marks the employee as terminated
func (e *Employee) Terminate() error {
	if e.Status == EmploymentStatusTerminated {
		return shared.NewDomainError("INVALID_STATE", "Employee is already terminated")
	}
	e.Status = EmploymentStatusTerminated
	e.UpdatedAt = time.Now()
	return nil
}

// IsActive returns true if the employee is currently employed
func (e *Employee) IsActive() bool {
	return e.Status == EmploymentStatusActive || e.Status == EmploymentStatusOnLeave
}

// BaseSalary returns the monthly base salary, zero when unset
func (e *Employee) BaseSalary() decimal.Decimal {
	return orZero(e.Salary)
}

// HourlyOvertimeRate returns the overtime rate, zero when unset
func (e *Employee) HourlyOvertimeRate() decimal.Decimal {
	return orZero(e.OvertimeRate)
}

// DayRate returns the daily rate used for absence and unpaid-leave
// deductions, zero when unset
func (e *Employee) DayRate() decimal.Decimal {
	return orZero(e.DailyRate)
}

func orZero(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
