package payroll

import (
	"github.com/bizsuite/backend/internal/domain/hr"
	"github.com/bizsuite/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ErrDuplicatePeriod is returned when a payroll record already exists
// for the same (employee, period) pair
var ErrDuplicatePeriod = shared.NewDomainError("PAYROLL_DUPLICATE", "Payroll already processed for this employee and period")

// PayrollRecord is the outcome of one payroll computation for one
// employee and one period. It is immutable once created; there is no
// amendment or void flow.
type PayrollRecord struct {
	shared.TenantAggregateRoot
	EmployeeID uuid.UUID
	Period     string // canonical YYYY-MM form
	Gross      decimal.Decimal
	Deductions decimal.Decimal
	Net        decimal.Decimal
}

// NewPayrollRecord creates a payroll record from a finished calculation
func NewPayrollRecord(tenantID, employeeID uuid.UUID, period hr.Period, calc Calculation) (*PayrollRecord, error) {
	if employeeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_EMPLOYEE", "Payroll record must reference an employee")
	}
	if period.IsZero() {
		return nil, shared.NewDomainError("INVALID_PERIOD", "Payroll period is required")
	}
	if !calc.Net.Equal(calc.Gross.Sub(calc.Deductions)) && !calc.Net.IsZero() {
		return nil, shared.NewDomainError("INVALID_CALCULATION", "Net pay does not match gross minus deductions")
	}
	return &PayrollRecord{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		EmployeeID:          employeeID,
		Period:              period.String(),
		Gross:               calc.Gross,
		Deductions:          calc.Deductions,
		Net:                 calc.Net,
	}, nil
}

// Amount returns the payable amount recorded for the period, i.e. net pay
func (r *PayrollRecord) Amount() decimal.Decimal {
	return r.Net
}
