package models

import (
	"github.com/bizsuite/backend/internal/domain/payroll"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PayrollRecordModel is the persistence model for the PayrollRecord aggregate root.
// The unique index on (employee, period) enforces one record per
// employee per period at the database level.
type PayrollRecordModel struct {
	TenantAggregateModel
	EmployeeID uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:idx_payroll_employee_period,priority:1"`
	Period     string          `gorm:"type:varchar(7);not null;uniqueIndex:idx_payroll_employee_period,priority:2"`
	Gross      decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Deductions decimal.Decimal `gorm:"type:decimal(18,4);not null"`
	Net        decimal.Decimal `gorm:"type:decimal(18,4);not null"`
}

// TableName returns the table name for GORM
func (PayrollRecordModel) TableName() string {
	return "payroll_records"
}

// ToDomain converts the persistence model to a domain PayrollRecord entity.
func (m *PayrollRecordModel) ToDomain() *payroll.PayrollRecord {
	r := &payroll.PayrollRecord{
		EmployeeID: m.EmployeeID,
		Period:     m.Period,
		Gross:      m.Gross,
		Deductions: m.Deductions,
		Net:        m.Net,
	}
	m.PopulateDomainRoot(&r.TenantAggregateRoot)
	return r
}

// FromDomain populates the persistence model from a domain PayrollRecord entity.
func (m *PayrollRecordModel) FromDomain(r *payroll.PayrollRecord) {
	m.FromDomainRoot(r.TenantAggregateRoot)
	m.EmployeeID = r.EmployeeID
	m.Period = r.Period
	m.Gross = r.Gross
	m.Deductions = r.Deductions
	m.Net = r.Net
}
