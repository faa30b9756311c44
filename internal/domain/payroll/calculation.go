package payroll

import (
	"github.com/bizsuite/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// NetPolicy controls how a negative net pay is handled
type NetPolicy string

const (
	// NetPolicyAllow leaves a negative net untouched
	NetPolicyAllow NetPolicy = "allow"
	// NetPolicyFloor clamps a negative net to zero
	NetPolicyFloor NetPolicy = "floor"
	// NetPolicyReject fails the computation when net is negative
	NetPolicyReject NetPolicy = "reject"
)

// IsValid checks if the policy is a known NetPolicy
func (p NetPolicy) IsValid() bool {
	switch p {
	case NetPolicyAllow, NetPolicyFloor, NetPolicyReject:
		return true
	}
	return false
}

// Facts holds the gathered inputs of one payroll computation.
// Every monetary field defaults to zero when the source is absent.
type Facts struct {
	BaseSalary      decimal.Decimal
	OvertimeRate    decimal.Decimal
	DailyRate       decimal.Decimal
	OvertimeHours   decimal.Decimal
	AbsenceDays     int64
	UnpaidLeaveDays decimal.Decimal
	Bonus           decimal.Decimal
	TrainingCost    decimal.Decimal
}

// Calculation is the breakdown of one payroll computation
type Calculation struct {
	Gross      decimal.Decimal
	Deductions decimal.Decimal
	Net        decimal.Decimal
}

// Calculate computes gross, deductions and net pay from gathered facts:
//
//	gross      = base salary + overtime hours * overtime rate + bonus
//	deductions = absence days * daily rate + unpaid leave days * daily rate + training cost
//	net        = gross - deductions
func Calculate(f Facts) Calculation {
	overtimePay := f.OvertimeHours.Mul(f.OvertimeRate)
	gross := f.BaseSalary.Add(overtimePay).Add(f.Bonus)

	absenceDeduction := decimal.NewFromInt(f.AbsenceDays).Mul(f.DailyRate)
	leaveDeduction := f.UnpaidLeaveDays.Mul(f.DailyRate)
	deductions := absenceDeduction.Add(leaveDeduction).Add(f.TrainingCost)

	return Calculation{
		Gross:      gross,
		Deductions: deductions,
		Net:        gross.Sub(deductions),
	}
}

// ApplyNetPolicy resolves a possibly negative net according to policy
func (c Calculation) ApplyNetPolicy(policy NetPolicy) (Calculation, error) {
	if !c.Net.IsNegative() {
		return c, nil
	}
	switch policy {
	case NetPolicyFloor:
		c.Net = decimal.Zero
		return c, nil
	case NetPolicyReject:
		return c, shared.NewDomainError("NEGATIVE_NET_PAY", "Deductions exceed gross pay")
	default:
		return c, nil
	}
}
