package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizsuite/backend/internal/domain/shared"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name       string
		facts      Facts
		gross      string
		deductions string
		net        string
	}{
		{
			name:       "zero facts",
			facts:      Facts{},
			gross:      "0",
			deductions: "0",
			net:        "0",
		},
		{
			name:       "base salary only",
			facts:      Facts{BaseSalary: d("5000")},
			gross:      "5000",
			deductions: "0",
			net:        "5000",
		},
		{
			name: "full month",
			facts: Facts{
				BaseSalary:      d("5000"),
				OvertimeRate:    d("20"),
				DailyRate:       d("150"),
				OvertimeHours:   d("10"),
				AbsenceDays:     1,
				UnpaidLeaveDays: d("2"),
				Bonus:           d("300"),
				TrainingCost:    d("100"),
			},
			gross:      "5500",
			deductions: "550",
			net:        "4950",
		},
		{
			name: "deductions exceed gross",
			facts: Facts{
				BaseSalary:  d("1000"),
				DailyRate:   d("150"),
				AbsenceDays: 10,
			},
			gross:      "1000",
			deductions: "1500",
			net:        "-500",
		},
		{
			name: "fractional overtime",
			facts: Facts{
				BaseSalary:    d("3000"),
				OvertimeRate:  d("12.50"),
				OvertimeHours: d("7.5"),
			},
			gross:      "3093.75",
			deductions: "0",
			net:        "3093.75",
		},
		{
			name: "missing rates leave deductions at zero",
			facts: Facts{
				BaseSalary:      d("4000"),
				AbsenceDays:     3,
				UnpaidLeaveDays: d("2"),
			},
			gross:      "4000",
			deductions: "0",
			net:        "4000",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calc := Calculate(tt.facts)
			assert.True(t, calc.Gross.Equal(d(tt.gross)), "gross: got %s", calc.Gross)
			assert.True(t, calc.Deductions.Equal(d(tt.deductions)), "deductions: got %s", calc.Deductions)
			assert.True(t, calc.Net.Equal(d(tt.net)), "net: got %s", calc.Net)
		})
	}
}

func TestApplyNetPolicy(t *testing.T) {
	negative := Calculation{Gross: d("1000"), Deductions: d("1500"), Net: d("-500")}

	t.Run("positive net passes through under every policy", func(t *testing.T) {
		calc := Calculation{Gross: d("5500"), Deductions: d("550"), Net: d("4950")}
		for _, policy := range []NetPolicy{NetPolicyAllow, NetPolicyFloor, NetPolicyReject} {
			out, err := calc.ApplyNetPolicy(policy)
			require.NoError(t, err)
			assert.True(t, out.Net.Equal(d("4950")))
		}
	})

	t.Run("allow keeps negative net", func(t *testing.T) {
		out, err := negative.ApplyNetPolicy(NetPolicyAllow)
		require.NoError(t, err)
		assert.True(t, out.Net.Equal(d("-500")))
	})

	t.Run("floor clamps negative net to zero", func(t *testing.T) {
		out, err := negative.ApplyNetPolicy(NetPolicyFloor)
		require.NoError(t, err)
		assert.True(t, out.Net.IsZero())
		assert.True(t, out.Gross.Equal(d("1000")), "gross is preserved")
		assert.True(t, out.Deductions.Equal(d("1500")), "deductions are preserved")
	})

	t.Run("reject fails on negative net", func(t *testing.T) {
		_, err := negative.ApplyNetPolicy(NetPolicyReject)
		require.Error(t, err)

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "NEGATIVE_NET_PAY", domainErr.Code)
	})
}

func TestNetPolicyIsValid(t *testing.T) {
	assert.True(t, NetPolicyAllow.IsValid())
	assert.True(t, NetPolicyFloor.IsValid())
	assert.True(t, NetPolicyReject.IsValid())
	assert.False(t, NetPolicy("").IsValid())
	assert.False(t, NetPolicy("truncate").IsValid())
}
