package payroll

import (
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bizsuite/backend/internal/domain/hr"
	"github.com/bizsuite/backend/internal/domain/shared/valueobject"
)

func TestPayslipKey(t *testing.T) {
	employeeID := uuid.New()
	period, err := hr.ParsePeriod("2026-07")
	require.NoError(t, err)

	key := PayslipKey(employeeID, period)
	assert.Equal(t, fmt.Sprintf("payslips/%s_2026-07.txt", employeeID), key)
	assert.Equal(t, key, PayslipKey(employeeID, period), "key is deterministic")
}

func TestRenderPayslip(t *testing.T) {
	period, err := hr.ParsePeriod("2026-07")
	require.NoError(t, err)

	payslip := string(RenderPayslip("Jane Doe", period, valueobject.NewMoneyUSD(decimal.RequireFromString("4950"))))

	assert.Contains(t, payslip, "PAYSLIP")
	assert.Contains(t, payslip, "Employee: Jane Doe")
	assert.Contains(t, payslip, "Period: 2026-07")
	assert.Contains(t, payslip, "Net Pay: 4950.00 USD")
}
