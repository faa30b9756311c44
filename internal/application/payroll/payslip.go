package payroll

import (
	"fmt"

	"github.com/bizsuite/backend/internal/domain/hr"
	"github.com/bizsuite/backend/internal/domain/shared/valueobject"
	"github.com/google/uuid"
)

// PayslipContentType is the MIME type of rendered payslip artifacts
const PayslipContentType = "text/plain; charset=utf-8"

// PayslipKey returns the deterministic object-storage key of an
// employee's payslip for a period: payslips/{employee_id}_{period}.txt
func PayslipKey(employeeID uuid.UUID, period hr.Period) string {
	return fmt.Sprintf("payslips/%s_%s.txt", employeeID, period)
}

// RenderPayslip renders the textual payslip artifact. Net pay is
// printed in Money form, e.g. "4950.00 USD".
func RenderPayslip(employeeName string, period hr.Period, net valueobject.Money) []byte {
	content := fmt.Sprintf(
		"PAYSLIP\n\nEmployee: %s\nPeriod: %s\nNet Pay: %s\n",
		employeeName,
		period,
		net,
	)
	return []byte(content)
}
