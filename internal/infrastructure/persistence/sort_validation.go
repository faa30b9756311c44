package persistence

import "strings"

// ValidateSortOrder normalizes the sort direction, defaulting to DESC
func ValidateSortOrder(orderDir string) string {
	normalized := strings.ToUpper(strings.TrimSpace(orderDir))
	if normalized == "ASC" {
		return "ASC"
	}
	return "DESC"
}

// ValidateSortField validates the sort field against a whitelist of allowed fields.
// Returns the defaultField if the input is invalid, empty, or not in the whitelist.
func ValidateSortField(sortField string, allowedFields map[string]bool, defaultField string) string {
	trimmed := strings.TrimSpace(sortField)
	if trimmed == "" {
		return defaultField
	}
	if allowedFields[trimmed] {
		return trimmed
	}
	return defaultField
}

// EmployeeSortFields contains allowed sort fields for employees
var EmployeeSortFields = map[string]bool{
	"id":              true,
	"created_at":      true,
	"updated_at":      true,
	"employee_number": true,
	"position":        true,
	"status":          true,
	"hire_date":       true,
}

// PayrollRecordSortFields contains allowed sort fields for payroll records
var PayrollRecordSortFields = map[string]bool{
	"id":         true,
	"created_at": true,
	"period":     true,
	"gross":      true,
	"net":        true,
}

// TransactionSortFields contains allowed sort fields for ledger transactions
var TransactionSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"occurred_at": true,
	"amount":      true,
	"type":        true,
}

// ExpenseRecordSortFields contains allowed sort fields for expense records
var ExpenseRecordSortFields = map[string]bool{
	"id":          true,
	"created_at":  true,
	"incurred_at": true,
	"amount":      true,
	"category":    true,
	"title":       true,
}
