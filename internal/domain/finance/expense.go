package finance

import (
	"strings"
	"time"

	"github.com/bizsuite/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ExpenseCategory represents the category of an expense
type ExpenseCategory string

const (
	ExpenseCategoryTraining  ExpenseCategory = "TRAINING"
	ExpenseCategoryTravel    ExpenseCategory = "TRAVEL"
	ExpenseCategoryOffice    ExpenseCategory = "OFFICE"
	ExpenseCategoryEquipment ExpenseCategory = "EQUIPMENT"
	ExpenseCategoryOther     ExpenseCategory = "OTHER"
)

// IsValid checks if the category is a valid ExpenseCategory
func (c ExpenseCategory) IsValid() bool {
	switch c {
	case ExpenseCategoryTraining, ExpenseCategoryTravel, ExpenseCategoryOffice,
		ExpenseCategoryEquipment, ExpenseCategoryOther:
		return true
	}
	return false
}

// String returns the string representation of ExpenseCategory
func (c ExpenseCategory) String() string {
	return string(c)
}

// ExpenseRecord tracks a non-trade expense attributed to a user,
// such as the per-participant cost of a training enrollment.
type ExpenseRecord struct {
	shared.TenantAggregateRoot
	Title       string
	Category    ExpenseCategory
	Amount      decimal.Decimal
	Description string
	IncurredAt  time.Time
	OwnerUserID uuid.UUID
}

// NewExpenseRecord creates a new expense record
func NewExpenseRecord(
	tenantID uuid.UUID,
	title string,
	category ExpenseCategory,
	amount decimal.Decimal,
	description string,
	ownerUserID uuid.UUID,
) (*ExpenseRecord, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Expense title cannot be empty")
	}
	if !category.IsValid() {
		return nil, shared.NewDomainError("INVALID_CATEGORY", "Expense category is not valid")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Amount must be positive")
	}
	if ownerUserID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "Expense must be owned by a user")
	}
	return &ExpenseRecord{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Title:               title,
		Category:            category,
		Amount:              amount,
		Description:         description,
		IncurredAt:          time.Now(),
		OwnerUserID:         ownerUserID,
	}, nil
}
