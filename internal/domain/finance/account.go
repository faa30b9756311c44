package finance

import (
	"strings"

	"github.com/bizsuite/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CashAccountName is the fixed name of the account payroll postings
// credit. Its absence is a configuration error that aborts processing.
const CashAccountName = "Cash & Cash Equivalents"

// Well-known ledger account codes
const (
	AccountCodePayrollExpense = "6000"
	AccountCodeBankCash       = "1000"
)

// AccountType classifies a ledger account
type AccountType string

const (
	AccountTypeAsset     AccountType = "ASSET"
	AccountTypeLiability AccountType = "LIABILITY"
	AccountTypeEquity    AccountType = "EQUITY"
	AccountTypeIncome    AccountType = "INCOME"
	AccountTypeExpense   AccountType = "EXPENSE"
)

// IsValid checks if the type is a valid AccountType
func (t AccountType) IsValid() bool {
	switch t {
	case AccountTypeAsset, AccountTypeLiability, AccountTypeEquity, AccountTypeIncome, AccountTypeExpense:
		return true
	}
	return false
}

// String returns the string representation of AccountType
func (t AccountType) String() string {
	return string(t)
}

// Account represents a ledger account aggregate root
type Account struct {
	shared.TenantAggregateRoot
	Code    string
	Name    string
	Type    AccountType
	Balance decimal.Decimal
}

// NewAccount creates a new ledger account
func NewAccount(tenantID uuid.UUID, code, name string, accountType AccountType) (*Account, error) {
	code = strings.TrimSpace(code)
	name = strings.TrimSpace(name)
	if code == "" {
		return nil, shared.NewDomainError("INVALID_CODE", "Account code cannot be empty")
	}
	if name == "" {
		return nil, shared.NewDomainError("INVALID_NAME", "Account name cannot be empty")
	}
	if !accountType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Account type is not valid")
	}
	return &Account{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Code:                code,
		Name:                name,
		Type:                accountType,
	}, nil
}
