package finance

import (
	"strings"
	"time"

	"github.com/bizsuite/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionType classifies a ledger posting
type TransactionType string

const (
	TransactionTypePayroll  TransactionType = "payroll"
	TransactionTypeExpense  TransactionType = "expense"
	TransactionTypeIncome   TransactionType = "income"
	TransactionTypeTransfer TransactionType = "transfer"
)

// IsValid checks if the type is a valid TransactionType
func (t TransactionType) IsValid() bool {
	switch t {
	case TransactionTypePayroll, TransactionTypeExpense, TransactionTypeIncome, TransactionTypeTransfer:
		return true
	}
	return false
}

// String returns the string representation of TransactionType
func (t TransactionType) String() string {
	return string(t)
}

// Transaction is a double-entry ledger posting: one debit account code,
// one credit account code, tied to a concrete cash account.
type Transaction struct {
	shared.TenantAggregateRoot
	Type              TransactionType
	Amount            decimal.Decimal
	Description       string
	DebitAccountCode  string
	CreditAccountCode string
	AccountID         uuid.UUID
	OccurredAt        time.Time
}

// NewTransaction creates a new ledger posting
func NewTransaction(
	tenantID uuid.UUID,
	txType TransactionType,
	amount decimal.Decimal,
	description string,
	debitCode, creditCode string,
	accountID uuid.UUID,
) (*Transaction, error) {
	if !txType.IsValid() {
		return nil, shared.NewDomainError("INVALID_TYPE", "Transaction type is not valid")
	}
	if strings.TrimSpace(description) == "" {
		return nil, shared.NewDomainError("INVALID_DESCRIPTION", "Transaction description cannot be empty")
	}
	if debitCode == "" || creditCode == "" {
		return nil, shared.NewDomainError("INVALID_ACCOUNT_CODE", "Debit and credit account codes are required")
	}
	if debitCode == creditCode {
		return nil, shared.NewDomainError("INVALID_ACCOUNT_CODE", "Debit and credit account codes must differ")
	}
	if accountID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_ACCOUNT", "Transaction must reference an account")
	}
	return &Transaction{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Type:                txType,
		Amount:              amount,
		Description:         description,
		DebitAccountCode:    debitCode,
		CreditAccountCode:   creditCode,
		AccountID:           accountID,
		OccurredAt:          time.Now(),
	}, nil
}

// NewPayrollPosting creates the fixed-shape payroll posting: debit the
// payroll expense account, credit bank/cash, amount equal to net pay.
func NewPayrollPosting(tenantID uuid.UUID, netPay decimal.Decimal, description string, cashAccountID uuid.UUID) (*Transaction, error) {
	return NewTransaction(
		tenantID,
		TransactionTypePayroll,
		netPay,
		description,
		AccountCodePayrollExpense,
		AccountCodeBankCash,
		cashAccountID,
	)
}
