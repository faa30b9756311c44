package models

import (
	"time"

	"github.com/bizsuite/backend/internal/domain/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AccountModel is the persistence model for the ledger Account aggregate root.
type AccountModel struct {
	TenantAggregateModel
	Code    string              `gorm:"type:varchar(20);not null;index"`
	Name    string              `gorm:"type:varchar(200);not null;index"`
	Type    finance.AccountType `gorm:"type:varchar(20);not null"`
	Balance decimal.Decimal     `gorm:"type:decimal(18,4);not null;default:0"`
}

// TableName returns the table name for GORM
func (AccountModel) TableName() string {
	return "accounts"
}

// ToDomain converts the persistence model to a domain Account entity.
func (m *AccountModel) ToDomain() *finance.Account {
	a := &finance.Account{
		Code:    m.Code,
		Name:    m.Name,
		Type:    m.Type,
		Balance: m.Balance,
	}
	m.PopulateDomainRoot(&a.TenantAggregateRoot)
	return a
}

// FromDomain populates the persistence model from a domain Account entity.
func (m *AccountModel) FromDomain(a *finance.Account) {
	m.FromDomainRoot(a.TenantAggregateRoot)
	m.Code = a.Code
	m.Name = a.Name
	m.Type = a.Type
	m.Balance = a.Balance
}

// TransactionModel is the persistence model for ledger Transaction postings.
type TransactionModel struct {
	TenantAggregateModel
	Type              finance.TransactionType `gorm:"type:varchar(20);not null;index"`
	Amount            decimal.Decimal         `gorm:"type:decimal(18,4);not null"`
	Description       string                  `gorm:"type:varchar(500);not null"`
	DebitAccountCode  string                  `gorm:"type:varchar(20);not null"`
	CreditAccountCode string                  `gorm:"type:varchar(20);not null"`
	AccountID         uuid.UUID               `gorm:"type:uuid;not null;index"`
	OccurredAt        time.Time               `gorm:"not null;index"`
}

// TableName returns the table name for GORM
func (TransactionModel) TableName() string {
	return "transactions"
}

// ToDomain converts the persistence model to a domain Transaction entity.
func (m *TransactionModel) ToDomain() *finance.Transaction {
	t := &finance.Transaction{
		Type:              m.Type,
		Amount:            m.Amount,
		Description:       m.Description,
		DebitAccountCode:  m.DebitAccountCode,
		CreditAccountCode: m.CreditAccountCode,
		AccountID:         m.AccountID,
		OccurredAt:        m.OccurredAt,
	}
	m.PopulateDomainRoot(&t.TenantAggregateRoot)
	return t
}

// FromDomain populates the persistence model from a domain Transaction entity.
func (m *TransactionModel) FromDomain(t *finance.Transaction) {
	m.FromDomainRoot(t.TenantAggregateRoot)
	m.Type = t.Type
	m.Amount = t.Amount
	m.Description = t.Description
	m.DebitAccountCode = t.DebitAccountCode
	m.CreditAccountCode = t.CreditAccountCode
	m.AccountID = t.AccountID
	m.OccurredAt = t.OccurredAt
}

// ExpenseRecordModel is the persistence model for the ExpenseRecord aggregate root.
type ExpenseRecordModel struct {
	TenantAggregateModel
	Title       string                  `gorm:"type:varchar(200);not null"`
	Category    finance.ExpenseCategory `gorm:"type:varchar(20);not null;index"`
	Amount      decimal.Decimal         `gorm:"type:decimal(18,4);not null"`
	Description string                  `gorm:"type:varchar(500)"`
	IncurredAt  time.Time               `gorm:"not null;index"`
	OwnerUserID uuid.UUID               `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (ExpenseRecordModel) TableName() string {
	return "expense_records"
}

// ToDomain converts the persistence model to a domain ExpenseRecord entity.
func (m *ExpenseRecordModel) ToDomain() *finance.ExpenseRecord {
	e := &finance.ExpenseRecord{
		Title:       m.Title,
		Category:    m.Category,
		Amount:      m.Amount,
		Description: m.Description,
		IncurredAt:  m.IncurredAt,
		OwnerUserID: m.OwnerUserID,
	}
	m.PopulateDomainRoot(&e.TenantAggregateRoot)
	return e
}

// FromDomain populates the persistence model from a domain ExpenseRecord entity.
func (m *ExpenseRecordModel) FromDomain(e *finance.ExpenseRecord) {
	m.FromDomainRoot(e.TenantAggregateRoot)
	m.Title = e.Title
	m.Category = e.Category
	m.Amount = e.Amount
	m.Description = e.Description
	m.IncurredAt = e.IncurredAt
	m.OwnerUserID = e.OwnerUserID
}
