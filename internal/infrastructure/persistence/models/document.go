package models

import (
	"github.com/bizsuite/backend/internal/domain/document"
	"github.com/google/uuid"
)

// DocumentModel is the persistence model for the Document aggregate root.
type DocumentModel struct {
	TenantAggregateModel
	Title       string    `gorm:"type:varchar(200);not null"`
	Description string    `gorm:"type:varchar(500)"`
	StorageKey  string    `gorm:"type:varchar(500);not null;index"`
	ContentType string    `gorm:"type:varchar(100)"`
	OwnerUserID uuid.UUID `gorm:"type:uuid;not null;index"`
}

// TableName returns the table name for GORM
func (DocumentModel) TableName() string {
	return "documents"
}

// ToDomain converts the persistence model to a domain Document entity.
func (m *DocumentModel) ToDomain() *document.Document {
	d := &document.Document{
		Title:       m.Title,
		Description: m.Description,
		StorageKey:  m.StorageKey,
		ContentType: m.ContentType,
		OwnerUserID: m.OwnerUserID,
	}
	m.PopulateDomainRoot(&d.TenantAggregateRoot)
	return d
}

// FromDomain populates the persistence model from a domain Document entity.
func (m *DocumentModel) FromDomain(d *document.Document) {
	m.FromDomainRoot(d.TenantAggregateRoot)
	m.Title = d.Title
	m.Description = d.Description
	m.StorageKey = d.StorageKey
	m.ContentType = d.ContentType
	m.OwnerUserID = d.OwnerUserID
}
