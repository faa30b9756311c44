package document

import (
	"strings"

	"github.com/bizsuite/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Document is the metadata record for an artifact held in object storage
type Document struct {
	shared.TenantAggregateRoot
	Title       string
	Description string
	StorageKey  string
	ContentType string
	OwnerUserID uuid.UUID
}

// NewDocument creates a new document metadata record
func NewDocument(tenantID uuid.UUID, title, description, storageKey, contentType string, ownerUserID uuid.UUID) (*Document, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, shared.NewDomainError("INVALID_TITLE", "Document title cannot be empty")
	}
	if storageKey == "" {
		return nil, shared.NewDomainError("INVALID_STORAGE_KEY", "Document storage key cannot be empty")
	}
	if ownerUserID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_USER", "Document must be owned by a user")
	}
	return &Document{
		TenantAggregateRoot: shared.NewTenantAggregateRoot(tenantID),
		Title:               title,
		Description:         description,
		StorageKey:          storageKey,
		ContentType:         contentType,
		OwnerUserID:         ownerUserID,
	}, nil
}
