package document

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines persistence operations for document metadata
type Repository interface {
	FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*Document, error)
	FindByOwner(ctx context.Context, tenantID, ownerUserID uuid.UUID) ([]Document, error)
	Create(ctx context.Context, doc *Document) error
}
