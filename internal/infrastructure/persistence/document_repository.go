package persistence

import (
	"context"
	"errors"

	"github.com/bizsuite/backend/internal/domain/document"
	"github.com/bizsuite/backend/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormDocumentRepository implements document.Repository using GORM
type GormDocumentRepository struct {
	db *gorm.DB
}

// NewGormDocumentRepository creates a new GormDocumentRepository
func NewGormDocumentRepository(db *gorm.DB) *GormDocumentRepository {
	return &GormDocumentRepository{db: db}
}

// FindByIDForTenant finds a document by ID for a specific tenant, nil when absent
func (r *GormDocumentRepository) FindByIDForTenant(ctx context.Context, tenantID, id uuid.UUID) (*document.Document, error) {
	var model models.DocumentModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND id = ?", tenantID, id).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindByOwner returns the documents owned by a user, newest first
func (r *GormDocumentRepository) FindByOwner(ctx context.Context, tenantID, ownerUserID uuid.UUID) ([]document.Document, error) {
	var docModels []models.DocumentModel
	if err := r.db.WithContext(ctx).
		Where("tenant_id = ? AND owner_user_id = ?", tenantID, ownerUserID).
		Order("created_at DESC").
		Find(&docModels).Error; err != nil {
		return nil, err
	}
	docs := make([]document.Document, len(docModels))
	for i, model := range docModels {
		docs[i] = *model.ToDomain()
	}
	return docs, nil
}

// Create inserts a new document metadata record
func (r *GormDocumentRepository) Create(ctx context.Context, doc *document.Document) error {
	var model models.DocumentModel
	model.FromDomain(doc)
	return r.db.WithContext(ctx).Create(&model).Error
}
