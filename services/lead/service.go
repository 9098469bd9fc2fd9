package lead

import (
	"context"
	"fmt"

	documentsRepo "cleaningco/database/repository/documents"
	"cleaningco/models"

	"go.mongodb.org/mongo-driver/bson"
)

// DefaultListLimit is used when a listing does not ask for a size.
const DefaultListLimit = 20

var leadCollection = documentsRepo.CollectionName(models.Lead{})

type LeadService interface {
	CreateLead(ctx context.Context, lead *models.Lead) (string, error)
	ListLeads(ctx context.Context, limit int64) ([]models.LeadView, error)
}

// DefaultLeadService is the production implementation. A nil Store makes
// every call fail with ErrStoreUnavailable.
type DefaultLeadService struct {
	Store documentsRepo.DocumentStore
}

// CreateLead persists an already validated lead and returns its identifier.
func (s *DefaultLeadService) CreateLead(ctx context.Context, lead *models.Lead) (string, error) {
	if s.Store == nil {
		return "", &StoreError{Op: "create", Err: ErrStoreUnavailable}
	}
	id, err := s.Store.CreateDocument(ctx, leadCollection, lead)
	if err != nil {
		return "", &StoreError{Op: "create", Err: err}
	}
	return id, nil
}

// ListLeads returns up to limit leads in the store's natural order.
func (s *DefaultLeadService) ListLeads(ctx context.Context, limit int64) ([]models.LeadView, error) {
	if s.Store == nil {
		return nil, &StoreError{Op: "list", Err: ErrStoreUnavailable}
	}
	docs, err := s.Store.GetDocuments(ctx, leadCollection, nil, limit)
	if err != nil {
		return nil, &StoreError{Op: "list", Err: err}
	}

	views := make([]models.LeadView, 0, len(docs))
	for _, doc := range docs {
		var ld models.LeadDocument
		if err := decodeDocument(doc, &ld); err != nil {
			return nil, &StoreError{Op: "list", Err: err}
		}
		views = append(views, ld.View())
	}
	return views, nil
}

func decodeDocument(doc bson.M, out *models.LeadDocument) error {
	raw, err := bson.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to re-encode lead %v: %w", doc["_id"], err)
	}
	if err := bson.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("failed to decode lead %v: %w", doc["_id"], err)
	}
	return nil
}
