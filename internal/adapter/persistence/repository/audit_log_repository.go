package repository

import (
	"context"

	"rental_backend/internal/adapter/persistence/docstore"
	"rental_backend/internal/domain/entities"
	"rental_backend/internal/usecase/interfaces"
)

type auditEntryItem struct {
	ID          string            `dynamodbav:"id"`
	Action      string            `dynamodbav:"action"`
	EntityType  string            `dynamodbav:"entity_type"`
	EntityID    string            `dynamodbav:"entity_id"`
	PerformedBy string            `dynamodbav:"performed_by"`
	Role        string            `dynamodbav:"role"`
	Details     map[string]string `dynamodbav:"details,omitempty"`
	Timestamp   string            `dynamodbav:"timestamp"`
}

type AuditLogRepository struct {
	coll docstore.Collection
}

var _ interfaces.IAuditLogRepository = (*AuditLogRepository)(nil)

func NewAuditLogRepository(store docstore.Store) *AuditLogRepository {
	return &AuditLogRepository{coll: store.Collection(CollectionAuditLog)}
}

func (r *AuditLogRepository) Append(ctx context.Context, e entities.AuditEntry) error {
	return insertOne(ctx, r.coll, auditEntryItem{
		ID:          e.ID,
		Action:      e.Action,
		EntityType:  e.EntityType,
		EntityID:    e.EntityID,
		PerformedBy: e.PerformedBy,
		Role:        string(e.Role),
		Details:     e.Details,
		Timestamp:   formatTime(e.Timestamp),
	})
}

// List filters by entity type and id; empty arguments match everything.
func (r *AuditLogRepository) List(ctx context.Context, entityType, entityID string) ([]entities.AuditEntry, error) {
	var f docstore.Filter
	if entityType != "" {
		f = f.And(docstore.Eq("entity_type", entityType))
	}
	if entityID != "" {
		f = f.And(docstore.Eq("entity_id", entityID))
	}
	return findAll(ctx, r.coll, f, func(it auditEntryItem) entities.AuditEntry {
		return entities.AuditEntry{
			ID:          it.ID,
			Action:      it.Action,
			EntityType:  it.EntityType,
			EntityID:    it.EntityID,
			PerformedBy: it.PerformedBy,
			Role:        entities.Role(it.Role),
			Details:     it.Details,
			Timestamp:   parseTime(it.Timestamp),
		}
	})
}
