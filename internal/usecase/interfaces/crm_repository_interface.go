package interfaces

import (
	"context"
	"time"

	"rental_backend/internal/domain/entities"
)

type ILeadRepository interface {
	IBusinessIDSource
	Create(ctx context.Context, l entities.Lead) (entities.Lead, error)
	GetByID(ctx context.Context, id string) (entities.Lead, error)
	GetByLeadID(ctx context.Context, leadID string) (entities.Lead, error)
	GetByEnquiryID(ctx context.Context, enquiryID string) (entities.Lead, error)
	List(ctx context.Context, status entities.LeadStatus) ([]entities.Lead, error)
	CountByEnquiryID(ctx context.Context, enquiryID string) (int, error)
	UpdateStatus(ctx context.Context, id string, status entities.LeadStatus, activity entities.LeadActivity) (entities.Lead, error)
	AppendActivity(ctx context.Context, id string, activity entities.LeadActivity) (entities.Lead, error)
	// Convert marks a lead not yet converted as a qualified deal.
	Convert(ctx context.Context, id string, at time.Time, activity entities.LeadActivity) (entities.Lead, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type ILeadInteractionRepository interface {
	Create(ctx context.Context, i entities.LeadInteraction) (entities.LeadInteraction, error)
	ListByLead(ctx context.Context, kind entities.InteractionKind, leadID string) ([]entities.LeadInteraction, error)
}
