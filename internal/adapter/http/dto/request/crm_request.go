package request

import (
	"strings"

	"rental_backend/internal/domain/entities"
)

type LeadStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

// InteractionRequest logs a note, call, task or email against a lead. The
// kind comes from the route.
type InteractionRequest struct {
	Subject string `json:"subject"`
	Content string `json:"content"`
	Status  string `json:"status"`
	DueDate string `json:"due_date"`
}

func (r InteractionRequest) ToEntity(kind entities.InteractionKind) (entities.LeadInteraction, error) {
	due, err := ParseDate(r.DueDate)
	if err != nil {
		return entities.LeadInteraction{}, err
	}
	return entities.LeadInteraction{
		Kind:    kind,
		Subject: strings.TrimSpace(r.Subject),
		Content: strings.TrimSpace(r.Content),
		Status:  strings.TrimSpace(r.Status),
		DueDate: due,
	}, nil
}
