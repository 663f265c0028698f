package entities

import "time"

// AuditEntry records a mutation performed by a principal.
type AuditEntry struct {
	ID          string            `json:"id"`
	Action      string            `json:"action"`
	EntityType  string            `json:"entity_type"`
	EntityID    string            `json:"entity_id"`
	PerformedBy string            `json:"performed_by"`
	Role        Role              `json:"role"`
	Details     map[string]string `json:"details,omitempty"`
	Timestamp   time.Time         `json:"timestamp"`
}
