package entities

import "time"

type LeadStatus string

const (
	LeadStatusNew         LeadStatus = "New"
	LeadStatusContacted   LeadStatus = "Contacted"
	LeadStatusNurture     LeadStatus = "Nurture"
	LeadStatusQualified   LeadStatus = "Qualified"
	LeadStatusUnqualified LeadStatus = "Unqualified"
	LeadStatusJunk        LeadStatus = "Junk"
)

func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusNurture,
		LeadStatusQualified, LeadStatusUnqualified, LeadStatusJunk:
		return true
	}
	return false
}

const (
	LeadActivityCreated      = "created"
	LeadActivityStatusChange = "status_change"
	LeadActivityConversion   = "conversion"
)

// LeadActivity is one entry of a lead's append-only log.
type LeadActivity struct {
	Type        string    `json:"type"`
	Description string    `json:"description"`
	By          string    `json:"by"`
	Timestamp   time.Time `json:"timestamp"`
}

// Lead is the CRM view of a prospective customer. At most one lead exists
// per enquiry id.
type Lead struct {
	ID              string         `json:"id"`
	LeadID          string         `json:"lead_id"`
	EnquiryID       string         `json:"enquiry_id"`
	FirstName       string         `json:"firstName"`
	LastName        string         `json:"lastName"`
	Email           string         `json:"email"`
	Mobile          string         `json:"mobile"`
	Organization    string         `json:"organization"`
	Source          string         `json:"source"`
	Status          LeadStatus     `json:"status"`
	ConvertedToDeal bool           `json:"convertedToDeal"`
	ConvertedAt     time.Time      `json:"convertedAt"`
	Activities      []LeadActivity `json:"activities"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// InteractionKind selects which lead side collection an interaction lives in.
type InteractionKind string

const (
	InteractionNote  InteractionKind = "note"
	InteractionCall  InteractionKind = "call"
	InteractionTask  InteractionKind = "task"
	InteractionEmail InteractionKind = "email"
)

func (k InteractionKind) Valid() bool {
	switch k {
	case InteractionNote, InteractionCall, InteractionTask, InteractionEmail:
		return true
	}
	return false
}

// LeadInteraction is a note, call, task or email logged against a lead.
type LeadInteraction struct {
	ID        string          `json:"id"`
	LeadID    string          `json:"lead_id"`
	Kind      InteractionKind `json:"kind"`
	Subject   string          `json:"subject"`
	Content   string          `json:"content"`
	Status    string          `json:"status,omitempty"`
	DueDate   time.Time       `json:"due_date"`
	CreatedBy string          `json:"created_by"`
	CreatedAt time.Time       `json:"created_at"`
}
