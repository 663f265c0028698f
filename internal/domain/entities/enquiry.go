package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

// EnquiryStatus is the lifecycle of a rental enquiry.
type EnquiryStatus string

const (
	EnquiryStatusSubmittedByCustomer EnquiryStatus = "submitted_by_customer"
	EnquiryStatusPendingApproval     EnquiryStatus = "pending_approval"
	EnquiryStatusApproved            EnquiryStatus = "approved"
	EnquiryStatusActive              EnquiryStatus = "active"
	EnquiryStatusExtended            EnquiryStatus = "extended"
	EnquiryStatusRejected            EnquiryStatus = "rejected"
	EnquiryStatusCancelled           EnquiryStatus = "cancelled"
	EnquiryStatusCompleted           EnquiryStatus = "completed"
)

func (s EnquiryStatus) Valid() bool {
	switch s {
	case EnquiryStatusSubmittedByCustomer, EnquiryStatusPendingApproval, EnquiryStatusApproved,
		EnquiryStatusActive, EnquiryStatusExtended, EnquiryStatusRejected,
		EnquiryStatusCancelled, EnquiryStatusCompleted:
		return true
	}
	return false
}

// Enquiry is a customer rental request. Enquiries and rentals share one
// document shape.
type Enquiry struct {
	ID                      string          `json:"id"`
	EnquiryID               string          `json:"enquiry_id"`
	CustomerID              string          `json:"customer_id"`
	CustomerName            string          `json:"customer_name"`
	CustomerEmail           string          `json:"customer_email"`
	CustomerPhone           string          `json:"customer_phone"`
	Company                 string          `json:"company"`
	EquipmentName           string          `json:"equipment_name"`
	Quantity                int             `json:"quantity"`
	StartDate               time.Time       `json:"start_date"`
	EndDate                 time.Time       `json:"end_date"`
	DeliveryAddress         string          `json:"delivery_address"`
	ContactPerson           string          `json:"contact_person"`
	ContactEmail            string          `json:"contact_email"`
	ContactPhone            string          `json:"contact_phone"`
	SpecialInstructions     string          `json:"special_instructions"`
	Status                  EnquiryStatus   `json:"status"`
	TotalAmount             decimal.Decimal `json:"total_amount"`
	AssignedSalespersonID   string          `json:"assigned_salesperson_id"`
	AssignedSalespersonName string          `json:"assigned_salesperson_name"`
	ExtensionReason         string          `json:"extension_reason,omitempty"`
	CreatedBy               string          `json:"created_by"`
	CreatedAt               time.Time       `json:"created_at"`
	UpdatedAt               time.Time       `json:"updated_at"`
}

// LeadEmail is the address a CRM lead is derived from.
func (e Enquiry) LeadEmail() string {
	if e.CustomerEmail != "" {
		return e.CustomerEmail
	}
	return e.ContactEmail
}
