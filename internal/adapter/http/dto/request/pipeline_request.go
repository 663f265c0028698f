package request

import (
	"strings"
	"time"

	"rental_backend/internal/domain/entities"

	"github.com/shopspring/decimal"
)

// EnquiryRequest is the payload of a new rental enquiry.
type EnquiryRequest struct {
	CustomerID          string          `json:"customer_id"`
	CustomerName        string          `json:"customer_name" binding:"required"`
	CustomerEmail       string          `json:"customer_email" binding:"omitempty,email"`
	CustomerPhone       string          `json:"customer_phone"`
	Company             string          `json:"company"`
	EquipmentName       string          `json:"equipment_name"`
	Quantity            int             `json:"quantity" binding:"gte=0"`
	StartDate           string          `json:"start_date"`
	EndDate             string          `json:"end_date"`
	DeliveryAddress     string          `json:"delivery_address"`
	ContactPerson       string          `json:"contact_person"`
	ContactEmail        string          `json:"contact_email" binding:"omitempty,email"`
	ContactPhone        string          `json:"contact_phone"`
	SpecialInstructions string          `json:"special_instructions"`
	TotalAmount         decimal.Decimal `json:"total_amount"`
}

func (r EnquiryRequest) ToEntity() (entities.Enquiry, error) {
	start, err := ParseDate(r.StartDate)
	if err != nil {
		return entities.Enquiry{}, err
	}
	end, err := ParseDate(r.EndDate)
	if err != nil {
		return entities.Enquiry{}, err
	}
	return entities.Enquiry{
		CustomerID:          strings.TrimSpace(r.CustomerID),
		CustomerName:        strings.TrimSpace(r.CustomerName),
		CustomerEmail:       strings.TrimSpace(r.CustomerEmail),
		CustomerPhone:       r.CustomerPhone,
		Company:             r.Company,
		EquipmentName:       r.EquipmentName,
		Quantity:            r.Quantity,
		StartDate:           start,
		EndDate:             end,
		DeliveryAddress:     r.DeliveryAddress,
		ContactPerson:       r.ContactPerson,
		ContactEmail:        strings.TrimSpace(r.ContactEmail),
		ContactPhone:        r.ContactPhone,
		SpecialInstructions: r.SpecialInstructions,
		TotalAmount:         r.TotalAmount,
	}, nil
}

// EnquiryStatusRequest moves an enquiry and optionally assigns a salesperson.
type EnquiryStatusRequest struct {
	Status                  string `json:"status" binding:"required"`
	AssignedSalespersonID   string `json:"assigned_salesperson_id"`
	AssignedSalespersonName string `json:"assigned_salesperson_name"`
}

// ExtendRequest pushes a rental's end date.
type ExtendRequest struct {
	EndDate string `json:"end_date" binding:"required"`
	Reason  string `json:"reason"`
}

type QuotationItemRequest struct {
	Equipment      string          `json:"equipment" binding:"required"`
	Quantity       int             `json:"quantity" binding:"gte=0"`
	Length         decimal.Decimal `json:"length"`
	Breadth        decimal.Decimal `json:"breadth"`
	Sqft           decimal.Decimal `json:"sqft"`
	RatePerSqft    decimal.Decimal `json:"ratePerSqft"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	WastageCharges decimal.Decimal `json:"wastageCharges"`
	CuttingCharges decimal.Decimal `json:"cuttingCharges"`
	Total          decimal.Decimal `json:"total"`
}

// QuotationRequest creates or replaces a draft quotation. TotalAmount is
// optional; when present it must match the sum of the line totals.
type QuotationRequest struct {
	EnquiryID     string                 `json:"enquiry_id"`
	CustomerID    string                 `json:"customer_id"`
	CustomerName  string                 `json:"customerName"`
	CustomerEmail string                 `json:"customer_email" binding:"omitempty,email"`
	Company       string                 `json:"company"`
	Project       string                 `json:"project"`
	Items         []QuotationItemRequest `json:"items" binding:"required,min=1,dive"`
	TotalAmount   decimal.Decimal        `json:"totalAmount"`
	Notes         string                 `json:"notes"`
	ValidUntil    string                 `json:"validUntil"`
}

func (r QuotationRequest) ToEntity() (entities.Quotation, error) {
	validUntil, err := ParseDate(r.ValidUntil)
	if err != nil {
		return entities.Quotation{}, err
	}
	items := make([]entities.QuotationItem, 0, len(r.Items))
	for _, it := range r.Items {
		items = append(items, entities.QuotationItem{
			Equipment:      strings.TrimSpace(it.Equipment),
			Quantity:       it.Quantity,
			Length:         it.Length,
			Breadth:        it.Breadth,
			Sqft:           it.Sqft,
			RatePerSqft:    it.RatePerSqft,
			Subtotal:       it.Subtotal,
			WastageCharges: it.WastageCharges,
			CuttingCharges: it.CuttingCharges,
			Total:          it.Total,
		})
	}
	return entities.Quotation{
		EnquiryID:     strings.TrimSpace(r.EnquiryID),
		CustomerID:    strings.TrimSpace(r.CustomerID),
		CustomerName:  strings.TrimSpace(r.CustomerName),
		CustomerEmail: strings.TrimSpace(r.CustomerEmail),
		Company:       r.Company,
		Project:       r.Project,
		Items:         items,
		TotalAmount:   r.TotalAmount,
		Notes:         r.Notes,
		ValidUntil:    validUntil,
	}, nil
}

// RejectRequest carries the optional reason of a rejection.
type RejectRequest struct {
	Reason string `json:"reason"`
}

// ContractRequest asks for a contract over an approved sales order. A zero
// amount bills the order total.
type ContractRequest struct {
	SalesOrderID string          `json:"sales_order_id" binding:"required"`
	StartDate    string          `json:"start_date"`
	EndDate      string          `json:"end_date"`
	Amount       decimal.Decimal `json:"amount"`
}

// Dates parses the contract period.
func (r ContractRequest) Dates() (start, end time.Time, err error) {
	if start, err = ParseDate(r.StartDate); err != nil {
		return
	}
	end, err = ParseDate(r.EndDate)
	return
}
