package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type QuotationStatus string

const (
	QuotationStatusDraft            QuotationStatus = "draft"
	QuotationStatusSent             QuotationStatus = "sent"
	QuotationStatusApproved         QuotationStatus = "approved"
	QuotationStatusRejected         QuotationStatus = "rejected"
	QuotationStatusConvertedToOrder QuotationStatus = "converted_to_order"
)

// QuotationItem is one priced line. Total must equal
// Subtotal + WastageCharges + CuttingCharges.
type QuotationItem struct {
	ID             string          `json:"id"`
	Equipment      string          `json:"equipment"`
	Quantity       int             `json:"quantity"`
	Length         decimal.Decimal `json:"length"`
	Breadth        decimal.Decimal `json:"breadth"`
	Sqft           decimal.Decimal `json:"sqft"`
	RatePerSqft    decimal.Decimal `json:"ratePerSqft"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	WastageCharges decimal.Decimal `json:"wastageCharges"`
	CuttingCharges decimal.Decimal `json:"cuttingCharges"`
	Total          decimal.Decimal `json:"total"`
}

func (i QuotationItem) ExpectedTotal() decimal.Decimal {
	return i.Subtotal.Add(i.WastageCharges).Add(i.CuttingCharges)
}

// RequestedQuantity is the number of units the line asks for; lines without
// an explicit quantity count as one unit.
func (i QuotationItem) RequestedQuantity() int {
	if i.Quantity <= 0 {
		return 1
	}
	return i.Quantity
}

// SumItems adds up the line totals.
func SumItems(items []QuotationItem) decimal.Decimal {
	sum := decimal.Zero
	for _, it := range items {
		sum = sum.Add(it.Total)
	}
	return sum
}

type Quotation struct {
	ID            string          `json:"id"`
	QuotationID   string          `json:"quotation_id"`
	EnquiryID     string          `json:"enquiry_id"`
	CustomerID    string          `json:"customer_id"`
	CustomerName  string          `json:"customerName"`
	CustomerEmail string          `json:"customer_email"`
	Company       string          `json:"company"`
	Project       string          `json:"project"`
	Items         []QuotationItem `json:"items"`
	TotalAmount   decimal.Decimal `json:"totalAmount"`
	Status        QuotationStatus `json:"status"`
	Notes         string          `json:"notes"`
	ValidUntil    time.Time       `json:"validUntil"`
	SentAt        time.Time       `json:"sent_at"`
	DecidedBy     string          `json:"decided_by"`
	DecidedAt     time.Time       `json:"decided_at"`
	RejectReason  string          `json:"reject_reason,omitempty"`
	SalesOrderID  string          `json:"sales_order_id"`
	CreatedBy     string          `json:"created_by"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}
