package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

// Invoice bills an approved contract. Total is always Amount + VAT.
type Invoice struct {
	ID           string          `json:"id"`
	InvoiceID    string          `json:"invoice_id"`
	ContractID   string          `json:"contract_id"`
	SalesOrderID string          `json:"sales_order_id"`
	CustomerID   string          `json:"customer_id"`
	CustomerName string          `json:"customer_name"`
	Company      string          `json:"company"`
	Project      string          `json:"project"`
	Amount       decimal.Decimal `json:"amount"`
	VAT          decimal.Decimal `json:"vat"`
	VATRate      int             `json:"vat_rate"`
	Total        decimal.Decimal `json:"total"`
	Currency     string          `json:"currency"`
	Status       InvoiceStatus   `json:"status"`
	DueDate      time.Time       `json:"due_date"`
	PaymentID    string          `json:"payment_id,omitempty"`
	PaidAt       time.Time       `json:"paid_at"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

// IsOverdue reports whether an unpaid invoice is past its due date at now.
func (i Invoice) IsOverdue(now time.Time) bool {
	return i.Status == InvoiceStatusPending && !i.DueDate.IsZero() && now.After(i.DueDate)
}
