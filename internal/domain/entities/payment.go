package entities

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"
)

// PaymentStatus is the outcome reported by the payment provider.
type PaymentStatus string

const (
	PaymentStatusPending  PaymentStatus = "pending"
	PaymentStatusApproved PaymentStatus = "approved"
	PaymentStatusDenied   PaymentStatus = "denied"
)

// Payment settles an invoice through the payment provider.
//
// ProviderRaw keeps the provider response body as received; ProviderPayload is
// its parsed form, kept for querying.
type Payment struct {
	ID                string          `json:"id"`
	InvoiceID         string          `json:"invoice_id"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	Date              time.Time       `json:"date"`
	Status            PaymentStatus   `json:"status"`
	ProviderPaymentID string          `json:"provider_payment_id"`
	ProviderRaw       json.RawMessage `json:"provider_raw,omitempty"`
	ProviderPayload   map[string]any  `json:"provider_payload,omitempty"`
}
