package response

import (
	"time"

	"rental_backend/internal/domain/entities"

	"github.com/shopspring/decimal"
)

type PaymentResponse struct {
	PaymentID         string          `json:"payment_id"`
	ID                string          `json:"id"`
	InvoiceID         string          `json:"invoice_id"`
	Amount            decimal.Decimal `json:"amount"`
	Currency          string          `json:"currency"`
	PaymentDate       time.Time       `json:"payment_date"`
	Date              time.Time       `json:"date"`
	Status            string          `json:"status"`
	ProviderPaymentID string          `json:"provider_payment_id,omitempty"`

	ProviderRaw     string         `json:"provider_raw,omitempty"`
	ProviderPayload map[string]any `json:"provider_payload,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:         p.ID,
		ID:                p.ID,
		InvoiceID:         p.InvoiceID,
		Amount:            p.Amount,
		Currency:          p.Currency,
		PaymentDate:       p.Date,
		Date:              p.Date,
		Status:            string(p.Status),
		ProviderPaymentID: p.ProviderPaymentID,
		ProviderRaw:       string(p.ProviderRaw),
		ProviderPayload:   p.ProviderPayload,
	}
}

func FromPayments(ps []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(ps))
	for _, p := range ps {
		out = append(out, FromPayment(p))
	}
	return out
}

// InvoicePaymentResponse is the outcome of paying an invoice.
type InvoicePaymentResponse struct {
	Invoice entities.Invoice `json:"invoice"`
	Payment PaymentResponse  `json:"payment"`
}
