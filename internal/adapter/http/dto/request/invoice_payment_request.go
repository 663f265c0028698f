package request

import "encoding/json"

// InvoicePaymentRequest is the body of the pay-invoice route.
//
// `mp_payload` is forwarded as-is (raw JSON) to support varying Mercado Pago schemas.
// A bare Mercado Pago payload without the envelope is accepted as well.
type InvoicePaymentRequest struct {
	MPPayload json.RawMessage `json:"mp_payload"`
}
