package interfaces

//go:generate mockgen -source=payment_gateway_interface.go -destination=mocks/mock_payment_gateway_interface.go -package=mocks

import (
	"context"
	"encoding/json"
)

// IPaymentGateway charges an invoice total with a provider. The raw provider
// response is stored on the payment document.
type IPaymentGateway interface {
	CreatePayment(ctx context.Context, requestPayload json.RawMessage) (providerPaymentID string, providerStatus string, providerResponse json.RawMessage, err error)
}
