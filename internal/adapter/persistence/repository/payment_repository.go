package repository

import (
	"context"

	"rental_backend/internal/adapter/persistence/docstore"
	"rental_backend/internal/domain/entities"
	"rental_backend/internal/usecase/interfaces"
)

type paymentItem struct {
	ID                string         `dynamodbav:"id"`
	InvoiceID         string         `dynamodbav:"invoice_id"`
	Amount            string         `dynamodbav:"amount"`
	Currency          string         `dynamodbav:"currency"`
	Date              string         `dynamodbav:"date"`
	Status            string         `dynamodbav:"status"`
	ProviderPaymentID string         `dynamodbav:"provider_payment_id"`
	ProviderPayload   map[string]any `dynamodbav:"provider_payload,omitempty"`
	ProviderRaw       string         `dynamodbav:"provider_raw,omitempty"`
}

// PaymentRepository persists invoice payments.
type PaymentRepository struct {
	coll docstore.Collection
}

var _ interfaces.IPaymentRepository = (*PaymentRepository)(nil)

func NewPaymentRepository(store docstore.Store) *PaymentRepository {
	return &PaymentRepository{coll: store.Collection(CollectionPayments)}
}

func (r *PaymentRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	if err := insertOne(ctx, r.coll, toPaymentItem(p)); err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	return findOne(ctx, r.coll, docstore.ByID(id), fromPaymentItem)
}

func (r *PaymentRepository) ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Payment, error) {
	return findAll(ctx, r.coll, docstore.Where(docstore.Eq("invoice_id", invoiceID)), fromPaymentItem)
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                p.ID,
		InvoiceID:         p.InvoiceID,
		Amount:            formatMoney(p.Amount),
		Currency:          p.Currency,
		Date:              formatTime(p.Date),
		Status:            string(p.Status),
		ProviderPaymentID: p.ProviderPaymentID,
		ProviderPayload:   p.ProviderPayload,
		ProviderRaw:       string(p.ProviderRaw),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	p := entities.Payment{
		ID:                it.ID,
		InvoiceID:         it.InvoiceID,
		Amount:            parseMoney(it.Amount),
		Currency:          it.Currency,
		Date:              parseTime(it.Date),
		Status:            entities.PaymentStatus(it.Status),
		ProviderPaymentID: it.ProviderPaymentID,
		ProviderPayload:   it.ProviderPayload,
	}
	if it.ProviderRaw != "" {
		p.ProviderRaw = []byte(it.ProviderRaw)
	}
	return p
}
