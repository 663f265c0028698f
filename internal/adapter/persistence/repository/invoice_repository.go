package repository

import (
	"context"
	"time"

	"rental_backend/internal/adapter/persistence/docstore"
	"rental_backend/internal/domain/entities"
	"rental_backend/internal/usecase/interfaces"
)

type invoiceItem struct {
	ID           string `dynamodbav:"id"`
	InvoiceID    string `dynamodbav:"invoice_id"`
	ContractID   string `dynamodbav:"contract_id"`
	SalesOrderID string `dynamodbav:"sales_order_id"`
	CustomerID   string `dynamodbav:"customer_id"`
	CustomerName string `dynamodbav:"customer_name"`
	Company      string `dynamodbav:"company"`
	Project      string `dynamodbav:"project"`
	Amount       string `dynamodbav:"amount"`
	VAT          string `dynamodbav:"vat"`
	VATRate      int    `dynamodbav:"vat_rate"`
	Total        string `dynamodbav:"total"`
	Currency     string `dynamodbav:"currency"`
	Status       string `dynamodbav:"status"`
	DueDate      string `dynamodbav:"due_date"`
	PaymentID    string `dynamodbav:"payment_id"`
	PaidAt       string `dynamodbav:"paid_at"`
	PaymentClaim string `dynamodbav:"payment_claim"`
	ClaimedUntil string `dynamodbav:"payment_claimed_until"`
	CreatedAt    string `dynamodbav:"created_at"`
	UpdatedAt    string `dynamodbav:"updated_at"`
}

type InvoiceRepository struct {
	coll docstore.Collection
	businessIDs
}

var _ interfaces.IInvoiceRepository = (*InvoiceRepository)(nil)

func NewInvoiceRepository(store docstore.Store) *InvoiceRepository {
	coll := store.Collection(CollectionInvoices)
	return &InvoiceRepository{
		coll:        coll,
		businessIDs: businessIDs{colls: []docstore.Collection{coll}, field: "invoice_id"},
	}
}

func (r *InvoiceRepository) Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	if err := insertOne(ctx, r.coll, toInvoiceItem(inv)); err != nil {
		return entities.Invoice{}, err
	}
	return inv, nil
}

func (r *InvoiceRepository) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	return findOne(ctx, r.coll, docstore.ByID(id), fromInvoiceItem)
}

func (r *InvoiceRepository) GetByInvoiceID(ctx context.Context, invoiceID string) (entities.Invoice, error) {
	return findOne(ctx, r.coll, docstore.Where(docstore.Eq("invoice_id", invoiceID)), fromInvoiceItem)
}

func (r *InvoiceRepository) List(ctx context.Context, status entities.InvoiceStatus) ([]entities.Invoice, error) {
	return findAll(ctx, r.coll, statusFilter("status", status), fromInvoiceItem)
}

// claimLayout is fixed width so lease expiries order lexicographically.
const claimLayout = "2006-01-02T15:04:05.000000000Z"

// ClaimPayment reserves an open invoice for one payment attempt until at+lease.
// An unclaimed invoice carries an empty expiry, which sorts before any time,
// so a lapsed claim and no claim pass the same condition. The zero invoice
// means someone else holds the claim or the invoice is settled.
func (r *InvoiceRepository) ClaimPayment(ctx context.Context, id, claim string, at time.Time, lease time.Duration) (entities.Invoice, error) {
	u := docstore.NewUpdate().
		Set("payment_claim", claim).
		Set("payment_claimed_until", at.UTC().Add(lease).Format(claimLayout))
	f := docstore.ByID(id).And(
		docstore.In("status", entities.InvoiceStatusPending, entities.InvoiceStatusOverdue),
		docstore.Lte("payment_claimed_until", at.UTC().Format(claimLayout)),
	)
	return updateOne(ctx, r.coll, f, u, fromInvoiceItem)
}

// ReleasePaymentClaim drops claim if it is still the current one.
func (r *InvoiceRepository) ReleasePaymentClaim(ctx context.Context, id, claim string) error {
	u := docstore.NewUpdate().
		Set("payment_claim", "").
		Set("payment_claimed_until", "")
	_, err := updateOne(ctx, r.coll, docstore.ByID(id).And(docstore.Eq("payment_claim", claim)), u, fromInvoiceItem)
	return err
}

// MarkPaid settles an invoice that is still pending or overdue and clears
// any payment claim.
func (r *InvoiceRepository) MarkPaid(ctx context.Context, id, paymentID string, at time.Time) (entities.Invoice, error) {
	u := docstore.NewUpdate().
		Set("status", entities.InvoiceStatusPaid).
		Set("payment_id", paymentID).
		Set("paid_at", formatTime(at)).
		Set("payment_claim", "").
		Set("payment_claimed_until", "").
		Set("updated_at", formatTime(at))
	f := docstore.ByID(id).And(docstore.In("status", entities.InvoiceStatusPending, entities.InvoiceStatusOverdue))
	return updateOne(ctx, r.coll, f, u, fromInvoiceItem)
}

func (r *InvoiceRepository) MarkOverdue(ctx context.Context, id string, at time.Time) (entities.Invoice, error) {
	u := docstore.NewUpdate().
		Set("status", entities.InvoiceStatusOverdue).
		Set("updated_at", formatTime(at))
	f := docstore.ByID(id).And(docstore.Eq("status", entities.InvoiceStatusPending))
	return updateOne(ctx, r.coll, f, u, fromInvoiceItem)
}

func toInvoiceItem(inv entities.Invoice) invoiceItem {
	return invoiceItem{
		ID:           inv.ID,
		InvoiceID:    inv.InvoiceID,
		ContractID:   inv.ContractID,
		SalesOrderID: inv.SalesOrderID,
		CustomerID:   inv.CustomerID,
		CustomerName: inv.CustomerName,
		Company:      inv.Company,
		Project:      inv.Project,
		Amount:       formatMoney(inv.Amount),
		VAT:          formatMoney(inv.VAT),
		VATRate:      inv.VATRate,
		Total:        formatMoney(inv.Total),
		Currency:     inv.Currency,
		Status:       string(inv.Status),
		DueDate:      formatTime(inv.DueDate),
		PaymentID:    inv.PaymentID,
		PaidAt:       formatTime(inv.PaidAt),
		CreatedAt:    formatTime(inv.CreatedAt),
		UpdatedAt:    formatTime(inv.UpdatedAt),
	}
}

func fromInvoiceItem(it invoiceItem) entities.Invoice {
	return entities.Invoice{
		ID:           it.ID,
		InvoiceID:    it.InvoiceID,
		ContractID:   it.ContractID,
		SalesOrderID: it.SalesOrderID,
		CustomerID:   it.CustomerID,
		CustomerName: it.CustomerName,
		Company:      it.Company,
		Project:      it.Project,
		Amount:       parseMoney(it.Amount),
		VAT:          parseMoney(it.VAT),
		VATRate:      it.VATRate,
		Total:        parseMoney(it.Total),
		Currency:     it.Currency,
		Status:       entities.InvoiceStatus(it.Status),
		DueDate:      parseTime(it.DueDate),
		PaymentID:    it.PaymentID,
		PaidAt:       parseTime(it.PaidAt),
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
