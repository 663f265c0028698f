package repository

import (
	"context"
	"errors"

	"rental_backend/internal/adapter/persistence/docstore"
	"rental_backend/internal/domain/entities"
	"rental_backend/internal/usecase/interfaces"
)

type quotationItem struct {
	ID            string     `dynamodbav:"id"`
	QuotationID   string     `dynamodbav:"quotation_id"`
	EnquiryID     string     `dynamodbav:"enquiry_id"`
	CustomerID    string     `dynamodbav:"customer_id"`
	CustomerName  string     `dynamodbav:"customer_name"`
	CustomerEmail string     `dynamodbav:"customer_email"`
	Company       string     `dynamodbav:"company"`
	Project       string     `dynamodbav:"project"`
	Items         []lineItem `dynamodbav:"items"`
	TotalAmount   string     `dynamodbav:"total_amount"`
	Status        string     `dynamodbav:"status"`
	Notes         string     `dynamodbav:"notes"`
	ValidUntil    string     `dynamodbav:"valid_until"`
	SentAt        string     `dynamodbav:"sent_at"`
	DecidedBy     string     `dynamodbav:"decided_by"`
	DecidedAt     string     `dynamodbav:"decided_at"`
	RejectReason  string     `dynamodbav:"reject_reason"`
	SalesOrderID  string     `dynamodbav:"sales_order_id"`
	CreatedBy     string     `dynamodbav:"created_by"`
	CreatedAt     string     `dynamodbav:"created_at"`
	UpdatedAt     string     `dynamodbav:"updated_at"`
}

type QuotationRepository struct {
	coll docstore.Collection
	businessIDs
}

var _ interfaces.IQuotationRepository = (*QuotationRepository)(nil)

func NewQuotationRepository(store docstore.Store) *QuotationRepository {
	coll := store.Collection(CollectionQuotations)
	return &QuotationRepository{
		coll:        coll,
		businessIDs: businessIDs{colls: []docstore.Collection{coll}, field: "quotation_id"},
	}
}

func (r *QuotationRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	if err := insertOne(ctx, r.coll, toQuotationItem(q)); err != nil {
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	return findOne(ctx, r.coll, docstore.ByID(id), fromQuotationItem)
}

func (r *QuotationRepository) GetByQuotationID(ctx context.Context, quotationID string) (entities.Quotation, error) {
	return findOne(ctx, r.coll, docstore.Where(docstore.Eq("quotation_id", quotationID)), fromQuotationItem)
}

func (r *QuotationRepository) List(ctx context.Context, status entities.QuotationStatus) ([]entities.Quotation, error) {
	return findAll(ctx, r.coll, statusFilter("status", status), fromQuotationItem)
}

// ReplaceDraft overwrites the editable fields of a quotation still in draft.
func (r *QuotationRepository) ReplaceDraft(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	u := docstore.NewUpdate().
		Set("customer_name", q.CustomerName).
		Set("customer_email", q.CustomerEmail).
		Set("company", q.Company).
		Set("project", q.Project).
		Set("items", toLineItems(q.Items)).
		Set("total_amount", formatMoney(q.TotalAmount)).
		Set("notes", q.Notes).
		Set("valid_until", formatTime(q.ValidUntil)).
		Set("updated_at", formatTime(q.UpdatedAt))
	f := docstore.ByID(q.ID).And(docstore.Eq("status", entities.QuotationStatusDraft))
	return updateOne(ctx, r.coll, f, u, fromQuotationItem)
}

func (r *QuotationRepository) Transition(ctx context.Context, id string, from []entities.QuotationStatus, to entities.QuotationStatus, t interfaces.Transition) (entities.Quotation, error) {
	u := docstore.NewUpdate().
		Set("status", to).
		Set("updated_at", formatTime(t.At))
	switch to {
	case entities.QuotationStatusSent:
		u.Set("sent_at", formatTime(t.At))
	case entities.QuotationStatusApproved, entities.QuotationStatusRejected:
		u.Set("decided_by", t.By).Set("decided_at", formatTime(t.At))
		if t.Reason != "" {
			u.Set("reject_reason", t.Reason)
		}
	}
	f := docstore.ByID(id).And(docstore.In("status", from...))
	return updateOne(ctx, r.coll, f, u, fromQuotationItem)
}

func (r *QuotationRepository) LinkSalesOrder(ctx context.Context, id, salesOrderID string) error {
	f := docstore.ByID(id).And(docstore.In("status", entities.QuotationStatusApproved, entities.QuotationStatusConvertedToOrder))
	u := docstore.NewUpdate().
		Set("sales_order_id", salesOrderID).
		Set("status", entities.QuotationStatusConvertedToOrder)
	err := r.coll.UpdateOne(ctx, f, u, nil)
	if errors.Is(err, docstore.ErrNoMatch) {
		return nil
	}
	return err
}

func toQuotationItem(q entities.Quotation) quotationItem {
	return quotationItem{
		ID:            q.ID,
		QuotationID:   q.QuotationID,
		EnquiryID:     q.EnquiryID,
		CustomerID:    q.CustomerID,
		CustomerName:  q.CustomerName,
		CustomerEmail: q.CustomerEmail,
		Company:       q.Company,
		Project:       q.Project,
		Items:         toLineItems(q.Items),
		TotalAmount:   formatMoney(q.TotalAmount),
		Status:        string(q.Status),
		Notes:         q.Notes,
		ValidUntil:    formatTime(q.ValidUntil),
		SentAt:        formatTime(q.SentAt),
		DecidedBy:     q.DecidedBy,
		DecidedAt:     formatTime(q.DecidedAt),
		RejectReason:  q.RejectReason,
		SalesOrderID:  q.SalesOrderID,
		CreatedBy:     q.CreatedBy,
		CreatedAt:     formatTime(q.CreatedAt),
		UpdatedAt:     formatTime(q.UpdatedAt),
	}
}

func fromQuotationItem(it quotationItem) entities.Quotation {
	return entities.Quotation{
		ID:            it.ID,
		QuotationID:   it.QuotationID,
		EnquiryID:     it.EnquiryID,
		CustomerID:    it.CustomerID,
		CustomerName:  it.CustomerName,
		CustomerEmail: it.CustomerEmail,
		Company:       it.Company,
		Project:       it.Project,
		Items:         fromLineItems(it.Items),
		TotalAmount:   parseMoney(it.TotalAmount),
		Status:        entities.QuotationStatus(it.Status),
		Notes:         it.Notes,
		ValidUntil:    parseTime(it.ValidUntil),
		SentAt:        parseTime(it.SentAt),
		DecidedBy:     it.DecidedBy,
		DecidedAt:     parseTime(it.DecidedAt),
		RejectReason:  it.RejectReason,
		SalesOrderID:  it.SalesOrderID,
		CreatedBy:     it.CreatedBy,
		CreatedAt:     parseTime(it.CreatedAt),
		UpdatedAt:     parseTime(it.UpdatedAt),
	}
}
