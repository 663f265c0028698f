package repository

import (
	"context"
	"time"

	"rental_backend/internal/adapter/persistence/docstore"
	"rental_backend/internal/domain/entities"
	"rental_backend/internal/usecase/interfaces"
)

type orderDispatchItem struct {
	ID           string     `dynamodbav:"id"`
	DispatchID   string     `dynamodbav:"dispatch_id"`
	SalesOrderID string     `dynamodbav:"sales_order_id"`
	QuotationID  string     `dynamodbav:"quotation_id"`
	CustomerID   string     `dynamodbav:"customer_id"`
	CustomerName string     `dynamodbav:"customer_name"`
	Company      string     `dynamodbav:"company"`
	Project      string     `dynamodbav:"project"`
	Items        []lineItem `dynamodbav:"items"`
	TotalAmount  string     `dynamodbav:"total_amount"`
	Status       string     `dynamodbav:"status"`
	DispatchedBy string     `dynamodbav:"dispatched_by"`
	DeliveredAt  string     `dynamodbav:"delivered_at"`
	CreatedAt    string     `dynamodbav:"created_at"`
	UpdatedAt    string     `dynamodbav:"updated_at"`
}

type OrderDispatchRepository struct {
	coll docstore.Collection
	businessIDs
}

var _ interfaces.IOrderDispatchRepository = (*OrderDispatchRepository)(nil)

func NewOrderDispatchRepository(store docstore.Store) *OrderDispatchRepository {
	coll := store.Collection(CollectionDispatches)
	return &OrderDispatchRepository{
		coll:        coll,
		businessIDs: businessIDs{colls: []docstore.Collection{coll}, field: "dispatch_id"},
	}
}

func (r *OrderDispatchRepository) Create(ctx context.Context, d entities.OrderDispatch) (entities.OrderDispatch, error) {
	if err := insertOne(ctx, r.coll, toOrderDispatchItem(d)); err != nil {
		return entities.OrderDispatch{}, err
	}
	return d, nil
}

func (r *OrderDispatchRepository) GetByID(ctx context.Context, id string) (entities.OrderDispatch, error) {
	return findOne(ctx, r.coll, docstore.ByID(id), fromOrderDispatchItem)
}

func (r *OrderDispatchRepository) GetByDispatchID(ctx context.Context, dispatchID string) (entities.OrderDispatch, error) {
	return findOne(ctx, r.coll, docstore.Where(docstore.Eq("dispatch_id", dispatchID)), fromOrderDispatchItem)
}

func (r *OrderDispatchRepository) List(ctx context.Context, status entities.OrderDispatchStatus) ([]entities.OrderDispatch, error) {
	return findAll(ctx, r.coll, statusFilter("status", status), fromOrderDispatchItem)
}

func (r *OrderDispatchRepository) Transition(ctx context.Context, id string, from, to entities.OrderDispatchStatus, at time.Time) (entities.OrderDispatch, error) {
	u := docstore.NewUpdate().
		Set("status", to).
		Set("updated_at", formatTime(at))
	if to == entities.OrderDispatchDelivered {
		u.Set("delivered_at", formatTime(at))
	}
	f := docstore.ByID(id).And(docstore.Eq("status", from))
	return updateOne(ctx, r.coll, f, u, fromOrderDispatchItem)
}

func toOrderDispatchItem(d entities.OrderDispatch) orderDispatchItem {
	return orderDispatchItem{
		ID:           d.ID,
		DispatchID:   d.DispatchID,
		SalesOrderID: d.SalesOrderID,
		QuotationID:  d.QuotationID,
		CustomerID:   d.CustomerID,
		CustomerName: d.CustomerName,
		Company:      d.Company,
		Project:      d.Project,
		Items:        toLineItems(d.Items),
		TotalAmount:  formatMoney(d.TotalAmount),
		Status:       string(d.Status),
		DispatchedBy: d.DispatchedBy,
		DeliveredAt:  formatTime(d.DeliveredAt),
		CreatedAt:    formatTime(d.CreatedAt),
		UpdatedAt:    formatTime(d.UpdatedAt),
	}
}

func fromOrderDispatchItem(it orderDispatchItem) entities.OrderDispatch {
	return entities.OrderDispatch{
		ID:           it.ID,
		DispatchID:   it.DispatchID,
		SalesOrderID: it.SalesOrderID,
		QuotationID:  it.QuotationID,
		CustomerID:   it.CustomerID,
		CustomerName: it.CustomerName,
		Company:      it.Company,
		Project:      it.Project,
		Items:        fromLineItems(it.Items),
		TotalAmount:  parseMoney(it.TotalAmount),
		Status:       entities.OrderDispatchStatus(it.Status),
		DispatchedBy: it.DispatchedBy,
		DeliveredAt:  parseTime(it.DeliveredAt),
		CreatedAt:    parseTime(it.CreatedAt),
		UpdatedAt:    parseTime(it.UpdatedAt),
	}
}
