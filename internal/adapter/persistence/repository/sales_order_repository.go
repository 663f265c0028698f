package repository

import (
	"context"
	"errors"
	"time"

	"rental_backend/internal/adapter/persistence/docstore"
	"rental_backend/internal/domain/entities"
	"rental_backend/internal/usecase/interfaces"
)

type salesOrderItem struct {
	ID                string     `dynamodbav:"id"`
	SalesOrderID      string     `dynamodbav:"sales_order_id"`
	QuotationID       string     `dynamodbav:"quotation_id"`
	EnquiryID         string     `dynamodbav:"enquiry_id"`
	CustomerID        string     `dynamodbav:"customer_id"`
	CustomerName      string     `dynamodbav:"customer_name"`
	Company           string     `dynamodbav:"company"`
	Project           string     `dynamodbav:"project"`
	Items             []lineItem `dynamodbav:"items"`
	TotalAmount       string     `dynamodbav:"total_amount"`
	Status            string     `dynamodbav:"status"`
	StockChecked      bool       `dynamodbav:"stock_checked"`
	StockAvailable    bool       `dynamodbav:"stock_available"`
	ContractID        string     `dynamodbav:"contract_id"`
	SentToWarehouseAt string     `dynamodbav:"sent_to_warehouse_at"`
	DispatchedAt      string     `dynamodbav:"dispatched_at"`
	CreatedBy         string     `dynamodbav:"created_by"`
	CreatedAt         string     `dynamodbav:"created_at"`
	UpdatedAt         string     `dynamodbav:"updated_at"`
}

type SalesOrderRepository struct {
	coll docstore.Collection
	businessIDs
}

var _ interfaces.ISalesOrderRepository = (*SalesOrderRepository)(nil)

func NewSalesOrderRepository(store docstore.Store) *SalesOrderRepository {
	coll := store.Collection(CollectionSalesOrders)
	return &SalesOrderRepository{
		coll:        coll,
		businessIDs: businessIDs{colls: []docstore.Collection{coll}, field: "sales_order_id"},
	}
}

func (r *SalesOrderRepository) Create(ctx context.Context, so entities.SalesOrder) (entities.SalesOrder, error) {
	if err := insertOne(ctx, r.coll, toSalesOrderItem(so)); err != nil {
		return entities.SalesOrder{}, err
	}
	return so, nil
}

func (r *SalesOrderRepository) GetByID(ctx context.Context, id string) (entities.SalesOrder, error) {
	return findOne(ctx, r.coll, docstore.ByID(id), fromSalesOrderItem)
}

func (r *SalesOrderRepository) GetBySalesOrderID(ctx context.Context, salesOrderID string) (entities.SalesOrder, error) {
	return findOne(ctx, r.coll, docstore.Where(docstore.Eq("sales_order_id", salesOrderID)), fromSalesOrderItem)
}

func (r *SalesOrderRepository) List(ctx context.Context, status entities.SalesOrderStatus) ([]entities.SalesOrder, error) {
	return findAll(ctx, r.coll, statusFilter("status", status), fromSalesOrderItem)
}

func (r *SalesOrderRepository) Transition(ctx context.Context, id string, from []entities.SalesOrderStatus, to entities.SalesOrderStatus, at time.Time) (entities.SalesOrder, error) {
	u := docstore.NewUpdate().
		Set("status", to).
		Set("updated_at", formatTime(at))
	switch to {
	case entities.SalesOrderStatusProcessing:
		u.Set("sent_to_warehouse_at", formatTime(at))
	case entities.SalesOrderStatusDispatched:
		u.Set("dispatched_at", formatTime(at))
	}
	f := docstore.ByID(id)
	if len(from) > 0 {
		f = f.And(docstore.In("status", from...))
	}
	return updateOne(ctx, r.coll, f, u, fromSalesOrderItem)
}

func (r *SalesOrderRepository) MarkStockChecked(ctx context.Context, id string, available bool) (entities.SalesOrder, error) {
	u := docstore.NewUpdate().
		Set("stock_checked", true).
		Set("stock_available", available).
		Set("updated_at", formatTime(time.Now()))
	return updateOne(ctx, r.coll, docstore.ByID(id), u, fromSalesOrderItem)
}

func (r *SalesOrderRepository) LinkContract(ctx context.Context, id, contractID string) error {
	err := r.coll.UpdateOne(ctx, docstore.ByID(id), docstore.NewUpdate().Set("contract_id", contractID), nil)
	if errors.Is(err, docstore.ErrNoMatch) {
		return nil
	}
	return err
}

func toSalesOrderItem(so entities.SalesOrder) salesOrderItem {
	return salesOrderItem{
		ID:                so.ID,
		SalesOrderID:      so.SalesOrderID,
		QuotationID:       so.QuotationID,
		EnquiryID:         so.EnquiryID,
		CustomerID:        so.CustomerID,
		CustomerName:      so.CustomerName,
		Company:           so.Company,
		Project:           so.Project,
		Items:             toLineItems(so.Items),
		TotalAmount:       formatMoney(so.TotalAmount),
		Status:            string(so.Status),
		StockChecked:      so.StockChecked,
		StockAvailable:    so.StockAvailable,
		ContractID:        so.ContractID,
		SentToWarehouseAt: formatTime(so.SentToWarehouseAt),
		DispatchedAt:      formatTime(so.DispatchedAt),
		CreatedBy:         so.CreatedBy,
		CreatedAt:         formatTime(so.CreatedAt),
		UpdatedAt:         formatTime(so.UpdatedAt),
	}
}

func fromSalesOrderItem(it salesOrderItem) entities.SalesOrder {
	return entities.SalesOrder{
		ID:                it.ID,
		SalesOrderID:      it.SalesOrderID,
		QuotationID:       it.QuotationID,
		EnquiryID:         it.EnquiryID,
		CustomerID:        it.CustomerID,
		CustomerName:      it.CustomerName,
		Company:           it.Company,
		Project:           it.Project,
		Items:             fromLineItems(it.Items),
		TotalAmount:       parseMoney(it.TotalAmount),
		Status:            entities.SalesOrderStatus(it.Status),
		StockChecked:      it.StockChecked,
		StockAvailable:    it.StockAvailable,
		ContractID:        it.ContractID,
		SentToWarehouseAt: parseTime(it.SentToWarehouseAt),
		DispatchedAt:      parseTime(it.DispatchedAt),
		CreatedBy:         it.CreatedBy,
		CreatedAt:         parseTime(it.CreatedAt),
		UpdatedAt:         parseTime(it.UpdatedAt),
	}
}
