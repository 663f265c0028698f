package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderDispatchStatus string

const (
	OrderDispatchPending   OrderDispatchStatus = "pending"
	OrderDispatchInTransit OrderDispatchStatus = "in_transit"
	OrderDispatchDelivered OrderDispatchStatus = "delivered"
)

// Next returns the status that follows s, if any.
func (s OrderDispatchStatus) Next() (OrderDispatchStatus, bool) {
	switch s {
	case OrderDispatchPending:
		return OrderDispatchInTransit, true
	case OrderDispatchInTransit:
		return OrderDispatchDelivered, true
	}
	return "", false
}

// OrderDispatch tracks the physical delivery of a sales order. It is not the
// per-unit EquipmentDispatch reservation.
type OrderDispatch struct {
	ID           string              `json:"id"`
	DispatchID   string              `json:"dispatch_id"`
	SalesOrderID string              `json:"sales_order_id"`
	QuotationID  string              `json:"quotation_id"`
	CustomerID   string              `json:"customer_id"`
	CustomerName string              `json:"customer_name"`
	Company      string              `json:"company"`
	Project      string              `json:"project"`
	Items        []QuotationItem     `json:"items"`
	TotalAmount  decimal.Decimal     `json:"total_amount"`
	Status       OrderDispatchStatus `json:"status"`
	DispatchedBy string              `json:"dispatched_by"`
	DeliveredAt  time.Time           `json:"delivered_at"`
	CreatedAt    time.Time           `json:"created_at"`
	UpdatedAt    time.Time           `json:"updated_at"`
}
