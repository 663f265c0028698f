package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type SalesOrderStatus string

const (
	SalesOrderStatusDraft                   SalesOrderStatus = "draft"
	SalesOrderStatusPendingApproval         SalesOrderStatus = "pending_approval"
	SalesOrderStatusApproved                SalesOrderStatus = "approved"
	SalesOrderStatusProcessing              SalesOrderStatus = "processing"
	SalesOrderStatusDispatched              SalesOrderStatus = "dispatched"
	SalesOrderStatusPendingContractApproval SalesOrderStatus = "pending_contract_approval"
	SalesOrderStatusCompleted               SalesOrderStatus = "completed"
	SalesOrderStatusCancelled               SalesOrderStatus = "cancelled"
)

// SalesOrder is minted once per approved quotation.
type SalesOrder struct {
	ID                string           `json:"id"`
	SalesOrderID      string           `json:"sales_order_id"`
	QuotationID       string           `json:"quotation_id"`
	EnquiryID         string           `json:"enquiry_id"`
	CustomerID        string           `json:"customer_id"`
	CustomerName      string           `json:"customer_name"`
	Company           string           `json:"company"`
	Project           string           `json:"project"`
	Items             []QuotationItem  `json:"items"`
	TotalAmount       decimal.Decimal  `json:"total_amount"`
	Status            SalesOrderStatus `json:"status"`
	StockChecked      bool             `json:"stock_checked"`
	StockAvailable    bool             `json:"stock_available"`
	ContractID        string           `json:"contract_id"`
	SentToWarehouseAt time.Time        `json:"sent_to_warehouse_at"`
	DispatchedAt      time.Time        `json:"dispatched_at"`
	CreatedBy         string           `json:"created_by"`
	CreatedAt         time.Time        `json:"created_at"`
	UpdatedAt         time.Time        `json:"updated_at"`
}

// StockLine is the availability verdict for one order line.
type StockLine struct {
	Equipment   string `json:"equipment"`
	EquipmentID string `json:"equipment_id,omitempty"`
	Requested   int    `json:"requested"`
	Available   int    `json:"available"`
	Sufficient  bool   `json:"sufficient"`
}

// StockReport is the result of checking an order against inventory.
type StockReport struct {
	SalesOrderID   string      `json:"sales_order_id"`
	StockAvailable bool        `json:"stock_available"`
	Lines          []StockLine `json:"lines"`
}
