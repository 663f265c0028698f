package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type ContractStatus string

const (
	ContractStatusPendingApproval ContractStatus = "pending_approval"
	ContractStatusActive          ContractStatus = "active"
	ContractStatusRejected        ContractStatus = "rejected"
	ContractStatusCompleted       ContractStatus = "completed"
	ContractStatusCancelled       ContractStatus = "cancelled"
)

type ApprovalStatus string

const (
	ApprovalStatusPending  ApprovalStatus = "pending"
	ApprovalStatusApproved ApprovalStatus = "approved"
	ApprovalStatusRejected ApprovalStatus = "rejected"
)

// Contract is the rental agreement whose approval triggers billing.
//
// InvoiceKey is written in the same conditional update that approves the
// contract. It marks the approval as taken and names the invoice document
// the approval must produce, so a retried approval can finish the job.
type Contract struct {
	ID              string          `json:"id"`
	ContractID      string          `json:"contract_id"`
	SalesOrderID    string          `json:"sales_order_id"`
	QuotationID     string          `json:"quotation_id"`
	CustomerID      string          `json:"customer_id"`
	CustomerName    string          `json:"customer_name"`
	Company         string          `json:"company"`
	Project         string          `json:"project"`
	Items           []QuotationItem `json:"items"`
	Amount          decimal.Decimal `json:"amount"`
	Status          ContractStatus  `json:"status"`
	ApprovalStatus  ApprovalStatus  `json:"approval_status"`
	StartDate       time.Time       `json:"start_date"`
	EndDate         time.Time       `json:"end_date"`
	StockChecked    bool            `json:"stock_checked"`
	StockAvailable  bool            `json:"stock_available"`
	InvoiceKey      string          `json:"invoice_key,omitempty"`
	DecidedBy       string          `json:"decided_by"`
	DecidedAt       time.Time       `json:"decided_at"`
	RejectionReason string          `json:"rejection_reason,omitempty"`
	CreatedBy       string          `json:"created_by"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}
