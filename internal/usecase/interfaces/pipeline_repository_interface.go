package interfaces

import (
	"context"
	"time"

	"rental_backend/internal/domain/entities"
)

// Repositories of the sales pipeline. Getters return a zero value (empty ID)
// when nothing matches; conditional updates do the same when their
// precondition no longer holds.

type EnquiryFilter struct {
	Status     entities.EnquiryStatus
	CustomerID string
}

type IEnquiryRepository interface {
	IBusinessIDSource
	Create(ctx context.Context, e entities.Enquiry) (entities.Enquiry, error)
	GetByID(ctx context.Context, id string) (entities.Enquiry, error)
	GetByEnquiryID(ctx context.Context, enquiryID string) (entities.Enquiry, error)
	List(ctx context.Context, f EnquiryFilter) ([]entities.Enquiry, error)
	UpdateStatus(ctx context.Context, id string, status entities.EnquiryStatus, assigneeID, assigneeName string) (entities.Enquiry, error)
	Extend(ctx context.Context, id string, endDate time.Time, reason string) (entities.Enquiry, error)
}

// Transition carries the audit fields written alongside a status change.
type Transition struct {
	By     string
	At     time.Time
	Reason string
}

type IQuotationRepository interface {
	IBusinessIDSource
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	GetByQuotationID(ctx context.Context, quotationID string) (entities.Quotation, error)
	List(ctx context.Context, status entities.QuotationStatus) ([]entities.Quotation, error)
	ReplaceDraft(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	Transition(ctx context.Context, id string, from []entities.QuotationStatus, to entities.QuotationStatus, t Transition) (entities.Quotation, error)
	// LinkSalesOrder records the sales order of an approved quotation and
	// moves it to converted_to_order. Other statuses are left untouched.
	LinkSalesOrder(ctx context.Context, id, salesOrderID string) error
}

type ISalesOrderRepository interface {
	IBusinessIDSource
	Create(ctx context.Context, so entities.SalesOrder) (entities.SalesOrder, error)
	GetByID(ctx context.Context, id string) (entities.SalesOrder, error)
	GetBySalesOrderID(ctx context.Context, salesOrderID string) (entities.SalesOrder, error)
	List(ctx context.Context, status entities.SalesOrderStatus) ([]entities.SalesOrder, error)
	Transition(ctx context.Context, id string, from []entities.SalesOrderStatus, to entities.SalesOrderStatus, at time.Time) (entities.SalesOrder, error)
	MarkStockChecked(ctx context.Context, id string, available bool) (entities.SalesOrder, error)
	LinkContract(ctx context.Context, id, contractID string) error
}

type IContractRepository interface {
	IBusinessIDSource
	Create(ctx context.Context, c entities.Contract) (entities.Contract, error)
	GetByID(ctx context.Context, id string) (entities.Contract, error)
	GetByContractID(ctx context.Context, contractID string) (entities.Contract, error)
	// GetBySalesOrderID ignores rejected contracts.
	GetBySalesOrderID(ctx context.Context, salesOrderID string) (entities.Contract, error)
	List(ctx context.Context, approval entities.ApprovalStatus) ([]entities.Contract, error)
	Approve(ctx context.Context, id string, t Transition, invoiceKey string) (entities.Contract, error)
	Reject(ctx context.Context, id string, t Transition) (entities.Contract, error)
}

type IInvoiceRepository interface {
	IBusinessIDSource
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	GetByInvoiceID(ctx context.Context, invoiceID string) (entities.Invoice, error)
	List(ctx context.Context, status entities.InvoiceStatus) ([]entities.Invoice, error)
	ClaimPayment(ctx context.Context, id, claim string, at time.Time, lease time.Duration) (entities.Invoice, error)
	ReleasePaymentClaim(ctx context.Context, id, claim string) error
	MarkPaid(ctx context.Context, id, paymentID string, at time.Time) (entities.Invoice, error)
	MarkOverdue(ctx context.Context, id string, at time.Time) (entities.Invoice, error)
}

// IPaymentRepository persists invoice payments.
type IPaymentRepository interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Payment, error)
}

type IAuditLogRepository interface {
	Append(ctx context.Context, e entities.AuditEntry) error
	List(ctx context.Context, entityType, entityID string) ([]entities.AuditEntry, error)
}
