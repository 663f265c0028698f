package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"rental_backend/internal/domain/entities"
	"rental_backend/internal/usecase/interfaces"
	"rental_backend/pkg"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrContractNotFound        = pkg.Kind(pkg.ErrNotFound, "contract not found")
	ErrInvalidContractID       = pkg.Kind(pkg.ErrValidation, "invalid contract id")
	ErrInvalidContractDates    = pkg.Kind(pkg.ErrValidation, "contract end date must not be before start date")
	ErrInvalidContractAmount   = pkg.Kind(pkg.ErrValidation, "contract amount must be positive")
	ErrContractAlreadyExists   = pkg.Kind(pkg.ErrConflict, "a contract already exists for this sales order")
	ErrContractAlreadyApproved = pkg.Kind(pkg.ErrConflict, "contract already approved")
	ErrContractAlreadyRejected = pkg.Kind(pkg.ErrConflict, "contract already rejected")
)

const entityContract = "contract"

// BillingPolicy holds the invoicing terms applied on contract approval.
type BillingPolicy struct {
	VATRate  int
	Currency string
	DueDays  int
}

func DefaultBillingPolicy() BillingPolicy {
	return BillingPolicy{VATRate: entities.DefaultVATRate, Currency: entities.DefaultCurrency, DueDays: entities.DefaultDueDays}
}

func (b BillingPolicy) withDefaults() BillingPolicy {
	d := DefaultBillingPolicy()
	if b.VATRate <= 0 {
		b.VATRate = d.VATRate
	}
	if strings.TrimSpace(b.Currency) == "" {
		b.Currency = d.Currency
	}
	if b.DueDays <= 0 {
		b.DueDays = d.DueDays
	}
	return b
}

// ContractRequest asks for a contract on a sales order. A zero amount takes
// the order total.
type ContractRequest struct {
	SalesOrderID string
	StartDate    time.Time
	EndDate      time.Time
	Amount       decimal.Decimal
}

type IContractUseCase interface {
	Request(ctx context.Context, p entities.Principal, in ContractRequest) (entities.Contract, error)
	Approve(ctx context.Context, p entities.Principal, id string) (entities.Contract, entities.Invoice, error)
	Reject(ctx context.Context, p entities.Principal, id, reason string) (entities.Contract, error)
	List(ctx context.Context, p entities.Principal, approval entities.ApprovalStatus) ([]entities.Contract, error)
	Get(ctx context.Context, p entities.Principal, id string) (entities.Contract, error)
}

type ContractUseCase struct {
	repo     interfaces.IContractRepository
	orders   interfaces.ISalesOrderRepository
	invoices interfaces.IInvoiceRepository
	audit    IAuditRecorder
	ids      IIDMinter
	billing  BillingPolicy
	log      *zap.Logger
	now      func() time.Time
}

var _ IContractUseCase = (*ContractUseCase)(nil)

func NewContractUseCase(
	repo interfaces.IContractRepository,
	orders interfaces.ISalesOrderRepository,
	invoices interfaces.IInvoiceRepository,
	audit IAuditRecorder,
	ids IIDMinter,
	billing BillingPolicy,
	log *zap.Logger,
) *ContractUseCase {
	return &ContractUseCase{
		repo:     repo,
		orders:   orders,
		invoices: invoices,
		audit:    audit,
		ids:      ids,
		billing:  billing.withDefaults(),
		log:      log.Named("pipeline"),
		now:      time.Now,
	}
}

// contractableStatuses are the sales order states a contract may be
// requested from. Orders with a live contract are refused before this gate.
var contractableStatuses = []entities.SalesOrderStatus{
	entities.SalesOrderStatusDraft,
	entities.SalesOrderStatusPendingApproval,
	entities.SalesOrderStatusApproved,
	entities.SalesOrderStatusProcessing,
	entities.SalesOrderStatusDispatched,
}

// Request mints a pending contract for a sales order and parks the order in
// pending_contract_approval. The order status change is the gate that keeps
// concurrent requests from minting two contracts.
func (u *ContractUseCase) Request(ctx context.Context, p entities.Principal, in ContractRequest) (entities.Contract, error) {
	if err := authorize(p, entities.RoleSales); err != nil {
		return entities.Contract{}, err
	}
	if !in.StartDate.IsZero() && !in.EndDate.IsZero() && in.EndDate.Before(in.StartDate) {
		return entities.Contract{}, ErrInvalidContractDates
	}
	if in.Amount.IsNegative() {
		return entities.Contract{}, ErrInvalidContractAmount
	}
	so, err := findSalesOrder(ctx, u.orders, in.SalesOrderID)
	if err != nil {
		return entities.Contract{}, err
	}

	existing, err := u.repo.GetBySalesOrderID(ctx, so.SalesOrderID)
	if err != nil {
		return entities.Contract{}, err
	}
	if existing.ID != "" {
		return entities.Contract{}, ErrContractAlreadyExists
	}

	now := u.now().UTC()
	parked, err := u.orders.Transition(ctx, so.ID, contractableStatuses, entities.SalesOrderStatusPendingContractApproval, now)
	if err != nil {
		return entities.Contract{}, err
	}
	if parked.ID == "" {
		return entities.Contract{}, ErrContractAlreadyExists
	}

	amount := in.Amount
	if amount.IsZero() {
		amount = so.TotalAmount
	}
	if !amount.IsPositive() {
		u.restoreOrder(ctx, so)
		return entities.Contract{}, ErrInvalidContractAmount
	}

	contractID, err := u.ids.Next(ctx, PrefixContract)
	if err != nil {
		u.restoreOrder(ctx, so)
		return entities.Contract{}, err
	}
	c := entities.Contract{
		ID:             newKey(),
		ContractID:     contractID,
		SalesOrderID:   so.SalesOrderID,
		QuotationID:    so.QuotationID,
		CustomerID:     so.CustomerID,
		CustomerName:   so.CustomerName,
		Company:        so.Company,
		Project:        so.Project,
		Items:          so.Items,
		Amount:         entities.RoundMoney(amount),
		Status:         entities.ContractStatusPendingApproval,
		ApprovalStatus: entities.ApprovalStatusPending,
		StartDate:      in.StartDate.UTC(),
		EndDate:        in.EndDate.UTC(),
		StockChecked:   so.StockChecked,
		StockAvailable: so.StockAvailable,
		CreatedBy:      p.Actor(),
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	created, err := u.repo.Create(ctx, c)
	if err != nil {
		u.restoreOrder(ctx, so)
		return entities.Contract{}, err
	}
	if err := u.orders.LinkContract(ctx, so.ID, created.ContractID); err != nil {
		u.log.Warn("sales order contract link failed", zap.String("sales_order_id", so.SalesOrderID), zap.Error(err))
	}

	u.log.Info("contract requested", zap.String("contract_id", created.ContractID), zap.String("sales_order_id", so.SalesOrderID))
	u.record(ctx, p, AuditContractRequested, created, map[string]string{"sales_order_id": so.SalesOrderID})
	return created, nil
}

// restoreOrder undoes the pending_contract_approval parking after a failed
// request.
func (u *ContractUseCase) restoreOrder(ctx context.Context, so entities.SalesOrder) {
	from := []entities.SalesOrderStatus{entities.SalesOrderStatusPendingContractApproval}
	if _, err := u.orders.Transition(ctx, so.ID, from, so.Status, u.now().UTC()); err != nil {
		u.log.Error("sales order restore failed", zap.String("sales_order_id", so.SalesOrderID), zap.Error(err))
	}
}

// Approve activates a pending contract, bills it and releases its sales
// order to the warehouse. The approval is claimed in one conditional write
// that also stores the invoice key, so calling Approve again after a partial
// failure finishes the remaining steps without duplicating the invoice.
func (u *ContractUseCase) Approve(ctx context.Context, p entities.Principal, id string) (entities.Contract, entities.Invoice, error) {
	if err := authorize(p); err != nil {
		return entities.Contract{}, entities.Invoice{}, err
	}
	c, err := u.find(ctx, id)
	if err != nil {
		return entities.Contract{}, entities.Invoice{}, err
	}

	claimed := false
	if c.ApprovalStatus == entities.ApprovalStatusPending {
		t := interfaces.Transition{By: p.Actor(), At: u.now().UTC()}
		approved, err := u.repo.Approve(ctx, c.ID, t, documentKey(keyInvoice, c.ID))
		if err != nil {
			return entities.Contract{}, entities.Invoice{}, err
		}
		if approved.ID == "" {
			if approved, err = u.find(ctx, c.ID); err != nil {
				return entities.Contract{}, entities.Invoice{}, err
			}
		} else {
			claimed = true
		}
		c = approved
	}

	switch c.ApprovalStatus {
	case entities.ApprovalStatusApproved:
	case entities.ApprovalStatusRejected:
		return entities.Contract{}, entities.Invoice{}, ErrContractAlreadyRejected
	default:
		return entities.Contract{}, entities.Invoice{}, ErrContractNotFound
	}

	inv, err := u.ensureInvoice(ctx, c)
	if err != nil {
		return entities.Contract{}, entities.Invoice{}, err
	}
	if err := u.releaseOrder(ctx, c); err != nil {
		return entities.Contract{}, entities.Invoice{}, err
	}

	if claimed {
		u.log.Info("contract approved", zap.String("contract_id", c.ContractID), zap.String("invoice_id", inv.InvoiceID))
		u.record(ctx, p, AuditContractApproved, c, map[string]string{"invoice_id": inv.InvoiceID})
	}
	return c, inv, nil
}

// ensureInvoice returns the invoice of an approved contract, minting it under
// the key recorded at approval.
func (u *ContractUseCase) ensureInvoice(ctx context.Context, c entities.Contract) (entities.Invoice, error) {
	key := c.InvoiceKey
	if key == "" {
		key = documentKey(keyInvoice, c.ID)
	}
	existing, err := u.invoices.GetByID(ctx, key)
	if err != nil {
		return entities.Invoice{}, err
	}
	if existing.ID != "" {
		return existing, nil
	}

	invoiceID, err := u.ids.Next(ctx, PrefixInvoice)
	if err != nil {
		return entities.Invoice{}, err
	}
	issued := c.DecidedAt
	if issued.IsZero() {
		issued = u.now().UTC()
	}
	amount := entities.RoundMoney(c.Amount)
	vat, total := entities.ComputeVAT(amount, u.billing.VATRate)
	inv := entities.Invoice{
		ID:           key,
		InvoiceID:    invoiceID,
		ContractID:   c.ContractID,
		SalesOrderID: c.SalesOrderID,
		CustomerID:   c.CustomerID,
		CustomerName: c.CustomerName,
		Company:      c.Company,
		Project:      c.Project,
		Amount:       amount,
		VAT:          vat,
		VATRate:      u.billing.VATRate,
		Total:        total,
		Currency:     u.billing.Currency,
		Status:       entities.InvoiceStatusPending,
		DueDate:      issued.AddDate(0, 0, u.billing.DueDays),
		CreatedAt:    issued,
		UpdatedAt:    issued,
	}

	created, err := u.invoices.Create(ctx, inv)
	if errors.Is(err, interfaces.ErrAlreadyExists) {
		return u.invoices.GetByID(ctx, key)
	}
	if err != nil {
		return entities.Invoice{}, err
	}
	u.log.Info("invoice created",
		zap.String("invoice_id", created.InvoiceID),
		zap.String("contract_id", c.ContractID),
		zap.String("total", created.Total.String()),
	)
	return created, nil
}

// releaseOrder moves the contract's sales order to processing. Orders that
// already moved past it are left alone.
func (u *ContractUseCase) releaseOrder(ctx context.Context, c entities.Contract) error {
	so, err := u.orders.GetBySalesOrderID(ctx, c.SalesOrderID)
	if err != nil {
		return err
	}
	if so.ID == "" {
		u.log.Warn("approved contract has no sales order", zap.String("contract_id", c.ContractID))
		return nil
	}
	from := []entities.SalesOrderStatus{entities.SalesOrderStatusPendingContractApproval, entities.SalesOrderStatusApproved}
	if _, err := u.orders.Transition(ctx, so.ID, from, entities.SalesOrderStatusProcessing, u.now().UTC()); err != nil {
		return err
	}
	return nil
}

// Reject declines a pending contract and hands the sales order back to
// sales. Rejecting twice is a no-op.
func (u *ContractUseCase) Reject(ctx context.Context, p entities.Principal, id, reason string) (entities.Contract, error) {
	if err := authorize(p); err != nil {
		return entities.Contract{}, err
	}
	c, err := u.find(ctx, id)
	if err != nil {
		return entities.Contract{}, err
	}
	switch c.ApprovalStatus {
	case entities.ApprovalStatusRejected:
		return c, nil
	case entities.ApprovalStatusApproved:
		return entities.Contract{}, ErrContractAlreadyApproved
	}

	t := interfaces.Transition{By: p.Actor(), At: u.now().UTC(), Reason: strings.TrimSpace(reason)}
	rejected, err := u.repo.Reject(ctx, c.ID, t)
	if err != nil {
		return entities.Contract{}, err
	}
	if rejected.ID == "" {
		if rejected, err = u.find(ctx, c.ID); err != nil {
			return entities.Contract{}, err
		}
		if rejected.ApprovalStatus != entities.ApprovalStatusRejected {
			return entities.Contract{}, ErrContractAlreadyApproved
		}
		return rejected, nil
	}

	so, err := u.orders.GetBySalesOrderID(ctx, rejected.SalesOrderID)
	if err != nil {
		return entities.Contract{}, err
	}
	if so.ID != "" {
		from := []entities.SalesOrderStatus{entities.SalesOrderStatusPendingContractApproval}
		if _, err := u.orders.Transition(ctx, so.ID, from, entities.SalesOrderStatusApproved, t.At); err != nil {
			return entities.Contract{}, err
		}
	}

	u.log.Info("contract rejected", zap.String("contract_id", rejected.ContractID), zap.String("by", p.Actor()))
	u.record(ctx, p, AuditContractRejected, rejected, map[string]string{"reason": t.Reason})
	return rejected, nil
}

func (u *ContractUseCase) List(ctx context.Context, p entities.Principal, approval entities.ApprovalStatus) ([]entities.Contract, error) {
	if err := authorize(p, entities.RoleSales, entities.RoleFinance); err != nil {
		return nil, err
	}
	return u.repo.List(ctx, approval)
}

func (u *ContractUseCase) Get(ctx context.Context, p entities.Principal, id string) (entities.Contract, error) {
	if err := authorize(p, entities.RoleSales, entities.RoleFinance); err != nil {
		return entities.Contract{}, err
	}
	return u.find(ctx, id)
}

// find resolves a contract by store key or business id.
func (u *ContractUseCase) find(ctx context.Context, id string) (entities.Contract, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Contract{}, ErrInvalidContractID
	}
	c, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Contract{}, err
	}
	if c.ID == "" {
		if c, err = u.repo.GetByContractID(ctx, id); err != nil {
			return entities.Contract{}, err
		}
	}
	if c.ID == "" {
		return entities.Contract{}, ErrContractNotFound
	}
	return c, nil
}

func (u *ContractUseCase) record(ctx context.Context, p entities.Principal, action string, c entities.Contract, details map[string]string) {
	if u.audit == nil {
		return
	}
	u.audit.Record(ctx, p, action, entityContract, c.ContractID, details)
}
