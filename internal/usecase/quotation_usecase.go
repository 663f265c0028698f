package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"rental_backend/internal/domain/entities"
	"rental_backend/internal/usecase/interfaces"
	"rental_backend/pkg"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	ErrQuotationNotFound        = pkg.Kind(pkg.ErrNotFound, "quotation not found")
	ErrInvalidQuotationID       = pkg.Kind(pkg.ErrValidation, "invalid quotation id")
	ErrInvalidQuotationStatus   = pkg.Kind(pkg.ErrValidation, "invalid quotation status")
	ErrQuotationNotDraft        = pkg.Kind(pkg.ErrConflict, "quotation is no longer a draft")
	ErrQuotationNotSent         = pkg.Kind(pkg.ErrConflict, "quotation has not been sent")
	ErrQuotationAlreadyApproved = pkg.Kind(pkg.ErrConflict, "quotation already approved")
	ErrQuotationAlreadyRejected = pkg.Kind(pkg.ErrConflict, "quotation already rejected")
)

// IQuotationUseCase drafts quotations and turns approved ones into sales
// orders.
type IQuotationUseCase interface {
	Create(ctx context.Context, p entities.Principal, q entities.Quotation) (entities.Quotation, error)
	Update(ctx context.Context, p entities.Principal, id string, q entities.Quotation) (entities.Quotation, error)
	Send(ctx context.Context, p entities.Principal, id string) (entities.Quotation, error)
	Approve(ctx context.Context, p entities.Principal, id string) (entities.Quotation, entities.SalesOrder, error)
	Reject(ctx context.Context, p entities.Principal, id, reason string) (entities.Quotation, error)
	List(ctx context.Context, p entities.Principal, status entities.QuotationStatus) ([]entities.Quotation, error)
	Get(ctx context.Context, p entities.Principal, id string) (entities.Quotation, error)
}

type QuotationUseCase struct {
	repo      interfaces.IQuotationRepository
	orders    interfaces.ISalesOrderRepository
	enquiries interfaces.IEnquiryRepository
	ids       IIDMinter
	log       *zap.Logger
	now       func() time.Time
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(
	repo interfaces.IQuotationRepository,
	orders interfaces.ISalesOrderRepository,
	enquiries interfaces.IEnquiryRepository,
	ids IIDMinter,
	log *zap.Logger,
) *QuotationUseCase {
	return &QuotationUseCase{
		repo:      repo,
		orders:    orders,
		enquiries: enquiries,
		ids:       ids,
		log:       log.Named("pipeline"),
		now:       time.Now,
	}
}

// ValidateQuotationItems checks the line arithmetic. A zero total is filled
// in with the sum of the lines; any other total must match it.
func ValidateQuotationItems(items []entities.QuotationItem, total decimal.Decimal) (decimal.Decimal, error) {
	if len(items) == 0 {
		return decimal.Zero, pkg.NewValidationError("at least one item is required")
	}

	var details []string
	for i, it := range items {
		if strings.TrimSpace(it.Equipment) == "" {
			details = append(details, fmt.Sprintf("items[%d].equipment is required", i))
		}
		if it.Subtotal.IsNegative() || it.WastageCharges.IsNegative() || it.CuttingCharges.IsNegative() {
			details = append(details, fmt.Sprintf("items[%d] charges must not be negative", i))
		}
		if !entities.RoundMoney(it.Total).Equal(entities.RoundMoney(it.ExpectedTotal())) {
			details = append(details, fmt.Sprintf("items[%d].total must equal subtotal + wastageCharges + cuttingCharges", i))
		}
	}
	if len(details) > 0 {
		return decimal.Zero, pkg.NewValidationError(details...)
	}

	sum := entities.SumItems(items)
	if total.IsZero() {
		return sum, nil
	}
	if !entities.RoundMoney(total).Equal(entities.RoundMoney(sum)) {
		return decimal.Zero, pkg.NewValidationError("totalAmount must equal the sum of item totals")
	}
	return total, nil
}

func (u *QuotationUseCase) Create(ctx context.Context, p entities.Principal, q entities.Quotation) (entities.Quotation, error) {
	if err := authorize(p, entities.RoleSales); err != nil {
		return entities.Quotation{}, err
	}
	total, err := ValidateQuotationItems(q.Items, q.TotalAmount)
	if err != nil {
		return entities.Quotation{}, err
	}
	if err := u.linkEnquiry(ctx, &q); err != nil {
		return entities.Quotation{}, err
	}

	quotationID, err := u.ids.Next(ctx, PrefixQuotation)
	if err != nil {
		return entities.Quotation{}, err
	}

	now := u.now().UTC()
	q.ID = newKey()
	q.QuotationID = quotationID
	q.Items = withItemIDs(q.Items)
	q.TotalAmount = total
	q.Status = entities.QuotationStatusDraft
	q.SentAt, q.DecidedAt = time.Time{}, time.Time{}
	q.DecidedBy, q.RejectReason, q.SalesOrderID = "", "", ""
	q.CreatedBy = p.Actor()
	q.CreatedAt = now
	q.UpdatedAt = now

	created, err := u.repo.Create(ctx, q)
	if err != nil {
		return entities.Quotation{}, err
	}
	u.log.Info("quotation drafted", zap.String("quotation_id", created.QuotationID), zap.String("total", created.TotalAmount.String()))
	return created, nil
}

// Update replaces the content of a draft.
func (u *QuotationUseCase) Update(ctx context.Context, p entities.Principal, id string, q entities.Quotation) (entities.Quotation, error) {
	if err := authorize(p, entities.RoleSales); err != nil {
		return entities.Quotation{}, err
	}
	current, err := u.find(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if current.Status != entities.QuotationStatusDraft {
		return entities.Quotation{}, ErrQuotationNotDraft
	}
	total, err := ValidateQuotationItems(q.Items, q.TotalAmount)
	if err != nil {
		return entities.Quotation{}, err
	}

	current.Items = withItemIDs(q.Items)
	current.TotalAmount = total
	current.CustomerName = firstNonEmpty(q.CustomerName, current.CustomerName)
	current.CustomerEmail = firstNonEmpty(q.CustomerEmail, current.CustomerEmail)
	current.Company = firstNonEmpty(q.Company, current.Company)
	current.Project = firstNonEmpty(q.Project, current.Project)
	current.Notes = q.Notes
	if !q.ValidUntil.IsZero() {
		current.ValidUntil = q.ValidUntil
	}
	current.UpdatedAt = u.now().UTC()

	updated, err := u.repo.ReplaceDraft(ctx, current)
	if err != nil {
		return entities.Quotation{}, err
	}
	if updated.ID == "" {
		return entities.Quotation{}, ErrQuotationNotDraft
	}
	return updated, nil
}

// Send moves a draft to sent. Sending a sent quotation again is a no-op.
func (u *QuotationUseCase) Send(ctx context.Context, p entities.Principal, id string) (entities.Quotation, error) {
	if err := authorize(p, entities.RoleSales); err != nil {
		return entities.Quotation{}, err
	}
	q, err := u.find(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.Status == entities.QuotationStatusSent {
		return q, nil
	}
	if q.Status != entities.QuotationStatusDraft {
		return entities.Quotation{}, ErrQuotationNotDraft
	}

	from := []entities.QuotationStatus{entities.QuotationStatusDraft}
	sent, err := u.repo.Transition(ctx, q.ID, from, entities.QuotationStatusSent, interfaces.Transition{By: p.Actor(), At: u.now().UTC()})
	if err != nil {
		return entities.Quotation{}, err
	}
	if sent.ID == "" {
		// Lost a race; accept it if the winner also sent it.
		if sent, err = u.find(ctx, q.ID); err != nil {
			return entities.Quotation{}, err
		}
		if sent.Status != entities.QuotationStatusSent {
			return entities.Quotation{}, ErrQuotationNotDraft
		}
		return sent, nil
	}
	u.log.Info("quotation sent", zap.String("quotation_id", sent.QuotationID), zap.String("by", p.Actor()))
	return sent, nil
}

// Approve accepts a sent quotation and mints its sales order. Approving
// again returns the same sales order.
func (u *QuotationUseCase) Approve(ctx context.Context, p entities.Principal, id string) (entities.Quotation, entities.SalesOrder, error) {
	if err := authorize(p); err != nil {
		return entities.Quotation{}, entities.SalesOrder{}, err
	}
	q, err := u.find(ctx, id)
	if err != nil {
		return entities.Quotation{}, entities.SalesOrder{}, err
	}

	if q.Status == entities.QuotationStatusSent {
		from := []entities.QuotationStatus{entities.QuotationStatusSent}
		approved, err := u.repo.Transition(ctx, q.ID, from, entities.QuotationStatusApproved, interfaces.Transition{By: p.Actor(), At: u.now().UTC()})
		if err != nil {
			return entities.Quotation{}, entities.SalesOrder{}, err
		}
		if approved.ID == "" {
			if approved, err = u.find(ctx, q.ID); err != nil {
				return entities.Quotation{}, entities.SalesOrder{}, err
			}
		}
		q = approved
	}

	switch q.Status {
	case entities.QuotationStatusApproved, entities.QuotationStatusConvertedToOrder:
	case entities.QuotationStatusRejected:
		return entities.Quotation{}, entities.SalesOrder{}, ErrQuotationAlreadyRejected
	default:
		return entities.Quotation{}, entities.SalesOrder{}, ErrQuotationNotSent
	}

	so, err := u.ensureSalesOrder(ctx, p, q)
	if err != nil {
		return entities.Quotation{}, entities.SalesOrder{}, err
	}
	if q.SalesOrderID == "" || q.Status != entities.QuotationStatusConvertedToOrder {
		if err := u.repo.LinkSalesOrder(ctx, q.ID, so.SalesOrderID); err != nil {
			return entities.Quotation{}, entities.SalesOrder{}, err
		}
		q.SalesOrderID = so.SalesOrderID
		q.Status = entities.QuotationStatusConvertedToOrder
	}
	return q, so, nil
}

// ensureSalesOrder returns the sales order of q, creating it under a key
// derived from the quotation so concurrent approvals converge on one order.
func (u *QuotationUseCase) ensureSalesOrder(ctx context.Context, p entities.Principal, q entities.Quotation) (entities.SalesOrder, error) {
	key := documentKey(keySalesOrder, q.ID)
	existing, err := u.orders.GetByID(ctx, key)
	if err != nil {
		return entities.SalesOrder{}, err
	}
	if existing.ID != "" {
		return existing, nil
	}

	salesOrderID, err := u.ids.Next(ctx, PrefixSalesOrder)
	if err != nil {
		return entities.SalesOrder{}, err
	}
	now := u.now().UTC()
	so := entities.SalesOrder{
		ID:           key,
		SalesOrderID: salesOrderID,
		QuotationID:  q.QuotationID,
		EnquiryID:    q.EnquiryID,
		CustomerID:   q.CustomerID,
		CustomerName: q.CustomerName,
		Company:      q.Company,
		Project:      q.Project,
		Items:        q.Items,
		TotalAmount:  q.TotalAmount,
		Status:       entities.SalesOrderStatusApproved,
		CreatedBy:    p.Actor(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := u.orders.Create(ctx, so)
	if errors.Is(err, interfaces.ErrAlreadyExists) {
		return u.orders.GetByID(ctx, key)
	}
	if err != nil {
		return entities.SalesOrder{}, err
	}
	u.log.Info("sales order created",
		zap.String("sales_order_id", created.SalesOrderID),
		zap.String("quotation_id", q.QuotationID),
		zap.String("total", created.TotalAmount.String()),
	)
	return created, nil
}

func (u *QuotationUseCase) Reject(ctx context.Context, p entities.Principal, id, reason string) (entities.Quotation, error) {
	if err := authorize(p); err != nil {
		return entities.Quotation{}, err
	}
	q, err := u.find(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	switch q.Status {
	case entities.QuotationStatusRejected:
		return q, nil
	case entities.QuotationStatusApproved, entities.QuotationStatusConvertedToOrder:
		return entities.Quotation{}, ErrQuotationAlreadyApproved
	case entities.QuotationStatusDraft:
		return entities.Quotation{}, ErrQuotationNotSent
	}

	from := []entities.QuotationStatus{entities.QuotationStatusSent}
	t := interfaces.Transition{By: p.Actor(), At: u.now().UTC(), Reason: strings.TrimSpace(reason)}
	rejected, err := u.repo.Transition(ctx, q.ID, from, entities.QuotationStatusRejected, t)
	if err != nil {
		return entities.Quotation{}, err
	}
	if rejected.ID == "" {
		if rejected, err = u.find(ctx, q.ID); err != nil {
			return entities.Quotation{}, err
		}
		if rejected.Status != entities.QuotationStatusRejected {
			return entities.Quotation{}, ErrQuotationAlreadyApproved
		}
	}
	u.log.Info("quotation rejected", zap.String("quotation_id", rejected.QuotationID), zap.String("by", p.Actor()))
	return rejected, nil
}

func (u *QuotationUseCase) List(ctx context.Context, p entities.Principal, status entities.QuotationStatus) ([]entities.Quotation, error) {
	if err := authorize(p, entities.RoleSales); err != nil {
		return nil, err
	}
	switch status {
	case "", entities.QuotationStatusDraft, entities.QuotationStatusSent, entities.QuotationStatusApproved,
		entities.QuotationStatusRejected, entities.QuotationStatusConvertedToOrder:
	default:
		return nil, ErrInvalidQuotationStatus
	}
	return u.repo.List(ctx, status)
}

func (u *QuotationUseCase) Get(ctx context.Context, p entities.Principal, id string) (entities.Quotation, error) {
	if err := authorize(p, entities.RoleSales); err != nil {
		return entities.Quotation{}, err
	}
	return u.find(ctx, id)
}

// find resolves a quotation by store key or QT business id.
func (u *QuotationUseCase) find(ctx context.Context, id string) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}
	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		if q, err = u.repo.GetByQuotationID(ctx, id); err != nil {
			return entities.Quotation{}, err
		}
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return q, nil
}

// linkEnquiry fills customer details from the referenced enquiry.
func (u *QuotationUseCase) linkEnquiry(ctx context.Context, q *entities.Quotation) error {
	ref := strings.TrimSpace(q.EnquiryID)
	if ref == "" || u.enquiries == nil {
		return nil
	}
	e, err := u.enquiries.GetByEnquiryID(ctx, ref)
	if err != nil {
		return err
	}
	if e.ID == "" {
		if e, err = u.enquiries.GetByID(ctx, ref); err != nil {
			return err
		}
	}
	if e.ID == "" {
		return ErrEnquiryNotFound
	}
	q.EnquiryID = e.EnquiryID
	q.CustomerID = firstNonEmpty(q.CustomerID, e.CustomerID)
	q.CustomerName = firstNonEmpty(q.CustomerName, e.CustomerName)
	q.CustomerEmail = firstNonEmpty(q.CustomerEmail, e.CustomerEmail, e.ContactEmail)
	q.Company = firstNonEmpty(q.Company, e.Company)
	return nil
}

func withItemIDs(items []entities.QuotationItem) []entities.QuotationItem {
	out := make([]entities.QuotationItem, len(items))
	for i, it := range items {
		if strings.TrimSpace(it.ID) == "" {
			it.ID = newKey()
		}
		out[i] = it
	}
	return out
}
