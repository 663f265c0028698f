package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"rental_backend/internal/domain/entities"
	"rental_backend/internal/usecase/interfaces"
	"rental_backend/pkg"

	"go.uber.org/zap"
)

var (
	ErrInvoiceNotFound                = pkg.Kind(pkg.ErrNotFound, "invoice not found")
	ErrInvalidInvoiceID               = pkg.Kind(pkg.ErrValidation, "invalid invoice id")
	ErrInvalidInvoiceStatus           = pkg.Kind(pkg.ErrValidation, "invalid invoice status")
	ErrInvoiceAlreadyPaid             = pkg.Kind(pkg.ErrConflict, "invoice already paid")
	ErrPaymentInProgress              = pkg.Kind(pkg.ErrConflict, "a payment for this invoice is already in progress")
	ErrPaymentNotFound                = pkg.Kind(pkg.ErrNotFound, "payment not found")
	ErrInvalidPaymentPayload          = pkg.Kind(pkg.ErrValidation, "invalid payment payload")
	ErrPaymentGatewayBadRequest       = errors.New("payment gateway bad request")
	ErrPaymentGatewayUnauthorized     = errors.New("payment gateway unauthorized")
	ErrPaymentGatewayInvalidUsers     = errors.New("payment gateway invalid users involved")
	ErrPaymentGatewayCustomerNotFound = errors.New("payment gateway customer not found")
	errPaymentGatewayNotConfigured    = errors.New("payment gateway not configured")
)

// paymentClaimLease bounds how long a crashed payment attempt blocks the
// invoice.
const paymentClaimLease = 5 * time.Minute

// PaymentOptions tune payload checks. In mock mode payloads are optional
// because the gateway approves locally. SandboxPayerEmail fills a missing
// payer when charging against a Mercado Pago test account.
type PaymentOptions struct {
	Mock              bool
	SandboxPayerEmail string
}

// IInvoiceUseCase lists invoices and settles them through the payment
// gateway.
type IInvoiceUseCase interface {
	List(ctx context.Context, p entities.Principal, status entities.InvoiceStatus) ([]entities.Invoice, error)
	Get(ctx context.Context, p entities.Principal, id string) (entities.Invoice, error)
	Pay(ctx context.Context, p entities.Principal, id string, payload json.RawMessage) (entities.Invoice, entities.Payment, error)
	ListPayments(ctx context.Context, p entities.Principal, invoiceID string) ([]entities.Payment, error)
	GetPayment(ctx context.Context, p entities.Principal, id string) (entities.Payment, error)
}

type InvoiceUseCase struct {
	repo     interfaces.IInvoiceRepository
	payments interfaces.IPaymentRepository
	gateway  interfaces.IPaymentGateway
	opts     PaymentOptions
	log      *zap.Logger
	now      func() time.Time
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(
	repo interfaces.IInvoiceRepository,
	payments interfaces.IPaymentRepository,
	gateway interfaces.IPaymentGateway,
	opts PaymentOptions,
	log *zap.Logger,
) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, payments: payments, gateway: gateway, opts: opts, log: log.Named("payments"), now: time.Now}
}

// List returns invoices after flagging pending ones past their due date as
// overdue.
func (u *InvoiceUseCase) List(ctx context.Context, p entities.Principal, status entities.InvoiceStatus) ([]entities.Invoice, error) {
	if err := authorize(p, entities.RoleFinance, entities.RoleSales); err != nil {
		return nil, err
	}
	switch status {
	case "", entities.InvoiceStatusPending, entities.InvoiceStatusPaid, entities.InvoiceStatusOverdue:
	default:
		return nil, ErrInvalidInvoiceStatus
	}

	all, err := u.repo.List(ctx, "")
	if err != nil {
		return nil, err
	}
	out := make([]entities.Invoice, 0, len(all))
	for _, inv := range all {
		inv, err = u.sweep(ctx, inv)
		if err != nil {
			return nil, err
		}
		if status == "" || inv.Status == status {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (u *InvoiceUseCase) Get(ctx context.Context, p entities.Principal, id string) (entities.Invoice, error) {
	if err := authorize(p, entities.RoleFinance, entities.RoleSales); err != nil {
		return entities.Invoice{}, err
	}
	inv, err := u.find(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	return u.sweep(ctx, inv)
}

// sweep persists the overdue flag of a pending invoice past its due date.
func (u *InvoiceUseCase) sweep(ctx context.Context, inv entities.Invoice) (entities.Invoice, error) {
	now := u.now().UTC()
	if !inv.IsOverdue(now) {
		return inv, nil
	}
	updated, err := u.repo.MarkOverdue(ctx, inv.ID, now)
	if err != nil {
		return entities.Invoice{}, err
	}
	if updated.ID == "" {
		// Paid in the meantime.
		return u.repo.GetByID(ctx, inv.ID)
	}
	u.log.Info("invoice overdue", zap.String("invoice_id", updated.InvoiceID), zap.Time("due_date", updated.DueDate))
	return updated, nil
}

// Pay charges the invoice total through the gateway and records the
// payment. The invoice is claimed before the provider is called so only one
// attempt charges it; the invoice is marked paid only when the provider
// approves.
func (u *InvoiceUseCase) Pay(ctx context.Context, p entities.Principal, id string, payload json.RawMessage) (entities.Invoice, entities.Payment, error) {
	if err := authorize(p, entities.RoleFinance); err != nil {
		return entities.Invoice{}, entities.Payment{}, err
	}
	if u.gateway == nil {
		u.log.Error("gateway not configured", zap.String("invoice", id))
		return entities.Invoice{}, entities.Payment{}, errPaymentGatewayNotConfigured
	}
	inv, err := u.find(ctx, id)
	if err != nil {
		return entities.Invoice{}, entities.Payment{}, err
	}
	if inv, err = u.sweep(ctx, inv); err != nil {
		return entities.Invoice{}, entities.Payment{}, err
	}
	if inv.Status == entities.InvoiceStatusPaid {
		return entities.Invoice{}, entities.Payment{}, ErrInvoiceAlreadyPaid
	}

	request, err := u.paymentRequest(inv, payload)
	if err != nil {
		u.log.Warn("invalid payment payload", zap.String("invoice_id", inv.InvoiceID), zap.Error(err))
		return entities.Invoice{}, entities.Payment{}, err
	}

	claim := newKey()
	claimed, err := u.repo.ClaimPayment(ctx, inv.ID, claim, u.now().UTC(), paymentClaimLease)
	if err != nil {
		return entities.Invoice{}, entities.Payment{}, err
	}
	if claimed.ID == "" {
		return entities.Invoice{}, entities.Payment{}, u.claimConflict(ctx, inv)
	}

	u.log.Debug("calling payment gateway", zap.String("invoice_id", inv.InvoiceID), zap.Int("payload_len", len(request)))
	providerPaymentID, providerStatus, providerResp, err := u.gateway.CreatePayment(ctx, request)
	if err != nil {
		u.log.Warn("payment gateway failed", zap.String("invoice_id", inv.InvoiceID), zap.Error(err))
		u.release(ctx, inv, claim)
		return entities.Invoice{}, entities.Payment{}, classifyGatewayError(err)
	}
	u.log.Info("payment gateway success",
		zap.String("invoice_id", inv.InvoiceID),
		zap.String("provider_payment_id", providerPaymentID),
		zap.String("provider_status", providerStatus),
	)

	var parsed map[string]any
	if err := json.Unmarshal(providerResp, &parsed); err != nil {
		u.log.Warn("provider response unmarshal failed", zap.String("invoice_id", inv.InvoiceID), zap.Error(err))
	}

	now := u.now().UTC()
	payment := entities.Payment{
		ID:                newKey(),
		InvoiceID:         inv.InvoiceID,
		Amount:            inv.Total,
		Currency:          inv.Currency,
		Date:              now,
		Status:            paymentStatus(providerStatus),
		ProviderPaymentID: providerPaymentID,
		ProviderRaw:       providerResp,
		ProviderPayload:   parsed,
	}
	created, err := u.payments.Create(ctx, payment)
	if err != nil {
		// The provider may have charged; the claim stays until its lease lapses.
		u.log.Error("payment create failed", zap.String("invoice_id", inv.InvoiceID), zap.String("provider_payment_id", providerPaymentID), zap.Error(err))
		return entities.Invoice{}, entities.Payment{}, err
	}
	if created.Status != entities.PaymentStatusApproved {
		// A pending charge may still settle, so only a decline frees the invoice.
		if created.Status == entities.PaymentStatusDenied {
			u.release(ctx, inv, claim)
		}
		return inv, created, nil
	}

	paid, err := u.repo.MarkPaid(ctx, inv.ID, created.ID, now)
	if err != nil {
		return entities.Invoice{}, entities.Payment{}, err
	}
	if paid.ID == "" {
		u.log.Error("invoice settled twice", zap.String("invoice_id", inv.InvoiceID), zap.String("payment_id", created.ID))
		return entities.Invoice{}, entities.Payment{}, ErrInvoiceAlreadyPaid
	}
	u.log.Info("invoice paid", zap.String("invoice_id", paid.InvoiceID), zap.String("payment_id", created.ID))
	return paid, created, nil
}

// claimConflict explains a lost claim: the invoice is either settled or
// held by another attempt.
func (u *InvoiceUseCase) claimConflict(ctx context.Context, inv entities.Invoice) error {
	current, err := u.repo.GetByID(ctx, inv.ID)
	if err != nil {
		return err
	}
	if current.Status == entities.InvoiceStatusPaid {
		return ErrInvoiceAlreadyPaid
	}
	u.log.Warn("payment already in progress", zap.String("invoice_id", inv.InvoiceID))
	return ErrPaymentInProgress
}

func (u *InvoiceUseCase) release(ctx context.Context, inv entities.Invoice, claim string) {
	if err := u.repo.ReleasePaymentClaim(ctx, inv.ID, claim); err != nil {
		u.log.Warn("payment claim release failed", zap.String("invoice_id", inv.InvoiceID), zap.Error(err))
	}
}

// paymentRequest builds the provider payload. The invoice is the source of
// truth for the amount and the reconciliation reference.
func (u *InvoiceUseCase) paymentRequest(inv entities.Invoice, payload json.RawMessage) (json.RawMessage, error) {
	if len(payload) == 0 || !json.Valid(payload) {
		if !u.opts.Mock {
			return nil, ErrInvalidPaymentPayload
		}
		payload = json.RawMessage("{}")
	}

	var req map[string]any
	if err := json.Unmarshal(payload, &req); err != nil || req == nil {
		if !u.opts.Mock {
			return nil, ErrInvalidPaymentPayload
		}
		req = map[string]any{}
	}
	if !u.opts.Mock {
		if !hasNonEmptyString(req, "payment_method_id") {
			return nil, ErrInvalidPaymentPayload
		}
		ensurePayerDefaults(req, u.opts.SandboxPayerEmail)
		if !hasPayer(req) {
			return nil, ErrInvalidPaymentPayload
		}
	}

	if _, ok := req["external_reference"]; !ok {
		req["external_reference"] = inv.InvoiceID
	}
	if _, ok := req["description"]; !ok {
		req["description"] = fmt.Sprintf("Invoice %s", inv.InvoiceID)
	}
	req["transaction_amount"] = inv.Total.InexactFloat64()
	return json.Marshal(req)
}

func (u *InvoiceUseCase) ListPayments(ctx context.Context, p entities.Principal, invoiceID string) ([]entities.Payment, error) {
	if err := authorize(p, entities.RoleFinance); err != nil {
		return nil, err
	}
	inv, err := u.find(ctx, invoiceID)
	if err != nil {
		return nil, err
	}
	return u.payments.ListByInvoiceID(ctx, inv.InvoiceID)
}

func (u *InvoiceUseCase) GetPayment(ctx context.Context, p entities.Principal, id string) (entities.Payment, error) {
	if err := authorize(p, entities.RoleFinance); err != nil {
		return entities.Payment{}, err
	}
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	payment, err := u.payments.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if payment.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return payment, nil
}

// find resolves an invoice by store key or INV business id.
func (u *InvoiceUseCase) find(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, ErrInvalidInvoiceID
	}
	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		if inv, err = u.repo.GetByInvoiceID(ctx, id); err != nil {
			return entities.Invoice{}, err
		}
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func paymentStatus(providerStatus string) entities.PaymentStatus {
	switch strings.ToLower(strings.TrimSpace(providerStatus)) {
	case "approved":
		return entities.PaymentStatusApproved
	case "rejected", "cancelled", "refunded", "charged_back":
		return entities.PaymentStatusDenied
	}
	return entities.PaymentStatusPending
}

func hasNonEmptyString(m map[string]any, key string) bool {
	v, ok := m[key]
	if !ok {
		return false
	}
	s, ok := v.(string)
	if !ok {
		return false
	}
	return strings.TrimSpace(s) != ""
}

func hasPayer(m map[string]any) bool {
	v, ok := m["payer"]
	if !ok {
		return false
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return false
	}
	return hasNonEmptyString(payer, "email") || hasPayerID(payer)
}

func hasPayerID(payer map[string]any) bool {
	v, ok := payer["id"]
	if !ok || v == nil {
		return false
	}
	s := strings.TrimSpace(fmt.Sprintf("%v", v))
	return s != "" && s != "<nil>"
}

// ensurePayerDefaults fills payer.type and, when neither payer id nor email
// is present, the sandbox payer email.
func ensurePayerDefaults(m map[string]any, sandboxEmail string) {
	v, ok := m["payer"]
	if !ok || v == nil {
		v = map[string]any{}
		m["payer"] = v
	}
	payer, ok := v.(map[string]any)
	if !ok {
		return
	}
	if _, ok := payer["type"]; !ok {
		payer["type"] = "customer"
	}
	if !hasPayerID(payer) && !hasNonEmptyString(payer, "email") && strings.TrimSpace(sandboxEmail) != "" {
		payer["email"] = strings.TrimSpace(sandboxEmail)
	}
}

func classifyGatewayError(err error) error {
	msg := strings.ToLower(err.Error())
	switch {
	case strings.Contains(msg, "customer not found") || strings.Contains(msg, "\"code\":2002"):
		return ErrPaymentGatewayCustomerNotFound
	case strings.Contains(msg, "invalid users involved") || strings.Contains(msg, "\"code\":2034"):
		return ErrPaymentGatewayInvalidUsers
	case strings.Contains(msg, "\"error\":\"unauthorized\"") || strings.Contains(msg, "\"status\":401"):
		return ErrPaymentGatewayUnauthorized
	case strings.Contains(msg, "\"error\":\"bad_request\"") || strings.Contains(msg, "\"status\":400"):
		return ErrPaymentGatewayBadRequest
	}
	return err
}
