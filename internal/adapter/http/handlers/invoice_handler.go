package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	response "rental_backend/internal/adapter/http/dto/response"
	"rental_backend/internal/domain/entities"
	"rental_backend/internal/usecase"
	"rental_backend/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// InvoiceHandler handles HTTP requests for invoices and their payments.
type InvoiceHandler struct {
	usecase  usecase.IInvoiceUseCase
	mockMode bool
	log      *zap.Logger
}

// NewInvoiceHandler builds the handler. In mock mode an unreadable payment
// payload falls back to an empty one.
func NewInvoiceHandler(uc usecase.IInvoiceUseCase, mockMode bool, log *zap.Logger) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc, mockMode: mockMode, log: log}
}

func (h *InvoiceHandler) List(c *gin.Context) {
	status := entities.InvoiceStatus(strings.TrimSpace(c.Query("status")))
	invoices, err := h.usecase.List(c.Request.Context(), principal(c), status)
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.List(invoices))
}

func (h *InvoiceHandler) Get(c *gin.Context) {
	inv, err := h.usecase.Get(c.Request.Context(), principal(c), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, inv)
}

// Pay charges the invoice total through the payment gateway.
//
// @Summary      Pay an invoice
// @Tags         invoices
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        id    path      string                          true   "Invoice id"
// @Param        body  body      request.InvoicePaymentRequest   false  "Mercado Pago payload, bare or wrapped in mp_payload"
// @Success      200   {object}  response.InvoicePaymentResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      409   {object}  pkg.HTTPError
// @Router       /invoices/{id}/pay [post]
func (h *InvoiceHandler) Pay(c *gin.Context) {
	invoiceID := c.Param("id")
	log := h.log.With(zap.String("invoice_id", invoiceID))
	log.Debug("pay start")

	mpPayload, err := readPayload(c)
	if err != nil {
		if h.mockMode {
			log.Info("payload invalid in mock mode; using empty payload", zap.Error(err))
			mpPayload = json.RawMessage("{}")
		} else {
			log.Warn("invalid payment payload", zap.Error(err))
			c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
			return
		}
	}

	inv, payment, err := h.usecase.Pay(c.Request.Context(), principal(c), invoiceID, mpPayload)
	if err != nil {
		log.Warn("pay failed", zap.Error(err))
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Info("pay finished", zap.String("payment_id", payment.ID), zap.String("status", string(payment.Status)))

	c.JSON(http.StatusOK, response.InvoicePaymentResponse{Invoice: inv, Payment: response.FromPayment(payment)})
}

func (h *InvoiceHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.ListPayments(c.Request.Context(), principal(c), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayments(payments))
}

func (h *InvoiceHandler) GetPayment(c *gin.Context) {
	payment, err := h.usecase.GetPayment(c.Request.Context(), principal(c), c.Param("id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromPayment(payment))
}

// readPayload returns the provider payload of a payment request. The body
// may be empty, a bare provider payload, or wrapped in "mp_payload".
func readPayload(c *gin.Context) (json.RawMessage, error) {
	raw, err := c.GetRawData()
	if err != nil {
		return nil, err
	}
	if len(strings.TrimSpace(string(raw))) == 0 {
		return json.RawMessage("{}"), nil
	}
	if !json.Valid(raw) {
		return nil, errors.New("request body is not valid json")
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err == nil {
		if wrapped, ok := envelope["mp_payload"]; ok {
			if len(strings.TrimSpace(string(wrapped))) == 0 || strings.TrimSpace(string(wrapped)) == "null" {
				return nil, errors.New("mp_payload cannot be empty")
			}
			return wrapped, nil
		}
	}

	return json.RawMessage(raw), nil
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidPaymentPayload), errors.Is(err, usecase.ErrPaymentGatewayBadRequest):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayCustomerNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_CUSTOMER_NOT_FOUND", "Payer not found for this Mercado Pago test context", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayInvalidUsers):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_INVALID_USERS", "Invalid users involved between seller token and payer test user", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPaymentGatewayUnauthorized):
		return pkg.NewDomainErrorSimple("PAYMENT_PROVIDER_UNAUTHORIZED", "Payment provider unauthorized", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceAlreadyPaid):
		return pkg.NewDomainErrorSimple("INVOICE_ALREADY_PAID", "Invoice already paid", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentInProgress):
		return pkg.NewDomainErrorSimple("PAYMENT_IN_PROGRESS", "A payment for this invoice is already in progress", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	default:
		return pkg.FromError(err)
	}
}
