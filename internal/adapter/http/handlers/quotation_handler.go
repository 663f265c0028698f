package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "rental_backend/internal/adapter/http/dto/request"
	response "rental_backend/internal/adapter/http/dto/response"
	"rental_backend/internal/domain/entities"
	"rental_backend/internal/usecase"
	"rental_backend/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidQuotationPayload = pkg.NewDomainErrorSimple("INVALID_QUOTATION_INPUT", "Invalid quotation payload", http.StatusBadRequest)

// QuotationHandler handles HTTP requests for quotations, from draft to the
// admin decision that creates the sales order.
type QuotationHandler struct {
	usecase usecase.IQuotationUseCase
}

func NewQuotationHandler(uc usecase.IQuotationUseCase) *QuotationHandler {
	return &QuotationHandler{usecase: uc}
}

func (h *QuotationHandler) Create(c *gin.Context) {
	q, ok := bindQuotation(c)
	if !ok {
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), principal(c), q)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Update replaces the content of a draft quotation.
func (h *QuotationHandler) Update(c *gin.Context) {
	q, ok := bindQuotation(c)
	if !ok {
		return
	}

	updated, err := h.usecase.Update(c.Request.Context(), principal(c), c.Param("id"), q)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, updated)
}

func (h *QuotationHandler) Send(c *gin.Context) {
	sent, err := h.usecase.Send(c.Request.Context(), principal(c), c.Param("id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, sent)
}

// Approve records the admin decision. Repeating it returns the sales order
// created by the first approval.
func (h *QuotationHandler) Approve(c *gin.Context) {
	q, so, err := h.usecase.Approve(c.Request.Context(), principal(c), c.Param("id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.QuotationApprovalResponse{
		Message:    "Quotation approved and sales order " + so.SalesOrderID + " created",
		Quotation:  q,
		SalesOrder: so,
	})
}

func (h *QuotationHandler) Reject(c *gin.Context) {
	var payload request.RejectRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		invalidPayload(c, errInvalidQuotationPayload, err)
		return
	}

	rejected, err := h.usecase.Reject(c.Request.Context(), principal(c), c.Param("id"), payload.Reason)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, rejected)
}

func (h *QuotationHandler) List(c *gin.Context) {
	status := entities.QuotationStatus(strings.TrimSpace(c.Query("status")))
	quotations, err := h.usecase.List(c.Request.Context(), principal(c), status)
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.List(quotations))
}

func (h *QuotationHandler) Get(c *gin.Context) {
	q, err := h.usecase.Get(c.Request.Context(), principal(c), c.Param("id"))
	if err != nil {
		appErr := mapQuotationError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, q)
}

func bindQuotation(c *gin.Context) (entities.Quotation, bool) {
	var payload request.QuotationRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c, errInvalidQuotationPayload, err)
		return entities.Quotation{}, false
	}
	q, err := payload.ToEntity()
	if err != nil {
		invalidPayload(c, errInvalidQuotationPayload, err)
		return entities.Quotation{}, false
	}
	return q, true
}

// bindOptionalJSON binds the body when there is one.
func bindOptionalJSON(c *gin.Context, out any) error {
	if c.Request.ContentLength == 0 {
		return nil
	}
	return c.ShouldBindJSON(out)
}

func mapQuotationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrQuotationNotFound):
		return pkg.NewDomainErrorSimple("QUOTATION_NOT_FOUND", "Quotation not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrEnquiryNotFound):
		return pkg.NewDomainErrorSimple("ENQUIRY_NOT_FOUND", "Enquiry not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidQuotationID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuotationNotDraft),
		errors.Is(err, usecase.ErrQuotationNotSent),
		errors.Is(err, usecase.ErrQuotationAlreadyApproved),
		errors.Is(err, usecase.ErrQuotationAlreadyRejected):
		return pkg.NewDomainError("QUOTATION_STATUS_CONFLICT", err.Error(), err, http.StatusConflict)
	default:
		return pkg.FromError(err)
	}
}
