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

var errInvalidEnquiryPayload = pkg.NewDomainErrorSimple("INVALID_ENQUIRY_INPUT", "Invalid enquiry payload", http.StatusBadRequest)

// EnquiryHandler serves customer enquiries and rentals.
type EnquiryHandler struct {
	usecase usecase.IEnquiryUseCase
}

func NewEnquiryHandler(uc usecase.IEnquiryUseCase) *EnquiryHandler {
	return &EnquiryHandler{usecase: uc}
}

func (h *EnquiryHandler) Create(c *gin.Context) {
	var payload request.EnquiryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c, errInvalidEnquiryPayload, err)
		return
	}
	in, err := payload.ToEntity()
	if err != nil {
		invalidPayload(c, errInvalidEnquiryPayload, err)
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), principal(c), in)
	if err != nil {
		appErr := mapEnquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *EnquiryHandler) List(c *gin.Context) {
	status := entities.EnquiryStatus(strings.TrimSpace(c.Query("status")))
	enquiries, err := h.usecase.List(c.Request.Context(), principal(c), status)
	if err != nil {
		appErr := mapEnquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.List(enquiries))
}

func (h *EnquiryHandler) Get(c *gin.Context) {
	e, err := h.usecase.Get(c.Request.Context(), principal(c), c.Param("id"))
	if err != nil {
		appErr := mapEnquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, e)
}

// UpdateStatus moves an enquiry and optionally assigns a salesperson.
func (h *EnquiryHandler) UpdateStatus(c *gin.Context) {
	var payload request.EnquiryStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c, errInvalidEnquiryPayload, err)
		return
	}

	updated, err := h.usecase.UpdateStatus(
		c.Request.Context(),
		principal(c),
		c.Param("id"),
		entities.EnquiryStatus(strings.TrimSpace(payload.Status)),
		strings.TrimSpace(payload.AssignedSalespersonID),
		strings.TrimSpace(payload.AssignedSalespersonName),
	)
	if err != nil {
		appErr := mapEnquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, updated)
}

// Extend pushes the end date of an active rental.
func (h *EnquiryHandler) Extend(c *gin.Context) {
	var payload request.ExtendRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c, errInvalidEnquiryPayload, err)
		return
	}
	endDate, err := request.ParseDate(payload.EndDate)
	if err != nil {
		invalidPayload(c, errInvalidEnquiryPayload, err)
		return
	}

	extended, err := h.usecase.Extend(c.Request.Context(), principal(c), c.Param("id"), endDate, payload.Reason)
	if err != nil {
		appErr := mapEnquiryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, extended)
}

func mapEnquiryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEnquiryNotFound):
		return pkg.NewDomainErrorSimple("ENQUIRY_NOT_FOUND", "Enquiry not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidEnquiryID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrEnquiryNotExtendable):
		return pkg.NewDomainErrorSimple("ENQUIRY_NOT_EXTENDABLE", err.Error(), http.StatusConflict)
	default:
		return pkg.FromError(err)
	}
}
