package handlers

import (
	"errors"
	"net/http"
	"path"
	"strings"

	request "rental_backend/internal/adapter/http/dto/request"
	response "rental_backend/internal/adapter/http/dto/response"
	"rental_backend/internal/domain/entities"
	"rental_backend/internal/usecase"
	"rental_backend/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidLeadPayload = pkg.NewDomainErrorSimple("INVALID_LEAD_INPUT", "Invalid lead payload", http.StatusBadRequest)

// LeadHandler serves the CRM view of enquiries.
type LeadHandler struct {
	usecase usecase.ILeadUseCase
}

func NewLeadHandler(uc usecase.ILeadUseCase) *LeadHandler {
	return &LeadHandler{usecase: uc}
}

// Sync creates the missing lead of every enquiry.
func (h *LeadHandler) Sync(c *gin.Context) {
	report, err := h.usecase.SyncLeadsForEnquiries(c.Request.Context(), principal(c))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, report)
}

func (h *LeadHandler) List(c *gin.Context) {
	status := entities.LeadStatus(strings.TrimSpace(c.Query("status")))
	leads, err := h.usecase.List(c.Request.Context(), principal(c), status)
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.List(leads))
}

func (h *LeadHandler) Get(c *gin.Context) {
	lead, err := h.usecase.Get(c.Request.Context(), principal(c), c.Param("id"))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, lead)
}

func (h *LeadHandler) UpdateStatus(c *gin.Context) {
	var payload request.LeadStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c, errInvalidLeadPayload, err)
		return
	}

	lead, err := h.usecase.UpdateStatus(c.Request.Context(), principal(c), c.Param("id"), entities.LeadStatus(strings.TrimSpace(payload.Status)))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, lead)
}

func (h *LeadHandler) Convert(c *gin.Context) {
	lead, err := h.usecase.ConvertToDeal(c.Request.Context(), principal(c), c.Param("id"))
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, lead)
}

func (h *LeadHandler) Delete(c *gin.Context) {
	if err := h.usecase.Delete(c.Request.Context(), principal(c), c.Param("id")); err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// AddInteraction logs a note, call, task or email; the kind is the last
// path segment's singular form (notes, calls, tasks, emails).
func (h *LeadHandler) AddInteraction(c *gin.Context) {
	kind, ok := interactionKind(kindSegment(c))
	if !ok {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}
	var payload request.InteractionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c, errInvalidLeadPayload, err)
		return
	}
	in, err := payload.ToEntity(kind)
	if err != nil {
		invalidPayload(c, errInvalidLeadPayload, err)
		return
	}

	created, err := h.usecase.AddInteraction(c.Request.Context(), principal(c), c.Param("id"), in)
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *LeadHandler) ListInteractions(c *gin.Context) {
	kind, ok := interactionKind(kindSegment(c))
	if !ok {
		c.JSON(errInvalidRequest.HTTPStatus, errInvalidRequest.ToHTTPError())
		return
	}

	items, err := h.usecase.ListInteractions(c.Request.Context(), principal(c), c.Param("id"), kind)
	if err != nil {
		appErr := mapLeadError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.List(items))
}

// kindSegment reads the interaction kind from the :kind param or, on the
// static routes, from the last path segment.
func kindSegment(c *gin.Context) string {
	if kind := c.Param("kind"); kind != "" {
		return kind
	}
	return path.Base(c.FullPath())
}

func interactionKind(segment string) (entities.InteractionKind, bool) {
	kind := entities.InteractionKind(strings.TrimSuffix(strings.ToLower(segment), "s"))
	return kind, kind.Valid()
}

func mapLeadError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrLeadNotFound):
		return pkg.NewDomainErrorSimple("LEAD_NOT_FOUND", "Lead not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrLeadAlreadyConverted):
		return pkg.NewDomainErrorSimple("LEAD_ALREADY_CONVERTED", "Lead already converted to a deal", http.StatusConflict)
	default:
		return pkg.FromError(err)
	}
}
