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

var errInvalidContractPayload = pkg.NewDomainErrorSimple("INVALID_CONTRACT_INPUT", "Invalid contract payload", http.StatusBadRequest)

// ContractHandler handles contract requests and the admin approval that
// issues the invoice.
type ContractHandler struct {
	usecase usecase.IContractUseCase
}

func NewContractHandler(uc usecase.IContractUseCase) *ContractHandler {
	return &ContractHandler{usecase: uc}
}

func (h *ContractHandler) Request(c *gin.Context) {
	var payload request.ContractRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c, errInvalidContractPayload, err)
		return
	}
	start, end, err := payload.Dates()
	if err != nil {
		invalidPayload(c, errInvalidContractPayload, err)
		return
	}

	created, err := h.usecase.Request(c.Request.Context(), principal(c), usecase.ContractRequest{
		SalesOrderID: strings.TrimSpace(payload.SalesOrderID),
		StartDate:    start,
		EndDate:      end,
		Amount:       payload.Amount,
	})
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, created)
}

// Approve activates the contract and returns the invoice it produced.
// Repeating it returns the same invoice.
func (h *ContractHandler) Approve(c *gin.Context) {
	contract, inv, err := h.usecase.Approve(c.Request.Context(), principal(c), c.Param("id"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.ContractApprovalResponse{
		Message:  "Contract approved and invoice " + inv.InvoiceID + " generated",
		Contract: contract,
		Invoice:  inv,
	})
}

func (h *ContractHandler) Reject(c *gin.Context) {
	var payload request.RejectRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		invalidPayload(c, errInvalidContractPayload, err)
		return
	}

	rejected, err := h.usecase.Reject(c.Request.Context(), principal(c), c.Param("id"), payload.Reason)
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, rejected)
}

func (h *ContractHandler) List(c *gin.Context) {
	approval := entities.ApprovalStatus(strings.TrimSpace(c.Query("approval_status")))
	contracts, err := h.usecase.List(c.Request.Context(), principal(c), approval)
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.List(contracts))
}

func (h *ContractHandler) Get(c *gin.Context) {
	contract, err := h.usecase.Get(c.Request.Context(), principal(c), c.Param("id"))
	if err != nil {
		appErr := mapContractError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, contract)
}

func mapContractError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrContractNotFound):
		return pkg.NewDomainErrorSimple("CONTRACT_NOT_FOUND", "Contract not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSalesOrderNotFound):
		return pkg.NewDomainErrorSimple("SALES_ORDER_NOT_FOUND", "Sales order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrContractAlreadyExists):
		return pkg.NewDomainError("CONTRACT_ALREADY_EXISTS", "A contract already exists for this sales order", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrContractAlreadyApproved), errors.Is(err, usecase.ErrContractAlreadyRejected):
		return pkg.NewDomainError("CONTRACT_STATUS_CONFLICT", err.Error(), err, http.StatusConflict)
	default:
		return pkg.FromError(err)
	}
}
