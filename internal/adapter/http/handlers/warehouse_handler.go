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

var errInvalidWarehousePayload = pkg.NewDomainErrorSimple("INVALID_WAREHOUSE_INPUT", "Invalid warehouse payload", http.StatusBadRequest)

// WarehouseHandler handles order dispatches and returns.
type WarehouseHandler struct {
	usecase usecase.IWarehouseUseCase
}

func NewWarehouseHandler(uc usecase.IWarehouseUseCase) *WarehouseHandler {
	return &WarehouseHandler{usecase: uc}
}

// DispatchSalesOrder sends a released sales order out. Dispatching an order
// twice returns the existing dispatch.
func (h *WarehouseHandler) DispatchSalesOrder(c *gin.Context) {
	var payload request.OrderDispatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c, errInvalidWarehousePayload, err)
		return
	}

	so, d, err := h.usecase.DispatchSalesOrder(c.Request.Context(), principal(c), strings.TrimSpace(payload.SalesOrderID))
	if err != nil {
		appErr := mapWarehouseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.OrderDispatchResponse{SalesOrder: so, Dispatch: d})
}

func (h *WarehouseHandler) ListDispatches(c *gin.Context) {
	status := entities.OrderDispatchStatus(strings.TrimSpace(c.Query("status")))
	dispatches, err := h.usecase.ListDispatches(c.Request.Context(), principal(c), status)
	if err != nil {
		appErr := mapWarehouseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.List(dispatches))
}

func (h *WarehouseHandler) GetDispatch(c *gin.Context) {
	d, err := h.usecase.GetDispatch(c.Request.Context(), principal(c), c.Param("id"))
	if err != nil {
		appErr := mapWarehouseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, d)
}

// AdvanceDispatch moves a dispatch one step: pending, in_transit, delivered.
func (h *WarehouseHandler) AdvanceDispatch(c *gin.Context) {
	d, err := h.usecase.AdvanceDispatch(c.Request.Context(), principal(c), c.Param("id"))
	if err != nil {
		appErr := mapWarehouseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, d)
}

func (h *WarehouseHandler) ProcessReturn(c *gin.Context) {
	var payload request.ReturnRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c, errInvalidWarehousePayload, err)
		return
	}
	cmd := payload.ToCommand("")
	if cmd.EquipmentID == "" {
		invalidPayload(c, errInvalidWarehousePayload, errors.New("equipment_id is required"))
		return
	}

	e, ret, err := h.usecase.ProcessReturn(c.Request.Context(), principal(c), cmd)
	if err != nil {
		appErr := mapWarehouseError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.EquipmentReturnResponse{Equipment: e, Return: ret})
}

func mapWarehouseError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrSalesOrderNotFound):
		return pkg.NewDomainErrorSimple("SALES_ORDER_NOT_FOUND", "Sales order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOrderDispatchNotFound):
		return pkg.NewDomainErrorSimple("DISPATCH_NOT_FOUND", "Dispatch not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSalesOrderNotDispatchable):
		return pkg.NewDomainError("SALES_ORDER_NOT_DISPATCHABLE", err.Error(), err, http.StatusConflict)
	case errors.Is(err, usecase.ErrDispatchAlreadyDelivered), errors.Is(err, usecase.ErrDispatchStatusChanged):
		return pkg.NewDomainError("DISPATCH_STATUS_CONFLICT", err.Error(), err, http.StatusConflict)
	default:
		return mapInventoryError(err)
	}
}
