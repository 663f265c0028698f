package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	request "rental_backend/internal/adapter/http/dto/request"
	response "rental_backend/internal/adapter/http/dto/response"
	"rental_backend/internal/domain/entities"
	"rental_backend/internal/infrastructure/reports"
	"rental_backend/internal/usecase"
	"rental_backend/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var errInvalidInventoryPayload = pkg.NewDomainErrorSimple("INVALID_INVENTORY_INPUT", "Invalid inventory payload", http.StatusBadRequest)

// InventoryHandler exposes the equipment ledger.
type InventoryHandler struct {
	usecase usecase.IInventoryUseCase
	log     *zap.Logger
	now     func() time.Time
}

func NewInventoryHandler(uc usecase.IInventoryUseCase, log *zap.Logger) *InventoryHandler {
	return &InventoryHandler{usecase: uc, log: log, now: time.Now}
}

func (h *InventoryHandler) CreateEquipment(c *gin.Context) {
	var payload request.EquipmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c, errInvalidInventoryPayload, err)
		return
	}

	created, err := h.usecase.CreateEquipment(c.Request.Context(), principal(c), payload.ToEntity())
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, created)
}

func (h *InventoryHandler) ListEquipment(c *gin.Context) {
	items, err := h.usecase.ListEquipment(c.Request.Context(), principal(c))
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.List(items))
}

func (h *InventoryHandler) GetEquipment(c *gin.Context) {
	e, err := h.usecase.GetEquipment(c.Request.Context(), principal(c), c.Param("id"))
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, e)
}

func (h *InventoryHandler) History(c *gin.Context) {
	entries, err := h.usecase.History(c.Request.Context(), principal(c), c.Param("id"))
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.List(entries))
}

// Adjust applies a stock adjustment. Damage and repair requested by the
// warehouse are queued for an admin and answered with 202.
func (h *InventoryHandler) Adjust(c *gin.Context) {
	var payload request.AdjustRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c, errInvalidInventoryPayload, err)
		return
	}

	result, err := h.usecase.Adjust(c.Request.Context(), principal(c), payload.ToCommand(c.Param("id")))
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	out := response.FromAdjustment(result)
	status := http.StatusOK
	if !out.Applied {
		status = http.StatusAccepted
	}
	c.JSON(status, out)
}

func (h *InventoryHandler) ListAdjustments(c *gin.Context) {
	status := entities.PendingAdjustmentStatus(strings.TrimSpace(c.Query("status")))
	pending, err := h.usecase.ListAdjustments(c.Request.Context(), principal(c), status)
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.List(pending))
}

func (h *InventoryHandler) ApproveAdjustment(c *gin.Context) {
	result, err := h.usecase.ApproveAdjustment(c.Request.Context(), principal(c), c.Param("id"))
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAdjustment(result))
}

func (h *InventoryHandler) RejectAdjustment(c *gin.Context) {
	var payload request.RejectRequest
	if err := bindOptionalJSON(c, &payload); err != nil {
		invalidPayload(c, errInvalidInventoryPayload, err)
		return
	}

	rejected, err := h.usecase.RejectAdjustment(c.Request.Context(), principal(c), c.Param("id"), payload.Reason)
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, rejected)
}

func (h *InventoryHandler) Dispatch(c *gin.Context) {
	var payload request.DispatchRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c, errInvalidInventoryPayload, err)
		return
	}

	e, d, err := h.usecase.Dispatch(c.Request.Context(), principal(c), payload.ToCommand(c.Param("id")))
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.EquipmentDispatchResponse{Equipment: e, Dispatch: d})
}

func (h *InventoryHandler) Return(c *gin.Context) {
	var payload request.ReturnRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		invalidPayload(c, errInvalidInventoryPayload, err)
		return
	}

	e, ret, err := h.usecase.Return(c.Request.Context(), principal(c), payload.ToCommand(c.Param("id")))
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.EquipmentReturnResponse{Equipment: e, Return: ret})
}

func (h *InventoryHandler) ListDispatches(c *gin.Context) {
	dispatches, err := h.usecase.ListDispatches(c.Request.Context(), principal(c), c.Param("id"))
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.List(dispatches))
}

// ListReturns lists processed returns, optionally for one equipment item.
func (h *InventoryHandler) ListReturns(c *gin.Context) {
	equipmentID := c.Param("id")
	if equipmentID == "" {
		equipmentID = strings.TrimSpace(c.Query("equipment_id"))
	}
	returns, err := h.usecase.ListReturns(c.Request.Context(), principal(c), equipmentID)
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.List(returns))
}

func (h *InventoryHandler) Dashboard(c *gin.Context) {
	d, err := h.usecase.Dashboard(c.Request.Context(), principal(c))
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, d)
}

// ExportStock streams the stock overview as an xlsx workbook.
func (h *InventoryHandler) ExportStock(c *gin.Context) {
	items, err := h.usecase.ListEquipment(c.Request.Context(), principal(c))
	if err != nil {
		appErr := mapInventoryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	f, filename, err := reports.StockWorkbook(items, h.now())
	if err != nil {
		h.log.Error("stock workbook failed", zap.Error(err))
		appErr := pkg.FromError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	defer func() {
		if cerr := f.Close(); cerr != nil {
			h.log.Warn("close stock workbook", zap.Error(cerr))
		}
	}()

	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Header("Content-Type", xlsxContentType)
	c.Status(http.StatusOK)
	if err := f.Write(c.Writer); err != nil {
		h.log.Error("stream stock workbook", zap.Error(err))
	}
}

func mapInventoryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrEquipmentNotFound):
		return pkg.NewDomainErrorSimple("EQUIPMENT_NOT_FOUND", "Equipment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrAdjustmentNotFound):
		return pkg.NewDomainErrorSimple("ADJUSTMENT_NOT_FOUND", "Pending adjustment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrNoActiveDispatch):
		return pkg.NewDomainError("NO_ACTIVE_DISPATCH", err.Error(), err, http.StatusNotFound)
	case errors.Is(err, usecase.ErrDuplicateItemCode):
		return pkg.NewDomainError("DUPLICATE_ITEM_CODE", "Item code already exists", err, http.StatusConflict)
	case errors.Is(err, usecase.ErrAdjustmentAlreadyResolved):
		return pkg.NewDomainError("ADJUSTMENT_ALREADY_RESOLVED", err.Error(), err, http.StatusConflict)
	case errors.Is(err, pkg.ErrInsufficientQuantity):
		return pkg.NewDomainError("INSUFFICIENT_QUANTITY", err.Error(), err, http.StatusUnprocessableEntity)
	default:
		return pkg.FromError(err)
	}
}
