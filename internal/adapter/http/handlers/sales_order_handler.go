package handlers

import (
	"errors"
	"net/http"
	"strings"

	response "rental_backend/internal/adapter/http/dto/response"
	"rental_backend/internal/domain/entities"
	"rental_backend/internal/usecase"
	"rental_backend/pkg"

	"github.com/gin-gonic/gin"
)

type SalesOrderHandler struct {
	usecase usecase.ISalesOrderUseCase
}

func NewSalesOrderHandler(uc usecase.ISalesOrderUseCase) *SalesOrderHandler {
	return &SalesOrderHandler{usecase: uc}
}

func (h *SalesOrderHandler) List(c *gin.Context) {
	status := entities.SalesOrderStatus(strings.TrimSpace(c.Query("status")))
	orders, err := h.usecase.List(c.Request.Context(), principal(c), status)
	if err != nil {
		appErr := mapSalesOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.List(orders))
}

func (h *SalesOrderHandler) Get(c *gin.Context) {
	so, err := h.usecase.Get(c.Request.Context(), principal(c), c.Param("id"))
	if err != nil {
		appErr := mapSalesOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, so)
}

// CheckStock compares the order against available inventory. Nothing is
// reserved.
func (h *SalesOrderHandler) CheckStock(c *gin.Context) {
	so, report, err := h.usecase.CheckStock(c.Request.Context(), principal(c), c.Param("id"))
	if err != nil {
		appErr := mapSalesOrderError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.StockCheckResponse{SalesOrder: so, Report: report})
}

func mapSalesOrderError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrSalesOrderNotFound):
		return pkg.NewDomainErrorSimple("SALES_ORDER_NOT_FOUND", "Sales order not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidSalesOrderID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.FromError(err)
	}
}
