package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"rental_backend/internal/adapter/http/handlers/mocks"
	"rental_backend/internal/domain/entities"
	"rental_backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestSalesOrderHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("check stock", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISalesOrderUseCase(ctrl)
		h := NewSalesOrderHandler(uc)

		r := newRouter(warehouseUser)
		r.POST("/v1/sales-orders/:id/check-stock", h.CheckStock)

		uc.EXPECT().CheckStock(gomock.Any(), warehouseUser, "SO-2026-0001").Return(
			entities.SalesOrder{SalesOrderID: "SO-2026-0001", StockChecked: true},
			entities.StockReport{SalesOrderID: "SO-2026-0001", StockAvailable: false, Lines: []entities.StockLine{
				{Equipment: "Steel Prop", Requested: 10, Available: 4},
			}},
			nil,
		)

		w := serve(r, http.MethodPost, "/v1/sales-orders/SO-2026-0001/check-stock", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Report entities.StockReport `json:"report"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Report.StockAvailable || len(body.Report.Lines) != 1 {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISalesOrderUseCase(ctrl)
		h := NewSalesOrderHandler(uc)

		r := newRouter(salesUser)
		r.GET("/v1/sales-orders/:id", h.Get)

		uc.EXPECT().Get(gomock.Any(), salesUser, "SO-2026-0404").Return(entities.SalesOrder{}, usecase.ErrSalesOrderNotFound)

		w := serve(r, http.MethodGet, "/v1/sales-orders/SO-2026-0404", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("list by status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockISalesOrderUseCase(ctrl)
		h := NewSalesOrderHandler(uc)

		r := newRouter(salesUser)
		r.GET("/v1/sales-orders", h.List)

		uc.EXPECT().List(gomock.Any(), salesUser, entities.SalesOrderStatusApproved).
			Return([]entities.SalesOrder{{SalesOrderID: "SO-2026-0001"}}, nil)

		w := serve(r, http.MethodGet, "/v1/sales-orders?status=approved", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestMapSalesOrderError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrSalesOrderNotFound, http.StatusNotFound},
		{usecase.ErrInvalidSalesOrderID, http.StatusBadRequest},
		{usecase.ErrInvalidSalesOrderStatus, http.StatusBadRequest},
		{usecase.ErrUnauthenticated, http.StatusUnauthorized},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapSalesOrderError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
