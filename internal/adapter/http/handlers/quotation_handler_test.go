package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"rental_backend/internal/adapter/http/handlers/mocks"
	"rental_backend/internal/domain/entities"
	"rental_backend/internal/usecase"
	"rental_backend/pkg"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"go.uber.org/mock/gomock"
)

const quotationBody = `{
	"customerName": "Alice Buyer",
	"company": "Buyer LLC",
	"items": [{"equipment": "Steel Prop", "quantity": 10, "subtotal": 9000, "wastageCharges": 600, "cuttingCharges": 400, "total": 10000}],
	"totalAmount": 10000
}`

func TestQuotationHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := newRouter(salesUser)
		r.POST("/v1/quotations", h.Create)

		w := serve(r, http.MethodPost, "/v1/quotations", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing items", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := newRouter(salesUser)
		r.POST("/v1/quotations", h.Create)

		w := serve(r, http.MethodPost, "/v1/quotations", `{"customerName":"Alice","items":[]}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("arithmetic errors carry details", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := newRouter(salesUser)
		r.POST("/v1/quotations", h.Create)

		uc.EXPECT().Create(gomock.Any(), salesUser, gomock.Any()).
			Return(entities.Quotation{}, pkg.NewValidationError("items[0].total must equal subtotal + wastageCharges + cuttingCharges"))

		w := serve(r, http.MethodPost, "/v1/quotations", quotationBody)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
		var body pkg.HTTPError
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body.Details) != 1 {
			t.Fatalf("expected one detail, got %s", w.Body.String())
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := newRouter(salesUser)
		r.POST("/v1/quotations", h.Create)

		uc.EXPECT().Create(gomock.Any(), salesUser, gomock.Any()).
			DoAndReturn(func(_ context.Context, _ entities.Principal, q entities.Quotation) (entities.Quotation, error) {
				if len(q.Items) != 1 || !q.Items[0].Total.Equal(decimal.NewFromInt(10000)) {
					t.Fatalf("unexpected items: %+v", q.Items)
				}
				q.QuotationID = "QT-2026-0001"
				q.Status = entities.QuotationStatusDraft
				return q, nil
			})

		w := serve(r, http.MethodPost, "/v1/quotations", quotationBody)
		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["quotation_id"] != "QT-2026-0001" || body["status"] != "draft" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestQuotationHandler_Approve(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success returns the sales order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := newRouter(adminUser)
		r.POST("/v1/quotations/:id/approve", h.Approve)

		uc.EXPECT().Approve(gomock.Any(), adminUser, "QT-2026-0001").Return(
			entities.Quotation{QuotationID: "QT-2026-0001", Status: entities.QuotationStatusApproved, SalesOrderID: "SO-2026-0001"},
			entities.SalesOrder{SalesOrderID: "SO-2026-0001", Status: entities.SalesOrderStatusApproved},
			nil,
		)

		w := serve(r, http.MethodPost, "/v1/quotations/QT-2026-0001/approve", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			SalesOrder map[string]any `json:"sales_order"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.SalesOrder["sales_order_id"] != "SO-2026-0001" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("not sent", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := newRouter(adminUser)
		r.POST("/v1/quotations/:id/approve", h.Approve)

		uc.EXPECT().Approve(gomock.Any(), adminUser, "QT-2026-0001").Return(entities.Quotation{}, entities.SalesOrder{}, usecase.ErrQuotationNotSent)

		w := serve(r, http.MethodPost, "/v1/quotations/QT-2026-0001/approve", "")
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("sales cannot approve", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := newRouter(salesUser)
		r.POST("/v1/quotations/:id/approve", h.Approve)

		uc.EXPECT().Approve(gomock.Any(), salesUser, "QT-2026-0001").Return(entities.Quotation{}, entities.SalesOrder{}, usecase.ErrRoleNotAllowed)

		w := serve(r, http.MethodPost, "/v1/quotations/QT-2026-0001/approve", "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})
}

func TestQuotationHandler_RejectAndSend(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("reject without body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := newRouter(adminUser)
		r.POST("/v1/quotations/:id/reject", h.Reject)

		uc.EXPECT().Reject(gomock.Any(), adminUser, "QT-2026-0001", "").Return(entities.Quotation{Status: entities.QuotationStatusRejected}, nil)

		w := serve(r, http.MethodPost, "/v1/quotations/QT-2026-0001/reject", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("reject with reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := newRouter(adminUser)
		r.POST("/v1/quotations/:id/reject", h.Reject)

		uc.EXPECT().Reject(gomock.Any(), adminUser, "QT-2026-0001", "too expensive").Return(entities.Quotation{Status: entities.QuotationStatusRejected}, nil)

		w := serve(r, http.MethodPost, "/v1/quotations/QT-2026-0001/reject", `{"reason":"too expensive"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("send unknown quotation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := newRouter(salesUser)
		r.POST("/v1/quotations/:id/send", h.Send)

		uc.EXPECT().Send(gomock.Any(), salesUser, "QT-2026-0404").Return(entities.Quotation{}, usecase.ErrQuotationNotFound)

		w := serve(r, http.MethodPost, "/v1/quotations/QT-2026-0404/send", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("update of a sent quotation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuotationUseCase(ctrl)
		h := NewQuotationHandler(uc)

		r := newRouter(salesUser)
		r.PUT("/v1/quotations/:id", h.Update)

		uc.EXPECT().Update(gomock.Any(), salesUser, "QT-2026-0001", gomock.Any()).Return(entities.Quotation{}, usecase.ErrQuotationNotDraft)

		w := serve(r, http.MethodPut, "/v1/quotations/QT-2026-0001", quotationBody)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})
}

func TestMapQuotationError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrQuotationNotFound, http.StatusNotFound},
		{usecase.ErrEnquiryNotFound, http.StatusNotFound},
		{usecase.ErrInvalidQuotationID, http.StatusBadRequest},
		{usecase.ErrInvalidQuotationStatus, http.StatusBadRequest},
		{usecase.ErrQuotationNotDraft, http.StatusConflict},
		{usecase.ErrQuotationNotSent, http.StatusConflict},
		{usecase.ErrQuotationAlreadyApproved, http.StatusConflict},
		{usecase.ErrQuotationAlreadyRejected, http.StatusConflict},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapQuotationError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
