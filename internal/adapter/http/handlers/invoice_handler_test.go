package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"rental_backend/internal/adapter/http/handlers/mocks"
	"rental_backend/internal/domain/entities"
	"rental_backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type failingReadCloser struct{}

func (failingReadCloser) Read(_ []byte) (int, error) { return 0, errors.New("read error") }
func (failingReadCloser) Close() error               { return nil }

func TestInvoiceHandler_Pay(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc, false, zap.NewNop())

		r := newRouter(financeUser)
		r.POST("/v1/invoices/:id/pay", h.Pay)

		w := serve(r, http.MethodPost, "/v1/invoices/INV-2026-0001/pay", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("invalid payload in mock mode falls back to empty", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc, true, zap.NewNop())

		r := newRouter(financeUser)
		r.POST("/v1/invoices/:id/pay", h.Pay)

		uc.EXPECT().Pay(gomock.Any(), financeUser, "INV-2026-0001", json.RawMessage("{}")).
			Return(entities.Invoice{InvoiceID: "INV-2026-0001", Status: entities.InvoiceStatusPaid}, entities.Payment{ID: "pay-1", Status: entities.PaymentStatusApproved}, nil)

		w := serve(r, http.MethodPost, "/v1/invoices/INV-2026-0001/pay", "{")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("usecase mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc, false, zap.NewNop())

		r := newRouter(financeUser)
		r.POST("/v1/invoices/:id/pay", h.Pay)

		uc.EXPECT().Pay(gomock.Any(), financeUser, "INV-2026-0001", gomock.Any()).
			Return(entities.Invoice{}, entities.Payment{}, usecase.ErrInvoiceAlreadyPaid)

		w := serve(r, http.MethodPost, "/v1/invoices/INV-2026-0001/pay", `{"payment_method_id":"visa","payer":{"email":"x@test.com"}}`)
		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("forbidden role", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc, false, zap.NewNop())

		r := newRouter(salesUser)
		r.POST("/v1/invoices/:id/pay", h.Pay)

		uc.EXPECT().Pay(gomock.Any(), salesUser, "INV-2026-0001", gomock.Any()).
			Return(entities.Invoice{}, entities.Payment{}, usecase.ErrRoleNotAllowed)

		w := serve(r, http.MethodPost, "/v1/invoices/INV-2026-0001/pay", "")
		if w.Code != http.StatusForbidden {
			t.Fatalf("expected 403, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc, false, zap.NewNop())

		r := newRouter(financeUser)
		r.POST("/v1/invoices/:id/pay", h.Pay)

		now := time.Now().UTC()
		uc.EXPECT().Pay(gomock.Any(), financeUser, "INV-2026-0001", json.RawMessage(`{"payment_method_id":"visa"}`)).
			Return(
				entities.Invoice{InvoiceID: "INV-2026-0001", Status: entities.InvoiceStatusPaid, PaymentID: "pay-1"},
				entities.Payment{ID: "pay-1", InvoiceID: "inv-1", Date: now, Status: entities.PaymentStatusApproved},
				nil,
			)

		w := serve(r, http.MethodPost, "/v1/invoices/INV-2026-0001/pay", `{"mp_payload":{"payment_method_id":"visa"}}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Invoice map[string]any `json:"invoice"`
			Payment map[string]any `json:"payment"`
		}
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body.Payment["payment_id"] != "pay-1" || body.Invoice["status"] != "paid" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestInvoiceHandler_Reads(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("list passes status filter", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc, false, zap.NewNop())

		r := newRouter(financeUser)
		r.GET("/v1/invoices", h.List)

		uc.EXPECT().List(gomock.Any(), financeUser, entities.InvoiceStatusOverdue).Return(nil, nil)

		w := serve(r, http.MethodGet, "/v1/invoices?status=overdue", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if w.Body.String() != "[]" {
			t.Fatalf("expected empty list, got %s", w.Body.String())
		}
	})

	t.Run("invalid status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc, false, zap.NewNop())

		r := newRouter(financeUser)
		r.GET("/v1/invoices", h.List)

		uc.EXPECT().List(gomock.Any(), financeUser, entities.InvoiceStatus("void")).Return(nil, usecase.ErrInvalidInvoiceStatus)

		w := serve(r, http.MethodGet, "/v1/invoices?status=void", "")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("get not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc, false, zap.NewNop())

		r := newRouter(financeUser)
		r.GET("/v1/invoices/:id", h.Get)

		uc.EXPECT().Get(gomock.Any(), financeUser, "INV-2026-0404").Return(entities.Invoice{}, usecase.ErrInvoiceNotFound)

		w := serve(r, http.MethodGet, "/v1/invoices/INV-2026-0404", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("payments of an invoice", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIInvoiceUseCase(ctrl)
		h := NewInvoiceHandler(uc, false, zap.NewNop())

		r := newRouter(financeUser)
		r.GET("/v1/invoices/:id/payments", h.ListPayments)
		r.GET("/v1/payments/:id", h.GetPayment)

		uc.EXPECT().ListPayments(gomock.Any(), financeUser, "INV-2026-0001").Return([]entities.Payment{{ID: "pay-1"}, {ID: "pay-2"}}, nil)
		uc.EXPECT().GetPayment(gomock.Any(), financeUser, "pay-9").Return(entities.Payment{}, usecase.ErrPaymentNotFound)

		w := serve(r, http.MethodGet, "/v1/invoices/INV-2026-0001/payments", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var list []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &list)
		if len(list) != 2 || list[1]["payment_id"] != "pay-2" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}

		w = serve(r, http.MethodGet, "/v1/payments/pay-9", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestReadPayload(t *testing.T) {
	gin.SetMode(gin.TestMode)

	makeCtx := func(raw string) *gin.Context {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewBufferString(raw))
		c.Request.Header.Set("Content-Type", "application/json")
		return c
	}

	ctxReadErr := makeCtx("{}")
	ctxReadErr.Request.Body = failingReadCloser{}
	if _, err := readPayload(ctxReadErr); err == nil {
		t.Fatalf("expected read body error")
	}

	if _, err := readPayload(makeCtx("{invalid")); err == nil {
		t.Fatalf("expected invalid json error")
	}

	payload, err := readPayload(makeCtx("   "))
	if err != nil || string(payload) != "{}" {
		t.Fatalf("expected {}, got payload=%s err=%v", string(payload), err)
	}

	if _, err := readPayload(makeCtx(`{"mp_payload":null}`)); err == nil {
		t.Fatalf("expected mp_payload empty error")
	}

	payload, err = readPayload(makeCtx(`{"mp_payload":{"a":1}}`))
	if err != nil || string(payload) != `{"a":1}` {
		t.Fatalf("expected wrapped payload, got %s err=%v", payload, err)
	}

	payload, err = readPayload(makeCtx(`{"payment_method_id":"visa"}`))
	if err != nil || string(payload) != `{"payment_method_id":"visa"}` {
		t.Fatalf("expected raw body payload, got %s err=%v", payload, err)
	}
}

func TestMapInvoiceError(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{usecase.ErrInvalidPaymentPayload, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayBadRequest, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayCustomerNotFound, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayInvalidUsers, http.StatusBadRequest},
		{usecase.ErrPaymentGatewayUnauthorized, http.StatusBadGateway},
		{usecase.ErrInvoiceNotFound, http.StatusNotFound},
		{usecase.ErrInvoiceAlreadyPaid, http.StatusConflict},
		{usecase.ErrPaymentNotFound, http.StatusNotFound},
		{usecase.ErrUnauthenticated, http.StatusUnauthorized},
		{usecase.ErrRoleNotAllowed, http.StatusForbidden},
		{errors.New("other"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := mapInvoiceError(tc.err)
		if got.HTTPStatus != tc.code {
			t.Fatalf("for err %v expected %d got %d", tc.err, tc.code, got.HTTPStatus)
		}
	}
}
