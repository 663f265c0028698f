package response

import (
	"encoding/json"
	"testing"
	"time"

	"rental_backend/internal/domain/entities"
	"rental_backend/internal/usecase"

	"github.com/shopspring/decimal"
)

func TestFromPayment(t *testing.T) {
	now := time.Now().UTC()
	payload := map[string]any{"a": "b"}
	raw := json.RawMessage(`{"id":123}`)

	p := entities.Payment{
		ID:                "pay-1",
		InvoiceID:         "inv-1",
		Amount:            decimal.NewFromInt(21000),
		Currency:          "AED",
		Date:              now,
		Status:            entities.PaymentStatusApproved,
		ProviderPaymentID: "123",
		ProviderRaw:       raw,
		ProviderPayload:   payload,
	}

	res := FromPayment(p)
	if res.ID != "pay-1" || res.PaymentID != "pay-1" {
		t.Fatalf("unexpected ids: %+v", res)
	}
	if res.InvoiceID != "inv-1" || res.Status != string(entities.PaymentStatusApproved) {
		t.Fatalf("unexpected fields: %+v", res)
	}
	if !res.Date.Equal(now) || !res.PaymentDate.Equal(now) {
		t.Fatalf("unexpected dates: %+v", res)
	}
	if res.ProviderRaw != string(raw) {
		t.Fatalf("unexpected raw payload: %s", res.ProviderRaw)
	}
	if res.ProviderPayload["a"] != "b" {
		t.Fatalf("unexpected parsed payload: %+v", res.ProviderPayload)
	}
	if !res.Amount.Equal(decimal.NewFromInt(21000)) {
		t.Fatalf("unexpected amount: %s", res.Amount)
	}

	if got := FromPayments(nil); got == nil || len(got) != 0 {
		t.Fatalf("expected empty slice, got %#v", got)
	}
}

func TestFromAdjustment(t *testing.T) {
	applied := FromAdjustment(usecase.AdjustmentResult{Equipment: entities.Equipment{ID: "e-1"}})
	if !applied.Applied || applied.PendingAdjustment != nil {
		t.Fatalf("expected applied adjustment: %+v", applied)
	}

	queued := FromAdjustment(usecase.AdjustmentResult{Pending: &entities.PendingAdjustment{Status: entities.PendingAdjustmentPending}})
	if queued.Applied {
		t.Fatalf("expected queued adjustment: %+v", queued)
	}

	approved := FromAdjustment(usecase.AdjustmentResult{Pending: &entities.PendingAdjustment{Status: entities.PendingAdjustmentApproved}})
	if !approved.Applied {
		t.Fatalf("expected approved adjustment to be applied: %+v", approved)
	}
}

func TestList(t *testing.T) {
	b, err := json.Marshal(List[entities.Invoice](nil))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(b) != "[]" {
		t.Fatalf("expected [], got %s", b)
	}
}
