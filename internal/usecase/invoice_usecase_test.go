package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"rental_backend/internal/adapter/persistence/docstore"
	"rental_backend/internal/adapter/persistence/repository"
	"rental_backend/internal/domain/entities"
	mock_interfaces "rental_backend/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

type invoiceFixture struct {
	invoices *repository.InvoiceRepository
	payments *repository.PaymentRepository
	gateway  *mock_interfaces.MockIPaymentGateway
	uc       *InvoiceUseCase
}

func newInvoiceFixture(t *testing.T, opts PaymentOptions) *invoiceFixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	store := docstore.NewMemoryStore()
	f := &invoiceFixture{
		invoices: repository.NewInvoiceRepository(store),
		payments: repository.NewPaymentRepository(store),
		gateway:  mock_interfaces.NewMockIPaymentGateway(ctrl),
	}
	f.uc = NewInvoiceUseCase(f.invoices, f.payments, f.gateway, opts, zap.NewNop())
	f.uc.now = func() time.Time { return testNow }
	return f
}

func (f *invoiceFixture) seed(t *testing.T, id string, due time.Time) entities.Invoice {
	t.Helper()
	inv, err := f.invoices.Create(context.Background(), entities.Invoice{
		ID:        "key-" + id,
		InvoiceID: id,
		Amount:    money(20000),
		VAT:       money(1000),
		VATRate:   5,
		Total:     money(21000),
		Currency:  "AED",
		Status:    entities.InvoiceStatusPending,
		DueDate:   due,
		CreatedAt: testNow,
		UpdatedAt: testNow,
	})
	require.NoError(t, err)
	return inv
}

func TestInvoiceUseCase_Pay(t *testing.T) {
	t.Run("approved payment settles the invoice", func(t *testing.T) {
		f := newInvoiceFixture(t, PaymentOptions{Mock: true})
		inv := f.seed(t, "INV-2026-0001", testNow.AddDate(0, 0, 30))

		f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]any
				require.NoError(t, json.Unmarshal(payload, &req))
				assert.Equal(t, 21000.0, req["transaction_amount"])
				assert.Equal(t, "INV-2026-0001", req["external_reference"])
				return "mp-1", "approved", json.RawMessage(`{"id":1,"status":"approved"}`), nil
			})

		paid, payment, err := f.uc.Pay(context.Background(), financeUser, inv.InvoiceID, nil)
		require.NoError(t, err)
		assert.Equal(t, entities.InvoiceStatusPaid, paid.Status)
		assert.Equal(t, payment.ID, paid.PaymentID)
		assert.Equal(t, entities.PaymentStatusApproved, payment.Status)
		assert.Equal(t, "mp-1", payment.ProviderPaymentID)
		assert.True(t, payment.Amount.Equal(money(21000)))
		assert.Equal(t, "approved", payment.ProviderPayload["status"])

		_, _, err = f.uc.Pay(context.Background(), financeUser, inv.InvoiceID, nil)
		assert.ErrorIs(t, err, ErrInvoiceAlreadyPaid)

		list, err := f.uc.ListPayments(context.Background(), financeUser, inv.ID)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("pending provider status leaves the invoice open", func(t *testing.T) {
		f := newInvoiceFixture(t, PaymentOptions{Mock: true})
		inv := f.seed(t, "INV-2026-0002", testNow.AddDate(0, 0, 30))

		f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("mp-2", "in_process", json.RawMessage(`{"status":"in_process"}`), nil)

		open, payment, err := f.uc.Pay(context.Background(), financeUser, inv.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, entities.InvoiceStatusPending, open.Status)
		assert.Equal(t, entities.PaymentStatusPending, payment.Status)

		// the provider may still settle it
		_, _, err = f.uc.Pay(context.Background(), financeUser, inv.ID, nil)
		assert.ErrorIs(t, err, ErrPaymentInProgress)
	})

	t.Run("live mode requires a payment method", func(t *testing.T) {
		f := newInvoiceFixture(t, PaymentOptions{SandboxPayerEmail: "test@testuser.com"})
		inv := f.seed(t, "INV-2026-0003", testNow.AddDate(0, 0, 30))

		_, _, err := f.uc.Pay(context.Background(), financeUser, inv.ID, json.RawMessage(`{"token":"x"}`))
		assert.ErrorIs(t, err, ErrInvalidPaymentPayload)

		_, _, err = f.uc.Pay(context.Background(), financeUser, inv.ID, json.RawMessage(`{`))
		assert.ErrorIs(t, err, ErrInvalidPaymentPayload)
	})

	t.Run("live mode fills the sandbox payer", func(t *testing.T) {
		f := newInvoiceFixture(t, PaymentOptions{SandboxPayerEmail: "test@testuser.com"})
		inv := f.seed(t, "INV-2026-0004", testNow.AddDate(0, 0, 30))

		f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, payload json.RawMessage) (string, string, json.RawMessage, error) {
				var req map[string]any
				require.NoError(t, json.Unmarshal(payload, &req))
				payer, _ := req["payer"].(map[string]any)
				assert.Equal(t, "test@testuser.com", payer["email"])
				assert.Equal(t, "customer", payer["type"])
				return "mp-4", "approved", json.RawMessage(`{}`), nil
			})

		_, _, err := f.uc.Pay(context.Background(), financeUser, inv.ID, json.RawMessage(`{"payment_method_id":"visa","token":"t"}`))
		require.NoError(t, err)
	})

	t.Run("gateway errors are classified", func(t *testing.T) {
		f := newInvoiceFixture(t, PaymentOptions{Mock: true})
		inv := f.seed(t, "INV-2026-0005", testNow.AddDate(0, 0, 30))

		f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("", "", nil, errors.New(`{"message":"x","error":"bad_request","status":400}`))

		_, _, err := f.uc.Pay(context.Background(), financeUser, inv.ID, nil)
		assert.ErrorIs(t, err, ErrPaymentGatewayBadRequest)

		stored, err := f.invoices.GetByID(context.Background(), inv.ID)
		require.NoError(t, err)
		assert.Equal(t, entities.InvoiceStatusPending, stored.Status)

		// the failed attempt gave the invoice back
		f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("mp-5", "approved", json.RawMessage(`{}`), nil)
		paid, _, err := f.uc.Pay(context.Background(), financeUser, inv.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, entities.InvoiceStatusPaid, paid.Status)
	})

	t.Run("claimed invoice is not charged again", func(t *testing.T) {
		f := newInvoiceFixture(t, PaymentOptions{Mock: true})
		inv := f.seed(t, "INV-2026-0006", testNow.AddDate(0, 0, 30))

		held, err := f.invoices.ClaimPayment(context.Background(), inv.ID, "other-attempt", testNow, paymentClaimLease)
		require.NoError(t, err)
		require.NotEmpty(t, held.ID)

		_, _, err = f.uc.Pay(context.Background(), financeUser, inv.ID, nil)
		assert.ErrorIs(t, err, ErrPaymentInProgress)
	})

	t.Run("lapsed claim can be taken over", func(t *testing.T) {
		f := newInvoiceFixture(t, PaymentOptions{Mock: true})
		inv := f.seed(t, "INV-2026-0007", testNow.AddDate(0, 0, 30))

		_, err := f.invoices.ClaimPayment(context.Background(), inv.ID, "crashed-attempt", testNow.Add(-2*paymentClaimLease), paymentClaimLease)
		require.NoError(t, err)

		f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
			Return("mp-7", "approved", json.RawMessage(`{}`), nil)
		paid, _, err := f.uc.Pay(context.Background(), financeUser, inv.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, entities.InvoiceStatusPaid, paid.Status)
	})

	t.Run("declined payment releases the claim", func(t *testing.T) {
		f := newInvoiceFixture(t, PaymentOptions{Mock: true})
		inv := f.seed(t, "INV-2026-0008", testNow.AddDate(0, 0, 30))

		gomock.InOrder(
			f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
				Return("mp-8a", "rejected", json.RawMessage(`{}`), nil),
			f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
				Return("mp-8b", "approved", json.RawMessage(`{}`), nil),
		)

		_, declined, err := f.uc.Pay(context.Background(), financeUser, inv.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, entities.PaymentStatusDenied, declined.Status)

		paid, _, err := f.uc.Pay(context.Background(), financeUser, inv.ID, nil)
		require.NoError(t, err)
		assert.Equal(t, entities.InvoiceStatusPaid, paid.Status)
	})

	t.Run("only finance may pay", func(t *testing.T) {
		f := newInvoiceFixture(t, PaymentOptions{Mock: true})
		_, _, err := f.uc.Pay(context.Background(), salesUser, "INV-2026-0001", nil)
		assert.ErrorIs(t, err, ErrRoleNotAllowed)
	})

	t.Run("gateway not configured", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil, nil, PaymentOptions{}, zap.NewNop())
		_, _, err := uc.Pay(context.Background(), financeUser, "INV-2026-0001", nil)
		assert.EqualError(t, err, "payment gateway not configured")
	})

	t.Run("unknown invoice", func(t *testing.T) {
		f := newInvoiceFixture(t, PaymentOptions{Mock: true})
		_, _, err := f.uc.Pay(context.Background(), financeUser, "INV-2026-0404", nil)
		assert.ErrorIs(t, err, ErrInvoiceNotFound)
	})
}

func TestInvoiceUseCase_ConcurrentPayChargesOnce(t *testing.T) {
	ctx := context.Background()
	f := newInvoiceFixture(t, PaymentOptions{Mock: true})
	inv := f.seed(t, "INV-2026-0001", testNow.AddDate(0, 0, 30))

	var charges atomic.Int32
	f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, json.RawMessage) (string, string, json.RawMessage, error) {
			charges.Add(1)
			time.Sleep(50 * time.Millisecond)
			return "mp-1", "approved", json.RawMessage(`{}`), nil
		}).
		Times(1)

	const callers = 5
	errs := make([]error, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, _, errs[i] = f.uc.Pay(ctx, financeUser, inv.InvoiceID, nil)
		}(i)
	}
	wg.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.True(t, errors.Is(err, ErrPaymentInProgress) || errors.Is(err, ErrInvoiceAlreadyPaid), err)
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, int32(1), charges.Load())

	payments, err := f.uc.ListPayments(ctx, financeUser, inv.InvoiceID)
	require.NoError(t, err)
	assert.Len(t, payments, 1)

	stored, err := f.invoices.GetByID(ctx, inv.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.InvoiceStatusPaid, stored.Status)
}

func TestInvoiceUseCase_OverdueSweep(t *testing.T) {
	ctx := context.Background()
	f := newInvoiceFixture(t, PaymentOptions{Mock: true})
	late := f.seed(t, "INV-2026-0001", testNow.AddDate(0, 0, -1))
	f.seed(t, "INV-2026-0002", testNow.AddDate(0, 0, 1))

	overdue, err := f.uc.List(ctx, financeUser, entities.InvoiceStatusOverdue)
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	assert.Equal(t, late.InvoiceID, overdue[0].InvoiceID)

	stored, err := f.invoices.GetByID(ctx, late.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.InvoiceStatusOverdue, stored.Status)

	pending, err := f.uc.List(ctx, salesUser, entities.InvoiceStatusPending)
	require.NoError(t, err)
	assert.Len(t, pending, 1)

	_, err = f.uc.List(ctx, financeUser, "void")
	assert.ErrorIs(t, err, ErrInvalidInvoiceStatus)

	// Overdue invoices can still be settled.
	f.gateway.EXPECT().CreatePayment(gomock.Any(), gomock.Any()).
		Return("mp-9", "approved", json.RawMessage(`{}`), nil)
	paid, _, err := f.uc.Pay(ctx, financeUser, late.InvoiceID, nil)
	require.NoError(t, err)
	assert.Equal(t, entities.InvoiceStatusPaid, paid.Status)
}

func TestPaymentStatus(t *testing.T) {
	assert.Equal(t, entities.PaymentStatusApproved, paymentStatus(" Approved "))
	assert.Equal(t, entities.PaymentStatusDenied, paymentStatus("rejected"))
	assert.Equal(t, entities.PaymentStatusPending, paymentStatus("in_process"))
}
