package usecase

import (
	"context"
	"sync"
	"testing"

	"rental_backend/internal/domain/entities"
	"rental_backend/pkg"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func money(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func quotationLine(equipment string, subtotal, wastage, cutting int64) entities.QuotationItem {
	return entities.QuotationItem{
		Equipment:      equipment,
		Quantity:       10,
		Subtotal:       money(subtotal),
		WastageCharges: money(wastage),
		CuttingCharges: money(cutting),
		Total:          money(subtotal + wastage + cutting),
	}
}

func TestValidateQuotationItems(t *testing.T) {
	line := quotationLine("Steel Prop", 9000, 600, 400)

	total, err := ValidateQuotationItems([]entities.QuotationItem{line}, decimal.Zero)
	require.NoError(t, err)
	assert.True(t, total.Equal(money(10000)))

	total, err = ValidateQuotationItems([]entities.QuotationItem{line}, money(10000))
	require.NoError(t, err)
	assert.True(t, total.Equal(money(10000)))

	_, err = ValidateQuotationItems([]entities.QuotationItem{line}, money(9999))
	assert.ErrorIs(t, err, pkg.ErrValidation)

	_, err = ValidateQuotationItems(nil, decimal.Zero)
	assert.ErrorIs(t, err, pkg.ErrValidation)

	bad := line
	bad.Total = money(1)
	_, err = ValidateQuotationItems([]entities.QuotationItem{bad}, decimal.Zero)
	var vErr *pkg.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"items[0].total must equal subtotal + wastageCharges + cuttingCharges"}, vErr.Details)
}

// sentQuotation drafts and sends a quotation worth 10000.
func sentQuotation(t *testing.T, f *fixture) entities.Quotation {
	t.Helper()
	ctx := context.Background()
	q, err := f.quotations.Create(ctx, salesUser, entities.Quotation{
		CustomerName: "Alice Buyer",
		Company:      "Buyer LLC",
		Items:        []entities.QuotationItem{quotationLine("Steel Prop", 9000, 600, 400)},
	})
	require.NoError(t, err)
	q, err = f.quotations.Send(ctx, salesUser, q.QuotationID)
	require.NoError(t, err)
	return q
}

func TestQuotationApprove_CreatesOneSalesOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	q := sentQuotation(t, f)
	assert.Equal(t, "QT-2026-0001", q.QuotationID)
	assert.Equal(t, entities.QuotationStatusSent, q.Status)

	approved, so, err := f.quotations.Approve(ctx, adminUser, q.QuotationID)
	require.NoError(t, err)
	assert.Equal(t, entities.QuotationStatusConvertedToOrder, approved.Status)
	assert.Equal(t, "SO-2026-0001", so.SalesOrderID)
	assert.Equal(t, entities.SalesOrderStatusApproved, so.Status)
	assert.Equal(t, q.QuotationID, so.QuotationID)
	assert.True(t, so.TotalAmount.Equal(money(10000)))
	assert.Equal(t, so.SalesOrderID, approved.SalesOrderID)

	again, so2, err := f.quotations.Approve(ctx, adminUser, q.ID)
	require.NoError(t, err)
	assert.Equal(t, so.ID, so2.ID)
	assert.Equal(t, so.SalesOrderID, again.SalesOrderID)
	assert.Equal(t, entities.QuotationStatusConvertedToOrder, again.Status)

	stored, err := f.quotationRepo.GetByQuotationID(ctx, q.QuotationID)
	require.NoError(t, err)
	assert.Equal(t, entities.QuotationStatusConvertedToOrder, stored.Status)
	assert.Equal(t, so.SalesOrderID, stored.SalesOrderID)

	orders, err := f.orders.List(ctx, salesUser, "")
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}

func TestQuotationApprove_ConcurrentApprovalsConverge(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	q := sentQuotation(t, f)

	const workers = 10
	var wg sync.WaitGroup
	ids := make([]string, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, so, err := f.quotations.Approve(ctx, adminUser, q.ID)
			assert.NoError(t, err)
			ids[i] = so.ID
		}(i)
	}
	wg.Wait()

	orders, err := f.orders.List(ctx, salesUser, "")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	for _, id := range ids {
		assert.Equal(t, orders[0].ID, id)
	}
}

func TestQuotationApprove_Gates(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	draft, err := f.quotations.Create(ctx, salesUser, entities.Quotation{
		Items: []entities.QuotationItem{quotationLine("Steel Prop", 100, 0, 0)},
	})
	require.NoError(t, err)

	_, _, err = f.quotations.Approve(ctx, salesUser, draft.ID)
	assert.ErrorIs(t, err, ErrRoleNotAllowed)

	_, _, err = f.quotations.Approve(ctx, adminUser, draft.ID)
	assert.ErrorIs(t, err, ErrQuotationNotSent)

	_, _, err = f.quotations.Approve(ctx, adminUser, "QT-2026-9999")
	assert.ErrorIs(t, err, ErrQuotationNotFound)
}

func TestQuotationSend_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	q := sentQuotation(t, f)

	again, err := f.quotations.Send(ctx, salesUser, q.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.QuotationStatusSent, again.Status)
	assert.True(t, again.SentAt.Equal(q.SentAt))

	_, err = f.quotations.Update(ctx, salesUser, q.ID, entities.Quotation{
		Items: []entities.QuotationItem{quotationLine("Steel Prop", 1, 0, 0)},
	})
	assert.ErrorIs(t, err, ErrQuotationNotDraft)
}

func TestQuotationUpdate_ReplacesDraft(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	q, err := f.quotations.Create(ctx, salesUser, entities.Quotation{
		CustomerName: "Alice Buyer",
		Items:        []entities.QuotationItem{quotationLine("Steel Prop", 100, 0, 0)},
	})
	require.NoError(t, err)

	updated, err := f.quotations.Update(ctx, salesUser, q.QuotationID, entities.Quotation{
		Project: "Tower B",
		Items: []entities.QuotationItem{
			quotationLine("Steel Prop", 100, 10, 0),
			quotationLine("Plywood", 50, 0, 5),
		},
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Buyer", updated.CustomerName)
	assert.Equal(t, "Tower B", updated.Project)
	require.Len(t, updated.Items, 2)
	assert.NotEmpty(t, updated.Items[1].ID)
	assert.True(t, updated.TotalAmount.Equal(money(165)))
}

func TestQuotationReject(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	q := sentQuotation(t, f)

	rejected, err := f.quotations.Reject(ctx, adminUser, q.ID, " price too high ")
	require.NoError(t, err)
	assert.Equal(t, entities.QuotationStatusRejected, rejected.Status)
	assert.Equal(t, "price too high", rejected.RejectReason)
	assert.Equal(t, adminUser.Actor(), rejected.DecidedBy)

	again, err := f.quotations.Reject(ctx, adminUser, q.ID, "")
	require.NoError(t, err)
	assert.Equal(t, entities.QuotationStatusRejected, again.Status)

	_, _, err = f.quotations.Approve(ctx, adminUser, q.ID)
	assert.ErrorIs(t, err, ErrQuotationAlreadyRejected)
}

func TestQuotationCreate_LinksEnquiry(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	e, err := f.enquiries.Create(ctx, salesUser, newEnquiry("a@b.com"))
	require.NoError(t, err)

	q, err := f.quotations.Create(ctx, salesUser, entities.Quotation{
		EnquiryID: e.EnquiryID,
		Items:     []entities.QuotationItem{quotationLine("Steel Prop", 100, 0, 0)},
	})
	require.NoError(t, err)
	assert.Equal(t, "Alice Buyer", q.CustomerName)
	assert.Equal(t, "Buyer LLC", q.Company)
	assert.Equal(t, "a@b.com", q.CustomerEmail)

	_, err = f.quotations.Create(ctx, salesUser, entities.Quotation{
		EnquiryID: "ENQ-2026-0404",
		Items:     []entities.QuotationItem{quotationLine("Steel Prop", 100, 0, 0)},
	})
	assert.ErrorIs(t, err, ErrEnquiryNotFound)
}

func TestBuildStockReport(t *testing.T) {
	stock := []entities.Equipment{
		{ID: "e-1", ItemCode: "SC-100", Description: "Steel Prop", QuantityAvailable: 30},
		{ID: "e-2", ItemCode: "PW-200", Description: "Plywood", QuantityAvailable: 5},
	}
	so := entities.SalesOrder{
		SalesOrderID: "SO-2026-0001",
		Items: []entities.QuotationItem{
			{Equipment: "sc-100", Quantity: 20},
			{Equipment: "plywood", Quantity: 5},
		},
	}

	report := BuildStockReport(so, stock)
	assert.True(t, report.StockAvailable)
	require.Len(t, report.Lines, 2)
	assert.Equal(t, "e-1", report.Lines[0].EquipmentID)
	assert.Equal(t, 30, report.Lines[0].Available)

	so.Items = append(so.Items, entities.QuotationItem{Equipment: "Tie Rod", Quantity: 1})
	report = BuildStockReport(so, stock)
	assert.False(t, report.StockAvailable)
	assert.False(t, report.Lines[2].Sufficient)

	assert.False(t, BuildStockReport(entities.SalesOrder{}, stock).StockAvailable)
}

func TestSalesOrderCheckStock(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	_, err := f.inventory.CreateEquipment(ctx, warehouseUser, entities.Equipment{ItemCode: "SC-100", Description: "Steel Prop", QuantityTotal: 5})
	require.NoError(t, err)
	q := sentQuotation(t, f)
	_, so, err := f.quotations.Approve(ctx, adminUser, q.ID)
	require.NoError(t, err)

	checked, report, err := f.orders.CheckStock(ctx, salesUser, so.SalesOrderID)
	require.NoError(t, err)
	assert.True(t, checked.StockChecked)
	assert.False(t, checked.StockAvailable)
	require.Len(t, report.Lines, 1)
	assert.Equal(t, 10, report.Lines[0].Requested)
	assert.Equal(t, 5, report.Lines[0].Available)

	_, _, err = f.orders.CheckStock(ctx, warehouseUser, so.SalesOrderID)
	assert.ErrorIs(t, err, ErrRoleNotAllowed)

	_, err = f.orders.List(ctx, salesUser, "shipped")
	assert.ErrorIs(t, err, ErrInvalidSalesOrderStatus)
}
