package usecase

import (
	"context"
	"testing"

	"rental_backend/internal/domain/entities"
	"rental_backend/internal/usecase/interfaces"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// approvedOrder runs a quotation through approval and returns its sales order.
func approvedOrder(t *testing.T, f *fixture) entities.SalesOrder {
	t.Helper()
	q := sentQuotation(t, f)
	_, so, err := f.quotations.Approve(context.Background(), adminUser, q.ID)
	require.NoError(t, err)
	return so
}

func requestContract(t *testing.T, f *fixture, so entities.SalesOrder, amount int64) entities.Contract {
	t.Helper()
	c, err := f.contracts.Request(context.Background(), salesUser, ContractRequest{
		SalesOrderID: so.SalesOrderID,
		StartDate:    testNow.AddDate(0, 0, 1),
		EndDate:      testNow.AddDate(0, 3, 0),
		Amount:       money(amount),
	})
	require.NoError(t, err)
	return c
}

func TestContractApprove_IssuesInvoiceWithVAT(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	so := approvedOrder(t, f)

	c := requestContract(t, f, so, 20000)
	assert.Equal(t, "CNT-2026-0001", c.ContractID)
	assert.Equal(t, entities.ApprovalStatusPending, c.ApprovalStatus)
	assert.Equal(t, entities.ContractStatusPendingApproval, c.Status)

	parked, err := f.orderRepo.GetByID(ctx, so.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.SalesOrderStatusPendingContractApproval, parked.Status)
	assert.Equal(t, c.ContractID, parked.ContractID)

	approved, inv, err := f.contracts.Approve(ctx, adminUser, c.ContractID)
	require.NoError(t, err)
	assert.Equal(t, entities.ApprovalStatusApproved, approved.ApprovalStatus)
	assert.Equal(t, entities.ContractStatusActive, approved.Status)

	assert.Equal(t, "INV-2026-0001", inv.InvoiceID)
	assert.Equal(t, c.ContractID, inv.ContractID)
	assert.True(t, inv.Amount.Equal(money(20000)))
	assert.True(t, inv.VAT.Equal(money(1000)))
	assert.True(t, inv.Total.Equal(money(21000)))
	assert.Equal(t, 5, inv.VATRate)
	assert.Equal(t, "AED", inv.Currency)
	assert.Equal(t, entities.InvoiceStatusPending, inv.Status)
	assert.True(t, inv.DueDate.Equal(testNow.AddDate(0, 0, 30)))

	released, err := f.orderRepo.GetByID(ctx, so.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.SalesOrderStatusProcessing, released.Status)
}

func TestContractApprove_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	c := requestContract(t, f, approvedOrder(t, f), 20000)

	_, first, err := f.contracts.Approve(ctx, adminUser, c.ID)
	require.NoError(t, err)
	_, second, err := f.contracts.Approve(ctx, adminUser, c.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, first.InvoiceID, second.InvoiceID)

	invoices, err := f.invoiceRepo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, invoices, 1)

	entries, err := f.audit.List(ctx, adminUser, entityContract, c.ContractID)
	require.NoError(t, err)
	actions := make([]string, 0, len(entries))
	for _, e := range entries {
		actions = append(actions, e.Action)
	}
	assert.ElementsMatch(t, []string{AuditContractRequested, AuditContractApproved}, actions)
}

func TestContractApprove_ResumesAfterPartialFailure(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	so := approvedOrder(t, f)
	c := requestContract(t, f, so, 20000)

	// The approval was claimed but the process died before billing.
	claimed, err := f.contractRepo.Approve(ctx, c.ID, interfaces.Transition{By: adminUser.Actor(), At: testNow}, documentKey(keyInvoice, c.ID))
	require.NoError(t, err)
	require.NotEmpty(t, claimed.ID)

	_, inv, err := f.contracts.Approve(ctx, adminUser, c.ID)
	require.NoError(t, err)
	assert.Equal(t, documentKey(keyInvoice, c.ID), inv.ID)
	assert.True(t, inv.Total.Equal(money(21000)))

	released, err := f.orderRepo.GetByID(ctx, so.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.SalesOrderStatusProcessing, released.Status)
}

func TestContractRequest_DefaultsToOrderTotal(t *testing.T) {
	f := newFixture(t)
	c := requestContract(t, f, approvedOrder(t, f), 0)
	assert.True(t, c.Amount.Equal(money(10000)))
}

func TestContractRequest_Gates(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	so := approvedOrder(t, f)

	_, err := f.contracts.Request(ctx, salesUser, ContractRequest{
		SalesOrderID: so.SalesOrderID,
		StartDate:    testNow.AddDate(0, 1, 0),
		EndDate:      testNow,
	})
	assert.ErrorIs(t, err, ErrInvalidContractDates)

	_, err = f.contracts.Request(ctx, salesUser, ContractRequest{SalesOrderID: so.SalesOrderID, Amount: money(-1)})
	assert.ErrorIs(t, err, ErrInvalidContractAmount)

	_, err = f.contracts.Request(ctx, financeUser, ContractRequest{SalesOrderID: so.SalesOrderID})
	assert.ErrorIs(t, err, ErrRoleNotAllowed)

	_, err = f.contracts.Request(ctx, salesUser, ContractRequest{SalesOrderID: "SO-2026-0999"})
	assert.ErrorIs(t, err, ErrSalesOrderNotFound)

	requestContract(t, f, so, 100)
	_, err = f.contracts.Request(ctx, salesUser, ContractRequest{SalesOrderID: so.SalesOrderID})
	assert.ErrorIs(t, err, ErrContractAlreadyExists)
}

func TestContractReject_AllowsNewRequest(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	so := approvedOrder(t, f)
	c := requestContract(t, f, so, 20000)

	_, err := f.contracts.Reject(ctx, salesUser, c.ID, "no")
	assert.ErrorIs(t, err, ErrRoleNotAllowed)

	rejected, err := f.contracts.Reject(ctx, adminUser, c.ID, " missing deposit ")
	require.NoError(t, err)
	assert.Equal(t, entities.ApprovalStatusRejected, rejected.ApprovalStatus)
	assert.Equal(t, "missing deposit", rejected.RejectionReason)

	reopened, err := f.orderRepo.GetByID(ctx, so.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.SalesOrderStatusApproved, reopened.Status)

	_, _, err = f.contracts.Approve(ctx, adminUser, c.ID)
	assert.ErrorIs(t, err, ErrContractAlreadyRejected)

	again, err := f.contracts.Reject(ctx, adminUser, c.ID, "")
	require.NoError(t, err)
	assert.Equal(t, entities.ApprovalStatusRejected, again.ApprovalStatus)

	second := requestContract(t, f, so, 15000)
	assert.Equal(t, "CNT-2026-0002", second.ContractID)

	pending, err := f.contracts.List(ctx, financeUser, entities.ApprovalStatusPending)
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, second.ContractID, pending[0].ContractID)
}

func TestAuditList_AdminOnly(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	f.audit.Record(ctx, salesUser, AuditContractRequested, entityContract, "CNT-2026-0001", nil)
	f.audit.Record(ctx, salesUser, AuditContractRequested, entityContract, "CNT-2026-0002", nil)

	_, err := f.audit.List(ctx, salesUser, "", "")
	assert.ErrorIs(t, err, ErrRoleNotAllowed)

	all, err := f.audit.List(ctx, adminUser, entityContract, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	one, err := f.audit.List(ctx, adminUser, "", "CNT-2026-0002")
	require.NoError(t, err)
	require.Len(t, one, 1)
	assert.Equal(t, salesUser.Actor(), one[0].PerformedBy)
	assert.Equal(t, entities.RoleSales, one[0].Role)
}
