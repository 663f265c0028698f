package usecase

import (
	"context"
	"testing"

	"rental_backend/internal/domain/entities"
	"rental_backend/internal/usecase/interfaces"
	mock_interfaces "rental_backend/internal/usecase/interfaces/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestWarehouse_DispatchSalesOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	so := approvedOrder(t, f)

	_, _, err := f.warehouse.DispatchSalesOrder(ctx, salesUser, so.SalesOrderID)
	assert.ErrorIs(t, err, ErrRoleNotAllowed)

	dispatched, d, err := f.warehouse.DispatchSalesOrder(ctx, warehouseUser, so.SalesOrderID)
	require.NoError(t, err)
	assert.Equal(t, entities.SalesOrderStatusDispatched, dispatched.Status)
	assert.True(t, dispatched.DispatchedAt.Equal(testNow))
	assert.Equal(t, "DSP-2026-0001", d.DispatchID)
	assert.Equal(t, so.SalesOrderID, d.SalesOrderID)
	assert.Equal(t, entities.OrderDispatchPending, d.Status)
	assert.Equal(t, warehouseUser.Actor(), d.DispatchedBy)

	_, again, err := f.warehouse.DispatchSalesOrder(ctx, warehouseUser, so.ID)
	require.NoError(t, err)
	assert.Equal(t, d.ID, again.ID)

	all, err := f.warehouse.ListDispatches(ctx, salesUser, "")
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestWarehouse_DispatchRequiresReleasedOrder(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	so := approvedOrder(t, f)
	requestContract(t, f, so, 100)

	_, _, err := f.warehouse.DispatchSalesOrder(ctx, warehouseUser, so.SalesOrderID)
	assert.ErrorIs(t, err, ErrSalesOrderNotDispatchable)

	_, _, err = f.warehouse.DispatchSalesOrder(ctx, warehouseUser, "SO-2026-0404")
	assert.ErrorIs(t, err, ErrSalesOrderNotFound)
}

func TestWarehouse_AdvanceDispatch(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	so := approvedOrder(t, f)
	c := requestContract(t, f, so, 100)
	_, _, err := f.contracts.Approve(ctx, adminUser, c.ID)
	require.NoError(t, err)

	_, d, err := f.warehouse.DispatchSalesOrder(ctx, warehouseUser, so.SalesOrderID)
	require.NoError(t, err)

	d, err = f.warehouse.AdvanceDispatch(ctx, warehouseUser, d.DispatchID)
	require.NoError(t, err)
	assert.Equal(t, entities.OrderDispatchInTransit, d.Status)

	d, err = f.warehouse.AdvanceDispatch(ctx, warehouseUser, d.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.OrderDispatchDelivered, d.Status)
	assert.True(t, d.DeliveredAt.Equal(testNow))

	_, err = f.warehouse.AdvanceDispatch(ctx, warehouseUser, d.ID)
	assert.ErrorIs(t, err, ErrDispatchAlreadyDelivered)

	delivered, err := f.warehouse.ListDispatches(ctx, warehouseUser, entities.OrderDispatchDelivered)
	require.NoError(t, err)
	assert.Len(t, delivered, 1)

	_, err = f.warehouse.ListDispatches(ctx, warehouseUser, "lost")
	assert.ErrorIs(t, err, ErrInvalidDispatchStatus)

	_, err = f.warehouse.GetDispatch(ctx, warehouseUser, "DSP-2026-0404")
	assert.ErrorIs(t, err, ErrOrderDispatchNotFound)
}

func TestWarehouse_ProcessReturnDelegatesToLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mock_interfaces.NewMockIInventoryLedger(ctrl)
	uc := NewWarehouseUseCase(nil, nil, ledger, nil, zap.NewNop())

	req := interfaces.ReturnRequest{EquipmentID: "SC-100", ContractID: "C1", Quantity: 2, Condition: entities.ReturnGood}
	ledger.EXPECT().Return(gomock.Any(), warehouseUser, req).
		Return(entities.Equipment{ID: "e-1", QuantityAvailable: 2}, entities.EquipmentReturn{ID: "r-1"}, nil)

	e, ret, err := uc.ProcessReturn(context.Background(), warehouseUser, req)
	require.NoError(t, err)
	assert.Equal(t, "e-1", e.ID)
	assert.Equal(t, "r-1", ret.ID)

	_, _, err = uc.ProcessReturn(context.Background(), financeUser, req)
	assert.ErrorIs(t, err, ErrRoleNotAllowed)
}
