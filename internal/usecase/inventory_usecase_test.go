package usecase

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"rental_backend/internal/domain/entities"
	"rental_backend/internal/usecase/interfaces"
	"rental_backend/pkg"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createEquipment(t *testing.T, f *fixture, code string, total int) entities.Equipment {
	t.Helper()
	e, err := f.inventory.CreateEquipment(context.Background(), warehouseUser, entities.Equipment{
		ItemCode:      code,
		Description:   "Steel Prop " + code,
		Category:      entities.EquipmentCategoryShoring,
		QuantityTotal: total,
	})
	require.NoError(t, err)
	return e
}

func assertCounters(t *testing.T, e entities.Equipment, total, available, rented, damaged int) {
	t.Helper()
	assert.Equal(t, total, e.QuantityTotal, "total")
	assert.Equal(t, available, e.QuantityAvailable, "available")
	assert.Equal(t, rented, e.QuantityRented, "rented")
	assert.Equal(t, damaged, e.QuantityDamaged, "damaged")
	assert.True(t, e.Balanced(), "counters must stay balanced")
}

func TestInventory_DispatchAndReturn(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	e := createEquipment(t, f, "SC-100", 50)
	assertCounters(t, e, 50, 50, 0, 0)
	assert.Equal(t, entities.EquipmentUnitPiece, e.Unit)

	out, row, err := f.inventory.Dispatch(ctx, warehouseUser, interfaces.DispatchRequest{
		EquipmentID: "SC-100",
		ContractID:  "C1",
		CustomerID:  "c-1",
		Quantity:    20,
	})
	require.NoError(t, err)
	assertCounters(t, out, 50, 30, 20, 0)
	assert.Equal(t, entities.EquipmentDispatchActive, row.Status)
	assert.Equal(t, 20, row.Quantity)

	back, ret, err := f.inventory.Return(ctx, warehouseUser, interfaces.ReturnRequest{
		EquipmentID: e.ID,
		ContractID:  "C1",
		Quantity:    20,
		Condition:   entities.ReturnGood,
	})
	require.NoError(t, err)
	assertCounters(t, back, 50, 50, 0, 0)
	assert.Equal(t, row.ID, ret.DispatchID)

	closed, err := f.unitRepo.GetByID(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.EquipmentDispatchCompleted, closed.Status)
	assert.Equal(t, 0, closed.Quantity)
	assert.Equal(t, 20, closed.OriginalQuantity)

	history, err := f.inventory.History(ctx, warehouseUser, e.ID)
	require.NoError(t, err)
	actions := make([]string, 0, len(history))
	for _, h := range history {
		actions = append(actions, h.Action)
	}
	assert.ElementsMatch(t, []string{"created", "dispatched", "returned_good"}, actions)

	returns, err := f.inventory.ListReturns(ctx, warehouseUser, "SC-100")
	require.NoError(t, err)
	assert.Len(t, returns, 1)
}

func TestInventory_ReturnConditions(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	e := createEquipment(t, f, "SC-200", 10)

	_, _, err := f.inventory.Dispatch(ctx, warehouseUser, interfaces.DispatchRequest{EquipmentID: e.ID, ContractID: "C1", Quantity: 6})
	require.NoError(t, err)

	damaged, _, err := f.inventory.Return(ctx, warehouseUser, interfaces.ReturnRequest{EquipmentID: e.ID, ContractID: "C1", Quantity: 2, Condition: entities.ReturnDamaged})
	require.NoError(t, err)
	assertCounters(t, damaged, 10, 4, 4, 2)

	lost, _, err := f.inventory.Return(ctx, warehouseUser, interfaces.ReturnRequest{EquipmentID: e.ID, ContractID: "C1", Quantity: 1, Condition: entities.ReturnLost})
	require.NoError(t, err)
	assertCounters(t, lost, 9, 4, 3, 2)

	active, err := f.unitRepo.ListActive(ctx, e.ID, "C1")
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, 3, active[0].Quantity)
}

func TestInventory_ReturnRejections(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	e := createEquipment(t, f, "SC-300", 10)

	_, _, err := f.inventory.Return(ctx, warehouseUser, interfaces.ReturnRequest{EquipmentID: e.ID, ContractID: "C9", Quantity: 1, Condition: entities.ReturnGood})
	assert.ErrorIs(t, err, ErrNoActiveDispatch)

	_, _, err = f.inventory.Dispatch(ctx, warehouseUser, interfaces.DispatchRequest{EquipmentID: e.ID, ContractID: "C1", Quantity: 3})
	require.NoError(t, err)

	_, _, err = f.inventory.Return(ctx, warehouseUser, interfaces.ReturnRequest{EquipmentID: e.ID, ContractID: "C1", Quantity: 4, Condition: entities.ReturnGood})
	assert.ErrorIs(t, err, ErrReturnExceedsDispatch)
	assert.ErrorIs(t, err, pkg.ErrInsufficientQuantity)

	_, _, err = f.inventory.Return(ctx, warehouseUser, interfaces.ReturnRequest{EquipmentID: e.ID, ContractID: "C1", Quantity: 1, Condition: "burnt"})
	assert.ErrorIs(t, err, ErrInvalidReturnCondition)

	_, _, err = f.inventory.Return(ctx, warehouseUser, interfaces.ReturnRequest{EquipmentID: e.ID, Quantity: 1, Condition: entities.ReturnGood})
	assert.ErrorIs(t, err, ErrContractRequired)

	current, err := f.equipmentRepo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assertCounters(t, current, 10, 7, 3, 0)
}

func TestInventory_InsufficientQuantityLeavesCountersUnchanged(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	e := createEquipment(t, f, "SC-400", 5)

	_, err := f.inventory.Adjust(ctx, adminUser, interfaces.AdjustRequest{EquipmentID: e.ID, Type: entities.AdjustmentDamage, Quantity: 10})
	assert.ErrorIs(t, err, ErrInsufficientQuantity)

	_, _, err = f.inventory.Dispatch(ctx, warehouseUser, interfaces.DispatchRequest{EquipmentID: e.ID, ContractID: "C1", Quantity: 6})
	assert.ErrorIs(t, err, ErrInsufficientQuantity)

	current, err := f.equipmentRepo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assertCounters(t, current, 5, 5, 0, 0)

	history, err := f.historyRepo.ListByEquipment(ctx, e.ID)
	require.NoError(t, err)
	assert.Len(t, history, 1)
}

func TestInventory_ConcurrentDispatchNeverOversells(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	e := createEquipment(t, f, "SC-500", 10)

	const workers = 25
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok, fail int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := f.inventory.Dispatch(ctx, warehouseUser, interfaces.DispatchRequest{EquipmentID: e.ID, ContractID: "C1", Quantity: 1})
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, ErrInsufficientQuantity):
				fail++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 10, ok)
	assert.Equal(t, workers-10, fail)
	current, err := f.equipmentRepo.GetByID(ctx, e.ID)
	require.NoError(t, err)
	assertCounters(t, current, 10, 0, 10, 0)
}

func TestInventory_Adjust(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	e := createEquipment(t, f, "SC-600", 10)

	res, err := f.inventory.Adjust(ctx, warehouseUser, interfaces.AdjustRequest{EquipmentID: e.ID, Type: entities.AdjustmentAdd, Quantity: 5, Reason: "delivery"})
	require.NoError(t, err)
	assert.Nil(t, res.Pending)
	assertCounters(t, res.Equipment, 15, 15, 0, 0)

	res, err = f.inventory.Adjust(ctx, warehouseUser, interfaces.AdjustRequest{EquipmentID: e.ID, Type: entities.AdjustmentRemove, Quantity: 3})
	require.NoError(t, err)
	assertCounters(t, res.Equipment, 12, 12, 0, 0)

	res, err = f.inventory.Adjust(ctx, adminUser, interfaces.AdjustRequest{EquipmentID: e.ID, Type: entities.AdjustmentDamage, Quantity: 2})
	require.NoError(t, err)
	assertCounters(t, res.Equipment, 12, 10, 0, 2)

	res, err = f.inventory.Adjust(ctx, adminUser, interfaces.AdjustRequest{EquipmentID: e.ID, Type: entities.AdjustmentRepair, Quantity: 1})
	require.NoError(t, err)
	assertCounters(t, res.Equipment, 12, 11, 0, 1)

	_, err = f.inventory.Adjust(ctx, adminUser, interfaces.AdjustRequest{EquipmentID: e.ID, Type: "steal", Quantity: 1})
	assert.ErrorIs(t, err, ErrInvalidAdjustmentType)

	_, err = f.inventory.Adjust(ctx, adminUser, interfaces.AdjustRequest{EquipmentID: e.ID, Type: entities.AdjustmentAdd, Quantity: 0})
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = f.inventory.Adjust(ctx, salesUser, interfaces.AdjustRequest{EquipmentID: e.ID, Type: entities.AdjustmentAdd, Quantity: 1})
	assert.ErrorIs(t, err, ErrRoleNotAllowed)

	history, err := f.historyRepo.ListByEquipment(ctx, e.ID)
	require.NoError(t, err)
	for _, h := range history {
		if h.Action == string(entities.AdjustmentDamage) {
			assert.Equal(t, entities.CounterAvailable, h.Counter)
			assert.Equal(t, 12, h.PreviousQuantity)
			assert.Equal(t, 10, h.NewQuantity)
			assert.Equal(t, -2, h.QuantityChange)
		}
	}
}

func TestInventory_PendingAdjustmentFlow(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	e := createEquipment(t, f, "SC-700", 5)

	res, err := f.inventory.Adjust(ctx, warehouseUser, interfaces.AdjustRequest{EquipmentID: e.ID, Type: entities.AdjustmentDamage, Quantity: 2, Reason: "bent"})
	require.NoError(t, err)
	require.NotNil(t, res.Pending)
	assert.Equal(t, entities.PendingAdjustmentPending, res.Pending.Status)
	assertCounters(t, res.Equipment, 5, 5, 0, 0)

	queued, err := f.inventory.ListAdjustments(ctx, warehouseUser, entities.PendingAdjustmentPending)
	require.NoError(t, err)
	require.Len(t, queued, 1)

	_, err = f.inventory.ApproveAdjustment(ctx, warehouseUser, res.Pending.ID)
	assert.ErrorIs(t, err, ErrRoleNotAllowed)

	approved, err := f.inventory.ApproveAdjustment(ctx, adminUser, res.Pending.ID)
	require.NoError(t, err)
	assertCounters(t, approved.Equipment, 5, 3, 0, 2)
	assert.Equal(t, entities.PendingAdjustmentApproved, approved.Pending.Status)
	assert.Equal(t, adminUser.Actor(), approved.Pending.ResolvedBy)

	_, err = f.inventory.ApproveAdjustment(ctx, adminUser, res.Pending.ID)
	assert.ErrorIs(t, err, ErrAdjustmentAlreadyResolved)

	history, err := f.historyRepo.ListByEquipment(ctx, e.ID)
	require.NoError(t, err)
	var damage entities.EquipmentHistory
	for _, h := range history {
		if h.Action == string(entities.AdjustmentDamage) {
			damage = h
		}
	}
	assert.Equal(t, warehouseUser.Actor(), damage.PerformedBy)
	assert.Equal(t, adminUser.Actor(), damage.ApprovedBy)

	second, err := f.inventory.Adjust(ctx, warehouseUser, interfaces.AdjustRequest{EquipmentID: e.ID, Type: entities.AdjustmentRepair, Quantity: 1})
	require.NoError(t, err)
	rejected, err := f.inventory.RejectAdjustment(ctx, adminUser, second.Pending.ID, "not repaired")
	require.NoError(t, err)
	assert.Equal(t, entities.PendingAdjustmentRejected, rejected.Status)

	_, err = f.inventory.ApproveAdjustment(ctx, adminUser, "nope")
	assert.ErrorIs(t, err, ErrAdjustmentNotFound)
}

func TestInventory_ApproveAdjustmentReleasesClaimOnShortage(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	e := createEquipment(t, f, "SC-800", 3)

	res, err := f.inventory.Adjust(ctx, warehouseUser, interfaces.AdjustRequest{EquipmentID: e.ID, Type: entities.AdjustmentDamage, Quantity: 3})
	require.NoError(t, err)
	_, _, err = f.inventory.Dispatch(ctx, warehouseUser, interfaces.DispatchRequest{EquipmentID: e.ID, ContractID: "C1", Quantity: 2})
	require.NoError(t, err)

	_, err = f.inventory.ApproveAdjustment(ctx, adminUser, res.Pending.ID)
	assert.ErrorIs(t, err, ErrInsufficientQuantity)

	pa, err := f.pendingRepo.GetByID(ctx, res.Pending.ID)
	require.NoError(t, err)
	assert.Equal(t, entities.PendingAdjustmentPending, pa.Status)
}

func TestInventory_CreateEquipmentValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	createEquipment(t, f, "SC-900", 5)

	_, err := f.inventory.CreateEquipment(ctx, warehouseUser, entities.Equipment{ItemCode: "sc-900", Description: "dup", QuantityTotal: 1})
	assert.ErrorIs(t, err, ErrDuplicateItemCode)

	_, err = f.inventory.CreateEquipment(ctx, warehouseUser, entities.Equipment{
		ItemCode:          "SC-901",
		Description:       "Tie Rod",
		QuantityTotal:     10,
		QuantityAvailable: 3,
		QuantityRented:    2,
	})
	assert.ErrorIs(t, err, ErrUnbalancedEquipmentCounter)

	_, err = f.inventory.CreateEquipment(ctx, warehouseUser, entities.Equipment{Category: "boats"})
	var vErr *pkg.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, []string{"item_code is required", "description is required", "invalid category"}, vErr.Details)

	_, err = f.inventory.CreateEquipment(ctx, salesUser, entities.Equipment{ItemCode: "X", Description: "x"})
	assert.ErrorIs(t, err, ErrRoleNotAllowed)

	_, err = f.inventory.GetEquipment(ctx, salesUser, "SC-404")
	assert.ErrorIs(t, err, ErrEquipmentNotFound)
}

func TestInventory_Dashboard(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	props := createEquipment(t, f, "SC-1000", 20)
	createEquipment(t, f, "SC-1001", 8)
	ties := createEquipment(t, f, "SC-1002", 4)
	_, _, err := f.inventory.Dispatch(ctx, warehouseUser, interfaces.DispatchRequest{EquipmentID: props.ID, ContractID: "C1", Quantity: 5})
	require.NoError(t, err)
	_, _, err = f.inventory.Dispatch(ctx, warehouseUser, interfaces.DispatchRequest{EquipmentID: ties.ID, ContractID: "C2", Quantity: 4})
	require.NoError(t, err)
	_, _, err = f.inventory.Return(ctx, warehouseUser, interfaces.ReturnRequest{EquipmentID: props.ID, ContractID: "C1", Quantity: 1, Condition: entities.ReturnDamaged})
	require.NoError(t, err)

	rentals := []struct {
		status entities.EnquiryStatus
		end    time.Time
	}{
		{entities.EnquiryStatusActive, testNow.AddDate(0, 0, 5)},
		{entities.EnquiryStatusExtended, testNow.AddDate(0, 0, -9)},
		{entities.EnquiryStatusActive, testNow.AddDate(0, 0, 22)},
		{entities.EnquiryStatusRejected, testNow.AddDate(0, 0, 2)},
		{entities.EnquiryStatusActive, time.Time{}},
	}
	for i, r := range rentals {
		e := newEnquiry("rental@x.com")
		e.ID = fmt.Sprintf("r-%d", i)
		e.EnquiryID = fmt.Sprintf("RC-2026-%03d", i)
		e.Status = r.status
		e.EndDate = r.end
		_, err := f.enquiryRepo.Create(ctx, e)
		require.NoError(t, err)
	}

	d, err := f.inventory.Dashboard(ctx, warehouseUser)
	require.NoError(t, err)
	assert.Equal(t, 2, d.PendingDispatch)
	assert.Equal(t, 2, d.ExpectedReturns)
	assert.Equal(t, 2, d.LowStockItems)
	assert.Equal(t, 3, d.TotalEquipment)
	assert.Equal(t, []UtilizationCount{
		{Status: "Available", Count: 2},
		{Status: "Rented", Count: 2},
		{Status: "Maintenance", Count: 0},
		{Status: "Damaged", Count: 1},
	}, d.EquipmentUtilization)

	_, err = f.inventory.Dashboard(ctx, adminUser)
	assert.NoError(t, err)
	_, err = f.inventory.Dashboard(ctx, salesUser)
	assert.ErrorIs(t, err, ErrRoleNotAllowed)
}
