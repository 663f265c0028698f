package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"rental_backend/internal/domain/entities"
	"rental_backend/internal/usecase/interfaces"
	"rental_backend/pkg"

	"go.uber.org/zap"
)

var (
	ErrOrderDispatchNotFound     = pkg.Kind(pkg.ErrNotFound, "dispatch not found")
	ErrInvalidOrderDispatchID    = pkg.Kind(pkg.ErrValidation, "invalid dispatch id")
	ErrInvalidDispatchStatus     = pkg.Kind(pkg.ErrValidation, "invalid dispatch status")
	ErrSalesOrderNotDispatchable = pkg.Kind(pkg.ErrConflict, "sales order cannot be dispatched in its current status")
	ErrDispatchAlreadyDelivered  = pkg.Kind(pkg.ErrConflict, "dispatch already delivered")
	ErrDispatchStatusChanged     = pkg.Kind(pkg.ErrConflict, "dispatch status changed concurrently")
)

var dispatchableStatuses = []entities.SalesOrderStatus{
	entities.SalesOrderStatusApproved,
	entities.SalesOrderStatusProcessing,
}

// IWarehouseUseCase drives order-level logistics. Per-unit stock movements
// are delegated to the inventory ledger.
type IWarehouseUseCase interface {
	DispatchSalesOrder(ctx context.Context, p entities.Principal, salesOrderID string) (entities.SalesOrder, entities.OrderDispatch, error)
	ListDispatches(ctx context.Context, p entities.Principal, status entities.OrderDispatchStatus) ([]entities.OrderDispatch, error)
	GetDispatch(ctx context.Context, p entities.Principal, id string) (entities.OrderDispatch, error)
	AdvanceDispatch(ctx context.Context, p entities.Principal, id string) (entities.OrderDispatch, error)
	ProcessReturn(ctx context.Context, p entities.Principal, req interfaces.ReturnRequest) (entities.Equipment, entities.EquipmentReturn, error)
}

type WarehouseUseCase struct {
	orders     interfaces.ISalesOrderRepository
	dispatches interfaces.IOrderDispatchRepository
	ledger     interfaces.IInventoryLedger
	ids        IIDMinter
	log        *zap.Logger
	now        func() time.Time
}

var _ IWarehouseUseCase = (*WarehouseUseCase)(nil)

func NewWarehouseUseCase(
	orders interfaces.ISalesOrderRepository,
	dispatches interfaces.IOrderDispatchRepository,
	ledger interfaces.IInventoryLedger,
	ids IIDMinter,
	log *zap.Logger,
) *WarehouseUseCase {
	return &WarehouseUseCase{
		orders:     orders,
		dispatches: dispatches,
		ledger:     ledger,
		ids:        ids,
		log:        log.Named("warehouse"),
		now:        time.Now,
	}
}

// DispatchSalesOrder marks the order dispatched and opens its delivery
// record. Repeating it on a dispatched order returns the existing record.
func (u *WarehouseUseCase) DispatchSalesOrder(ctx context.Context, p entities.Principal, salesOrderID string) (entities.SalesOrder, entities.OrderDispatch, error) {
	if err := authorize(p, entities.RoleWarehouse); err != nil {
		return entities.SalesOrder{}, entities.OrderDispatch{}, err
	}
	so, err := findSalesOrder(ctx, u.orders, salesOrderID)
	if err != nil {
		return entities.SalesOrder{}, entities.OrderDispatch{}, err
	}

	now := u.now().UTC()
	if so.Status != entities.SalesOrderStatusDispatched {
		updated, err := u.orders.Transition(ctx, so.ID, dispatchableStatuses, entities.SalesOrderStatusDispatched, now)
		if err != nil {
			return entities.SalesOrder{}, entities.OrderDispatch{}, err
		}
		if updated.ID == "" {
			current, err := u.orders.GetByID(ctx, so.ID)
			if err != nil {
				return entities.SalesOrder{}, entities.OrderDispatch{}, err
			}
			if current.Status != entities.SalesOrderStatusDispatched {
				return entities.SalesOrder{}, entities.OrderDispatch{}, ErrSalesOrderNotDispatchable
			}
			updated = current
		}
		so = updated
	}

	d, err := u.ensureOrderDispatch(ctx, p, so, now)
	if err != nil {
		return entities.SalesOrder{}, entities.OrderDispatch{}, err
	}
	return so, d, nil
}

func (u *WarehouseUseCase) ensureOrderDispatch(ctx context.Context, p entities.Principal, so entities.SalesOrder, now time.Time) (entities.OrderDispatch, error) {
	key := documentKey(keyOrderDispatch, so.ID)
	existing, err := u.dispatches.GetByID(ctx, key)
	if err != nil {
		return entities.OrderDispatch{}, err
	}
	if existing.ID != "" {
		return existing, nil
	}

	dispatchID, err := u.ids.Next(ctx, PrefixDispatch)
	if err != nil {
		return entities.OrderDispatch{}, err
	}
	d := entities.OrderDispatch{
		ID:           key,
		DispatchID:   dispatchID,
		SalesOrderID: so.SalesOrderID,
		QuotationID:  so.QuotationID,
		CustomerID:   so.CustomerID,
		CustomerName: so.CustomerName,
		Company:      so.Company,
		Project:      so.Project,
		Items:        so.Items,
		TotalAmount:  so.TotalAmount,
		Status:       entities.OrderDispatchPending,
		DispatchedBy: p.Actor(),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	created, err := u.dispatches.Create(ctx, d)
	if errors.Is(err, interfaces.ErrAlreadyExists) {
		return u.dispatches.GetByID(ctx, key)
	}
	if err != nil {
		return entities.OrderDispatch{}, err
	}
	u.log.Info("sales order dispatched", zap.String("sales_order_id", so.SalesOrderID), zap.String("dispatch_id", dispatchID))
	return created, nil
}

func (u *WarehouseUseCase) ListDispatches(ctx context.Context, p entities.Principal, status entities.OrderDispatchStatus) ([]entities.OrderDispatch, error) {
	if err := authorize(p, entities.RoleWarehouse, entities.RoleSales); err != nil {
		return nil, err
	}
	switch status {
	case "", entities.OrderDispatchPending, entities.OrderDispatchInTransit, entities.OrderDispatchDelivered:
	default:
		return nil, ErrInvalidDispatchStatus
	}
	return u.dispatches.List(ctx, status)
}

func (u *WarehouseUseCase) GetDispatch(ctx context.Context, p entities.Principal, id string) (entities.OrderDispatch, error) {
	if err := authorize(p, entities.RoleWarehouse, entities.RoleSales); err != nil {
		return entities.OrderDispatch{}, err
	}
	return u.find(ctx, id)
}

// AdvanceDispatch moves a delivery one step along pending, in_transit,
// delivered.
func (u *WarehouseUseCase) AdvanceDispatch(ctx context.Context, p entities.Principal, id string) (entities.OrderDispatch, error) {
	if err := authorize(p, entities.RoleWarehouse); err != nil {
		return entities.OrderDispatch{}, err
	}
	d, err := u.find(ctx, id)
	if err != nil {
		return entities.OrderDispatch{}, err
	}
	next, ok := d.Status.Next()
	if !ok {
		return entities.OrderDispatch{}, ErrDispatchAlreadyDelivered
	}
	updated, err := u.dispatches.Transition(ctx, d.ID, d.Status, next, u.now().UTC())
	if err != nil {
		return entities.OrderDispatch{}, err
	}
	if updated.ID == "" {
		return entities.OrderDispatch{}, ErrDispatchStatusChanged
	}
	u.log.Info("dispatch advanced", zap.String("dispatch_id", d.DispatchID), zap.String("status", string(next)))
	return updated, nil
}

// ProcessReturn books equipment back from a contract through the ledger.
func (u *WarehouseUseCase) ProcessReturn(ctx context.Context, p entities.Principal, req interfaces.ReturnRequest) (entities.Equipment, entities.EquipmentReturn, error) {
	if err := authorize(p, entities.RoleWarehouse); err != nil {
		return entities.Equipment{}, entities.EquipmentReturn{}, err
	}
	return u.ledger.Return(ctx, p, req)
}

func (u *WarehouseUseCase) find(ctx context.Context, id string) (entities.OrderDispatch, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.OrderDispatch{}, ErrInvalidOrderDispatchID
	}
	d, err := u.dispatches.GetByID(ctx, id)
	if err != nil {
		return entities.OrderDispatch{}, err
	}
	if d.ID == "" {
		if d, err = u.dispatches.GetByDispatchID(ctx, id); err != nil {
			return entities.OrderDispatch{}, err
		}
	}
	if d.ID == "" {
		return entities.OrderDispatch{}, ErrOrderDispatchNotFound
	}
	return d, nil
}
