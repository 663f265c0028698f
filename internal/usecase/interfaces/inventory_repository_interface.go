package interfaces

import (
	"context"
	"time"

	"rental_backend/internal/domain/entities"
)

// QuantityDelta is a signed change to the equipment counters.
type QuantityDelta struct {
	Total       int
	Available   int
	Rented      int
	Maintenance int
	Damaged     int
}

type IEquipmentRepository interface {
	Create(ctx context.Context, e entities.Equipment) (entities.Equipment, error)
	GetByID(ctx context.Context, id string) (entities.Equipment, error)
	GetByItemCode(ctx context.Context, itemCode string) (entities.Equipment, error)
	List(ctx context.Context) ([]entities.Equipment, error)
	Count(ctx context.Context) (int, error)
	// CountInRange counts equipment whose counter c lies in [lo, hi]. A hi
	// below lo leaves the range open above.
	CountInRange(ctx context.Context, c entities.Counter, lo, hi int) (int, error)
	// ApplyDelta adds d to the counters in one conditional write that
	// requires every decremented counter to cover its decrement. It returns a
	// zero value when the equipment is missing or a counter would go negative.
	ApplyDelta(ctx context.Context, id string, d QuantityDelta) (entities.Equipment, error)
}

type IEquipmentHistoryRepository interface {
	Append(ctx context.Context, h entities.EquipmentHistory) error
	ListByEquipment(ctx context.Context, equipmentID string) ([]entities.EquipmentHistory, error)
}

type IPendingAdjustmentRepository interface {
	Create(ctx context.Context, p entities.PendingAdjustment) (entities.PendingAdjustment, error)
	GetByID(ctx context.Context, id string) (entities.PendingAdjustment, error)
	List(ctx context.Context, status entities.PendingAdjustmentStatus) ([]entities.PendingAdjustment, error)
	Resolve(ctx context.Context, id string, from, to entities.PendingAdjustmentStatus, t Transition) (entities.PendingAdjustment, error)
}

type IEquipmentDispatchRepository interface {
	Create(ctx context.Context, d entities.EquipmentDispatch) (entities.EquipmentDispatch, error)
	GetByID(ctx context.Context, id string) (entities.EquipmentDispatch, error)
	ListActive(ctx context.Context, equipmentID, contractID string) ([]entities.EquipmentDispatch, error)
	ListByEquipment(ctx context.Context, equipmentID string) ([]entities.EquipmentDispatch, error)
	CountActive(ctx context.Context) (int, error)
	// Reduce takes q units off an active row holding at least q.
	Reduce(ctx context.Context, id string, q int, at time.Time) (entities.EquipmentDispatch, error)
	Restore(ctx context.Context, id string, q int, at time.Time) (entities.EquipmentDispatch, error)
	// Complete closes an active row whose quantity reached zero.
	Complete(ctx context.Context, id string, at time.Time) (entities.EquipmentDispatch, error)
}

// IRentalSchedule reports on rental end dates.
type IRentalSchedule interface {
	CountEndingBy(ctx context.Context, statuses []entities.EnquiryStatus, by time.Time) (int, error)
}

type IEquipmentReturnRepository interface {
	Create(ctx context.Context, r entities.EquipmentReturn) (entities.EquipmentReturn, error)
	List(ctx context.Context, equipmentID string) ([]entities.EquipmentReturn, error)
}

type IOrderDispatchRepository interface {
	IBusinessIDSource
	Create(ctx context.Context, d entities.OrderDispatch) (entities.OrderDispatch, error)
	GetByID(ctx context.Context, id string) (entities.OrderDispatch, error)
	GetByDispatchID(ctx context.Context, dispatchID string) (entities.OrderDispatch, error)
	List(ctx context.Context, status entities.OrderDispatchStatus) ([]entities.OrderDispatch, error)
	Transition(ctx context.Context, id string, from, to entities.OrderDispatchStatus, at time.Time) (entities.OrderDispatch, error)
}
