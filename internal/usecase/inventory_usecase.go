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
	ErrEquipmentNotFound          = pkg.Kind(pkg.ErrNotFound, "equipment not found")
	ErrInvalidEquipmentID         = pkg.Kind(pkg.ErrValidation, "invalid equipment id")
	ErrDuplicateItemCode          = pkg.Kind(pkg.ErrConflict, "item code already exists")
	ErrInsufficientQuantity       = pkg.Kind(pkg.ErrInsufficientQuantity, "insufficient quantity")
	ErrInvalidQuantity            = pkg.Kind(pkg.ErrValidation, "quantity must be positive")
	ErrInvalidAdjustmentType      = pkg.Kind(pkg.ErrValidation, "invalid adjustment type")
	ErrInvalidReturnCondition     = pkg.Kind(pkg.ErrValidation, "invalid return condition")
	ErrContractRequired           = pkg.Kind(pkg.ErrValidation, "contract id is required")
	ErrNoActiveDispatch           = pkg.Kind(pkg.ErrNotFound, "no active dispatch for this equipment and contract")
	ErrReturnExceedsDispatch      = pkg.Kind(pkg.ErrInsufficientQuantity, "return quantity exceeds the dispatched quantity")
	ErrAdjustmentNotFound         = pkg.Kind(pkg.ErrNotFound, "pending adjustment not found")
	ErrAdjustmentAlreadyResolved  = pkg.Kind(pkg.ErrConflict, "pending adjustment already resolved")
	ErrInvalidAdjustmentStatus    = pkg.Kind(pkg.ErrValidation, "invalid adjustment status")
	ErrUnbalancedEquipmentCounter = pkg.Kind(pkg.ErrValidation, "quantity counters must add up to quantity_total")
)

// History actions.
const (
	historyCreated    = "created"
	historyDispatched = "dispatched"
	historyReturned   = "returned_"
)

// AdjustmentResult is either an applied adjustment or one queued for admin
// approval.
type AdjustmentResult struct {
	Equipment entities.Equipment           `json:"equipment"`
	Pending   *entities.PendingAdjustment `json:"pending_adjustment,omitempty"`
}

const (
	lowStockThreshold = 10
	returnWindow      = 7 * 24 * time.Hour
)

// UtilizationCount is the number of equipment items holding stock in one state.
type UtilizationCount struct {
	Status string `json:"status"`
	Count  int    `json:"count"`
}

// WarehouseDashboard summarises the warehouse workload.
type WarehouseDashboard struct {
	PendingDispatch      int                `json:"pendingDispatch"`
	ExpectedReturns      int                `json:"expectedReturns"`
	LowStockItems        int                `json:"lowStockItems"`
	TotalEquipment       int                `json:"totalEquipment"`
	EquipmentUtilization []UtilizationCount `json:"equipmentUtilization"`
}

// IInventoryUseCase is the equipment ledger. Every counter change is one
// conditional write that fails when a counter would go negative.
type IInventoryUseCase interface {
	interfaces.IInventoryLedger
	CreateEquipment(ctx context.Context, p entities.Principal, e entities.Equipment) (entities.Equipment, error)
	ListEquipment(ctx context.Context, p entities.Principal) ([]entities.Equipment, error)
	GetEquipment(ctx context.Context, p entities.Principal, id string) (entities.Equipment, error)
	History(ctx context.Context, p entities.Principal, equipmentID string) ([]entities.EquipmentHistory, error)
	Adjust(ctx context.Context, p entities.Principal, req interfaces.AdjustRequest) (AdjustmentResult, error)
	ListAdjustments(ctx context.Context, p entities.Principal, status entities.PendingAdjustmentStatus) ([]entities.PendingAdjustment, error)
	ApproveAdjustment(ctx context.Context, p entities.Principal, id string) (AdjustmentResult, error)
	RejectAdjustment(ctx context.Context, p entities.Principal, id, reason string) (entities.PendingAdjustment, error)
	ListDispatches(ctx context.Context, p entities.Principal, equipmentID string) ([]entities.EquipmentDispatch, error)
	ListReturns(ctx context.Context, p entities.Principal, equipmentID string) ([]entities.EquipmentReturn, error)
	Dashboard(ctx context.Context, p entities.Principal) (WarehouseDashboard, error)
}

type InventoryUseCase struct {
	equipment  interfaces.IEquipmentRepository
	history    interfaces.IEquipmentHistoryRepository
	pending    interfaces.IPendingAdjustmentRepository
	dispatches interfaces.IEquipmentDispatchRepository
	returns    interfaces.IEquipmentReturnRepository
	rentals    interfaces.IRentalSchedule
	log        *zap.Logger
	now        func() time.Time
}

var _ IInventoryUseCase = (*InventoryUseCase)(nil)

func NewInventoryUseCase(
	equipment interfaces.IEquipmentRepository,
	history interfaces.IEquipmentHistoryRepository,
	pending interfaces.IPendingAdjustmentRepository,
	dispatches interfaces.IEquipmentDispatchRepository,
	returns interfaces.IEquipmentReturnRepository,
	rentals interfaces.IRentalSchedule,
	log *zap.Logger,
) *InventoryUseCase {
	return &InventoryUseCase{
		equipment:  equipment,
		history:    history,
		pending:    pending,
		dispatches: dispatches,
		returns:    returns,
		rentals:    rentals,
		log:        log.Named("inventory"),
		now:        time.Now,
	}
}

// ledgerOp is one counter change and the counter its history entry reports.
type ledgerOp struct {
	action  string
	delta   interfaces.QuantityDelta
	counter entities.Counter
	change  int
}

func adjustmentOp(t entities.AdjustmentType, q int) (ledgerOp, bool) {
	op := ledgerOp{action: string(t), counter: entities.CounterAvailable}
	switch t {
	case entities.AdjustmentAdd:
		op.delta = interfaces.QuantityDelta{Total: q, Available: q}
		op.change = q
	case entities.AdjustmentRemove:
		op.delta = interfaces.QuantityDelta{Total: -q, Available: -q}
		op.change = -q
	case entities.AdjustmentDamage:
		op.delta = interfaces.QuantityDelta{Available: -q, Damaged: q}
		op.change = -q
	case entities.AdjustmentRepair:
		op.delta = interfaces.QuantityDelta{Damaged: -q, Available: q}
		op.change = q
	default:
		return ledgerOp{}, false
	}
	return op, true
}

func returnOp(c entities.ReturnCondition, q int) (ledgerOp, bool) {
	op := ledgerOp{action: historyReturned + string(c)}
	switch c {
	case entities.ReturnGood:
		op.delta = interfaces.QuantityDelta{Available: q, Rented: -q}
		op.counter, op.change = entities.CounterAvailable, q
	case entities.ReturnDamaged:
		op.delta = interfaces.QuantityDelta{Damaged: q, Rented: -q}
		op.counter, op.change = entities.CounterDamaged, q
	case entities.ReturnLost:
		op.delta = interfaces.QuantityDelta{Total: -q, Rented: -q}
		op.counter, op.change = entities.CounterTotal, -q
	default:
		return ledgerOp{}, false
	}
	return op, true
}

func inverse(d interfaces.QuantityDelta) interfaces.QuantityDelta {
	return interfaces.QuantityDelta{
		Total:       -d.Total,
		Available:   -d.Available,
		Rented:      -d.Rented,
		Maintenance: -d.Maintenance,
		Damaged:     -d.Damaged,
	}
}

// historyMeta carries the descriptive fields of a history entry.
type historyMeta struct {
	contractID string
	approvedBy string
	reason     string
	notes      string
}

// apply runs op against the equipment counters and appends its history
// entry.
func (u *InventoryUseCase) apply(ctx context.Context, p entities.Principal, equipmentID string, op ledgerOp, meta historyMeta) (entities.Equipment, error) {
	updated, err := u.equipment.ApplyDelta(ctx, equipmentID, op.delta)
	if err != nil {
		return entities.Equipment{}, err
	}
	if updated.ID == "" {
		return entities.Equipment{}, u.rejection(ctx, equipmentID)
	}

	current := updated.Value(op.counter)
	h := entities.EquipmentHistory{
		ID:               newKey(),
		EquipmentID:      updated.ID,
		Action:           op.action,
		Counter:          op.counter,
		QuantityChange:   op.change,
		PreviousQuantity: current - op.change,
		NewQuantity:      current,
		ContractID:       meta.contractID,
		PerformedBy:      p.Actor(),
		ApprovedBy:       meta.approvedBy,
		Reason:           meta.reason,
		Notes:            meta.notes,
		Timestamp:        u.now().UTC(),
	}
	if err := u.history.Append(ctx, h); err != nil {
		u.log.Error("history append failed", zap.String("equipment_id", updated.ID), zap.String("action", op.action), zap.Error(err))
	}
	return updated, nil
}

// rejection explains why a conditional counter update matched nothing.
func (u *InventoryUseCase) rejection(ctx context.Context, equipmentID string) error {
	e, err := u.equipment.GetByID(ctx, equipmentID)
	if err != nil {
		return err
	}
	if e.ID == "" {
		return ErrEquipmentNotFound
	}
	return ErrInsufficientQuantity
}

// revert undoes a committed counter change after a later step failed.
func (u *InventoryUseCase) revert(ctx context.Context, equipmentID string, d interfaces.QuantityDelta) {
	reverted, err := u.equipment.ApplyDelta(ctx, equipmentID, inverse(d))
	if err != nil || reverted.ID == "" {
		u.log.Error("counter revert failed", zap.String("equipment_id", equipmentID), zap.Any("delta", d), zap.Error(err))
	}
}

func (u *InventoryUseCase) CreateEquipment(ctx context.Context, p entities.Principal, e entities.Equipment) (entities.Equipment, error) {
	if err := authorize(p, entities.RoleWarehouse); err != nil {
		return entities.Equipment{}, err
	}
	e.ItemCode = strings.TrimSpace(e.ItemCode)
	e.Description = strings.TrimSpace(e.Description)

	var details []string
	if e.ItemCode == "" {
		details = append(details, "item_code is required")
	}
	if e.Description == "" {
		details = append(details, "description is required")
	}
	if e.Category == "" {
		e.Category = entities.EquipmentCategoryOther
	}
	if !e.Category.Valid() {
		details = append(details, "invalid category")
	}
	if e.Unit == "" {
		e.Unit = entities.EquipmentUnitPiece
	}
	if !e.Unit.Valid() {
		details = append(details, "invalid unit")
	}
	if e.DailyRate.IsNegative() {
		details = append(details, "daily_rate must not be negative")
	}
	if len(details) > 0 {
		return entities.Equipment{}, pkg.NewValidationError(details...)
	}

	if e.QuantityAvailable == 0 && e.QuantityRented == 0 && e.QuantityMaintenance == 0 && e.QuantityDamaged == 0 {
		e.QuantityAvailable = e.QuantityTotal
	}
	if !e.Balanced() {
		return entities.Equipment{}, ErrUnbalancedEquipmentCounter
	}

	existing, err := u.equipment.GetByItemCode(ctx, e.ItemCode)
	if err != nil {
		return entities.Equipment{}, err
	}
	if existing.ID != "" {
		return entities.Equipment{}, ErrDuplicateItemCode
	}

	now := u.now().UTC()
	e.ID = documentKey(keyEquipment, strings.ToUpper(e.ItemCode))
	e.Status = entities.EquipmentStatusAvailable
	e.ApprovalStatus = entities.ApprovalStatusApproved
	e.CreatedBy = p.Actor()
	e.CreatedAt = now
	e.UpdatedAt = now

	created, err := u.equipment.Create(ctx, e)
	if errors.Is(err, interfaces.ErrAlreadyExists) {
		return entities.Equipment{}, ErrDuplicateItemCode
	}
	if err != nil {
		return entities.Equipment{}, err
	}

	h := entities.EquipmentHistory{
		ID:             newKey(),
		EquipmentID:    created.ID,
		Action:         historyCreated,
		Counter:        entities.CounterTotal,
		QuantityChange: created.QuantityTotal,
		NewQuantity:    created.QuantityTotal,
		PerformedBy:    p.Actor(),
		Reason:         "Equipment created",
		Timestamp:      now,
	}
	if err := u.history.Append(ctx, h); err != nil {
		u.log.Error("history append failed", zap.String("equipment_id", created.ID), zap.Error(err))
	}
	u.log.Info("equipment created", zap.String("item_code", created.ItemCode), zap.Int("quantity_total", created.QuantityTotal))
	return created, nil
}

func (u *InventoryUseCase) ListEquipment(ctx context.Context, p entities.Principal) ([]entities.Equipment, error) {
	if err := authorize(p, entities.RoleWarehouse, entities.RoleSales); err != nil {
		return nil, err
	}
	return u.equipment.List(ctx)
}

// Dashboard counts dispatches still out, rentals ending within a week,
// low-stock items and the items holding stock in each state.
func (u *InventoryUseCase) Dashboard(ctx context.Context, p entities.Principal) (WarehouseDashboard, error) {
	if err := authorize(p, entities.RoleWarehouse); err != nil {
		return WarehouseDashboard{}, err
	}

	var (
		d   WarehouseDashboard
		err error
	)
	if d.PendingDispatch, err = u.dispatches.CountActive(ctx); err != nil {
		return WarehouseDashboard{}, err
	}
	ending := []entities.EnquiryStatus{entities.EnquiryStatusActive, entities.EnquiryStatusExtended}
	if d.ExpectedReturns, err = u.rentals.CountEndingBy(ctx, ending, u.now().Add(returnWindow)); err != nil {
		return WarehouseDashboard{}, err
	}
	if d.LowStockItems, err = u.equipment.CountInRange(ctx, entities.CounterAvailable, 0, lowStockThreshold-1); err != nil {
		return WarehouseDashboard{}, err
	}
	if d.TotalEquipment, err = u.equipment.Count(ctx); err != nil {
		return WarehouseDashboard{}, err
	}

	states := []struct {
		name    string
		counter entities.Counter
	}{
		{"Available", entities.CounterAvailable},
		{"Rented", entities.CounterRented},
		{"Maintenance", entities.CounterMaintenance},
		{"Damaged", entities.CounterDamaged},
	}
	d.EquipmentUtilization = make([]UtilizationCount, 0, len(states))
	for _, s := range states {
		n, err := u.equipment.CountInRange(ctx, s.counter, 1, 0)
		if err != nil {
			return WarehouseDashboard{}, err
		}
		d.EquipmentUtilization = append(d.EquipmentUtilization, UtilizationCount{Status: s.name, Count: n})
	}
	return d, nil
}

func (u *InventoryUseCase) GetEquipment(ctx context.Context, p entities.Principal, id string) (entities.Equipment, error) {
	if err := authorize(p, entities.RoleWarehouse, entities.RoleSales); err != nil {
		return entities.Equipment{}, err
	}
	return u.find(ctx, id)
}

func (u *InventoryUseCase) History(ctx context.Context, p entities.Principal, equipmentID string) ([]entities.EquipmentHistory, error) {
	if err := authorize(p, entities.RoleWarehouse); err != nil {
		return nil, err
	}
	e, err := u.find(ctx, equipmentID)
	if err != nil {
		return nil, err
	}
	return u.history.ListByEquipment(ctx, e.ID)
}

// Adjust applies an add/remove/damage/repair adjustment. Damage and repair
// requested by the warehouse role wait in the pending queue for an admin.
func (u *InventoryUseCase) Adjust(ctx context.Context, p entities.Principal, req interfaces.AdjustRequest) (AdjustmentResult, error) {
	if err := authorize(p, entities.RoleWarehouse); err != nil {
		return AdjustmentResult{}, err
	}
	op, ok := adjustmentOp(req.Type, req.Quantity)
	if !ok {
		return AdjustmentResult{}, ErrInvalidAdjustmentType
	}
	if req.Quantity <= 0 {
		return AdjustmentResult{}, ErrInvalidQuantity
	}
	e, err := u.find(ctx, req.EquipmentID)
	if err != nil {
		return AdjustmentResult{}, err
	}

	if p.Role == entities.RoleWarehouse && (req.Type == entities.AdjustmentDamage || req.Type == entities.AdjustmentRepair) {
		pa := entities.PendingAdjustment{
			ID:             newKey(),
			EquipmentID:    e.ID,
			AdjustmentType: req.Type,
			Quantity:       req.Quantity,
			Reason:         strings.TrimSpace(req.Reason),
			Notes:          strings.TrimSpace(req.Notes),
			Status:         entities.PendingAdjustmentPending,
			RequestedBy:    p.Actor(),
			RequestedAt:    u.now().UTC(),
		}
		created, err := u.pending.Create(ctx, pa)
		if err != nil {
			return AdjustmentResult{}, err
		}
		u.log.Info("adjustment queued", zap.String("equipment_id", e.ID), zap.String("type", string(req.Type)), zap.Int("quantity", req.Quantity))
		return AdjustmentResult{Equipment: e, Pending: &created}, nil
	}

	updated, err := u.apply(ctx, p, e.ID, op, historyMeta{reason: req.Reason, notes: req.Notes})
	if err != nil {
		return AdjustmentResult{}, err
	}
	u.log.Info("adjustment applied", zap.String("equipment_id", e.ID), zap.String("type", string(req.Type)), zap.Int("quantity", req.Quantity))
	return AdjustmentResult{Equipment: updated}, nil
}

func (u *InventoryUseCase) ListAdjustments(ctx context.Context, p entities.Principal, status entities.PendingAdjustmentStatus) ([]entities.PendingAdjustment, error) {
	if err := authorize(p, entities.RoleWarehouse); err != nil {
		return nil, err
	}
	switch status {
	case "", entities.PendingAdjustmentPending, entities.PendingAdjustmentApproved, entities.PendingAdjustmentRejected:
	default:
		return nil, ErrInvalidAdjustmentStatus
	}
	return u.pending.List(ctx, status)
}

// ApproveAdjustment claims a queued adjustment and applies it. If the
// counters no longer allow it the claim is released and the queue row stays
// pending.
func (u *InventoryUseCase) ApproveAdjustment(ctx context.Context, p entities.Principal, id string) (AdjustmentResult, error) {
	if err := authorize(p); err != nil {
		return AdjustmentResult{}, err
	}
	pa, err := u.findAdjustment(ctx, id)
	if err != nil {
		return AdjustmentResult{}, err
	}
	op, ok := adjustmentOp(pa.AdjustmentType, pa.Quantity)
	if !ok {
		return AdjustmentResult{}, ErrInvalidAdjustmentType
	}

	t := interfaces.Transition{By: p.Actor(), At: u.now().UTC()}
	claimed, err := u.pending.Resolve(ctx, pa.ID, entities.PendingAdjustmentPending, entities.PendingAdjustmentApproved, t)
	if err != nil {
		return AdjustmentResult{}, err
	}
	if claimed.ID == "" {
		return AdjustmentResult{}, ErrAdjustmentAlreadyResolved
	}

	meta := historyMeta{approvedBy: p.Actor(), reason: pa.Reason, notes: pa.Notes}
	requester := entities.Principal{Email: pa.RequestedBy, Role: entities.RoleWarehouse}
	updated, err := u.apply(ctx, requester, pa.EquipmentID, op, meta)
	if err != nil {
		if _, rerr := u.pending.Resolve(ctx, pa.ID, entities.PendingAdjustmentApproved, entities.PendingAdjustmentPending, interfaces.Transition{}); rerr != nil {
			u.log.Error("pending adjustment release failed", zap.String("id", pa.ID), zap.Error(rerr))
		}
		return AdjustmentResult{}, err
	}
	u.log.Info("adjustment approved", zap.String("id", pa.ID), zap.String("equipment_id", pa.EquipmentID), zap.String("by", p.Actor()))
	return AdjustmentResult{Equipment: updated, Pending: &claimed}, nil
}

func (u *InventoryUseCase) RejectAdjustment(ctx context.Context, p entities.Principal, id, reason string) (entities.PendingAdjustment, error) {
	if err := authorize(p); err != nil {
		return entities.PendingAdjustment{}, err
	}
	pa, err := u.findAdjustment(ctx, id)
	if err != nil {
		return entities.PendingAdjustment{}, err
	}
	t := interfaces.Transition{By: p.Actor(), At: u.now().UTC(), Reason: strings.TrimSpace(reason)}
	rejected, err := u.pending.Resolve(ctx, pa.ID, entities.PendingAdjustmentPending, entities.PendingAdjustmentRejected, t)
	if err != nil {
		return entities.PendingAdjustment{}, err
	}
	if rejected.ID == "" {
		return entities.PendingAdjustment{}, ErrAdjustmentAlreadyResolved
	}
	return rejected, nil
}

// Dispatch moves available units to rented and opens a dispatch row for the
// contract holding them.
func (u *InventoryUseCase) Dispatch(ctx context.Context, p entities.Principal, req interfaces.DispatchRequest) (entities.Equipment, entities.EquipmentDispatch, error) {
	if err := authorize(p, entities.RoleWarehouse); err != nil {
		return entities.Equipment{}, entities.EquipmentDispatch{}, err
	}
	if req.Quantity <= 0 {
		return entities.Equipment{}, entities.EquipmentDispatch{}, ErrInvalidQuantity
	}
	contractID := strings.TrimSpace(req.ContractID)
	if contractID == "" {
		return entities.Equipment{}, entities.EquipmentDispatch{}, ErrContractRequired
	}
	e, err := u.find(ctx, req.EquipmentID)
	if err != nil {
		return entities.Equipment{}, entities.EquipmentDispatch{}, err
	}

	op := ledgerOp{
		action:  historyDispatched,
		delta:   interfaces.QuantityDelta{Available: -req.Quantity, Rented: req.Quantity},
		counter: entities.CounterAvailable,
		change:  -req.Quantity,
	}
	updated, err := u.apply(ctx, p, e.ID, op, historyMeta{contractID: contractID, notes: req.Notes})
	if err != nil {
		return entities.Equipment{}, entities.EquipmentDispatch{}, err
	}

	now := u.now().UTC()
	row := entities.EquipmentDispatch{
		ID:               newKey(),
		EquipmentID:      e.ID,
		ContractID:       contractID,
		CustomerID:       strings.TrimSpace(req.CustomerID),
		Quantity:         req.Quantity,
		OriginalQuantity: req.Quantity,
		Status:           entities.EquipmentDispatchActive,
		DispatchedBy:     p.Actor(),
		DispatchedAt:     now,
		UpdatedAt:        now,
	}
	created, err := u.dispatches.Create(ctx, row)
	if err != nil {
		u.revert(ctx, e.ID, op.delta)
		return entities.Equipment{}, entities.EquipmentDispatch{}, err
	}
	u.log.Info("equipment dispatched", zap.String("equipment_id", e.ID), zap.String("contract_id", contractID), zap.Int("quantity", req.Quantity))
	return updated, created, nil
}

// Return books units held by a contract back according to their condition
// and shrinks the matching dispatch row, closing it at zero.
func (u *InventoryUseCase) Return(ctx context.Context, p entities.Principal, req interfaces.ReturnRequest) (entities.Equipment, entities.EquipmentReturn, error) {
	if err := authorize(p, entities.RoleWarehouse); err != nil {
		return entities.Equipment{}, entities.EquipmentReturn{}, err
	}
	if req.Quantity <= 0 {
		return entities.Equipment{}, entities.EquipmentReturn{}, ErrInvalidQuantity
	}
	op, ok := returnOp(req.Condition, req.Quantity)
	if !ok {
		return entities.Equipment{}, entities.EquipmentReturn{}, ErrInvalidReturnCondition
	}
	contractID := strings.TrimSpace(req.ContractID)
	if contractID == "" {
		return entities.Equipment{}, entities.EquipmentReturn{}, ErrContractRequired
	}
	e, err := u.find(ctx, req.EquipmentID)
	if err != nil {
		return entities.Equipment{}, entities.EquipmentReturn{}, err
	}

	rows, err := u.dispatches.ListActive(ctx, e.ID, contractID)
	if err != nil {
		return entities.Equipment{}, entities.EquipmentReturn{}, err
	}
	if len(rows) == 0 {
		return entities.Equipment{}, entities.EquipmentReturn{}, ErrNoActiveDispatch
	}
	var row entities.EquipmentDispatch
	for _, r := range rows {
		if r.Quantity >= req.Quantity {
			row = r
			break
		}
	}
	if row.ID == "" {
		return entities.Equipment{}, entities.EquipmentReturn{}, ErrReturnExceedsDispatch
	}

	now := u.now().UTC()
	reduced, err := u.dispatches.Reduce(ctx, row.ID, req.Quantity, now)
	if err != nil {
		return entities.Equipment{}, entities.EquipmentReturn{}, err
	}
	if reduced.ID == "" {
		return entities.Equipment{}, entities.EquipmentReturn{}, ErrReturnExceedsDispatch
	}

	updated, err := u.apply(ctx, p, e.ID, op, historyMeta{contractID: contractID, notes: req.Notes})
	if err != nil {
		if _, rerr := u.dispatches.Restore(ctx, row.ID, req.Quantity, now); rerr != nil {
			u.log.Error("dispatch restore failed", zap.String("dispatch_id", row.ID), zap.Error(rerr))
		}
		return entities.Equipment{}, entities.EquipmentReturn{}, err
	}

	if reduced.Quantity <= 0 {
		if _, err := u.dispatches.Complete(ctx, row.ID, now); err != nil {
			u.log.Error("dispatch completion failed", zap.String("dispatch_id", row.ID), zap.Error(err))
		}
	}

	ret := entities.EquipmentReturn{
		ID:          newKey(),
		EquipmentID: e.ID,
		ContractID:  contractID,
		DispatchID:  row.ID,
		Quantity:    req.Quantity,
		Condition:   req.Condition,
		Notes:       strings.TrimSpace(req.Notes),
		ProcessedBy: p.Actor(),
		ReturnedAt:  now,
	}
	created, err := u.returns.Create(ctx, ret)
	if err != nil {
		u.log.Error("return record failed", zap.String("equipment_id", e.ID), zap.Error(err))
		created = ret
	}
	u.log.Info("equipment returned",
		zap.String("equipment_id", e.ID),
		zap.String("contract_id", contractID),
		zap.Int("quantity", req.Quantity),
		zap.String("condition", string(req.Condition)),
	)
	return updated, created, nil
}

func (u *InventoryUseCase) ListDispatches(ctx context.Context, p entities.Principal, equipmentID string) ([]entities.EquipmentDispatch, error) {
	if err := authorize(p, entities.RoleWarehouse); err != nil {
		return nil, err
	}
	e, err := u.find(ctx, equipmentID)
	if err != nil {
		return nil, err
	}
	return u.dispatches.ListByEquipment(ctx, e.ID)
}

func (u *InventoryUseCase) ListReturns(ctx context.Context, p entities.Principal, equipmentID string) ([]entities.EquipmentReturn, error) {
	if err := authorize(p, entities.RoleWarehouse); err != nil {
		return nil, err
	}
	equipmentID = strings.TrimSpace(equipmentID)
	if equipmentID != "" {
		e, err := u.find(ctx, equipmentID)
		if err != nil {
			return nil, err
		}
		equipmentID = e.ID
	}
	return u.returns.List(ctx, equipmentID)
}

// find resolves equipment by store key or item code.
func (u *InventoryUseCase) find(ctx context.Context, id string) (entities.Equipment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Equipment{}, ErrInvalidEquipmentID
	}
	e, err := u.equipment.GetByID(ctx, id)
	if err != nil {
		return entities.Equipment{}, err
	}
	if e.ID == "" {
		if e, err = u.equipment.GetByItemCode(ctx, id); err != nil {
			return entities.Equipment{}, err
		}
	}
	if e.ID == "" {
		return entities.Equipment{}, ErrEquipmentNotFound
	}
	return e, nil
}

func (u *InventoryUseCase) findAdjustment(ctx context.Context, id string) (entities.PendingAdjustment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.PendingAdjustment{}, ErrAdjustmentNotFound
	}
	pa, err := u.pending.GetByID(ctx, id)
	if err != nil {
		return entities.PendingAdjustment{}, err
	}
	if pa.ID == "" {
		return entities.PendingAdjustment{}, ErrAdjustmentNotFound
	}
	return pa, nil
}
