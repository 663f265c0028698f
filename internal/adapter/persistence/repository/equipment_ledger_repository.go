package repository

import (
	"context"
	"time"

	"rental_backend/internal/adapter/persistence/docstore"
	"rental_backend/internal/domain/entities"
	"rental_backend/internal/usecase/interfaces"
)

type equipmentHistoryItem struct {
	ID               string `dynamodbav:"id"`
	EquipmentID      string `dynamodbav:"equipment_id"`
	Action           string `dynamodbav:"action"`
	Counter          string `dynamodbav:"counter"`
	QuantityChange   int    `dynamodbav:"quantity_change"`
	PreviousQuantity int    `dynamodbav:"previous_quantity"`
	NewQuantity      int    `dynamodbav:"new_quantity"`
	ContractID       string `dynamodbav:"contract_id"`
	PerformedBy      string `dynamodbav:"performed_by"`
	ApprovedBy       string `dynamodbav:"approved_by"`
	Reason           string `dynamodbav:"reason"`
	Notes            string `dynamodbav:"notes"`
	Timestamp        string `dynamodbav:"timestamp"`
}

// EquipmentHistoryRepository is append only.
type EquipmentHistoryRepository struct {
	coll docstore.Collection
}

var _ interfaces.IEquipmentHistoryRepository = (*EquipmentHistoryRepository)(nil)

func NewEquipmentHistoryRepository(store docstore.Store) *EquipmentHistoryRepository {
	return &EquipmentHistoryRepository{coll: store.Collection(CollectionEquipmentHistory)}
}

func (r *EquipmentHistoryRepository) Append(ctx context.Context, h entities.EquipmentHistory) error {
	return insertOne(ctx, r.coll, equipmentHistoryItem{
		ID:               h.ID,
		EquipmentID:      h.EquipmentID,
		Action:           h.Action,
		Counter:          string(h.Counter),
		QuantityChange:   h.QuantityChange,
		PreviousQuantity: h.PreviousQuantity,
		NewQuantity:      h.NewQuantity,
		ContractID:       h.ContractID,
		PerformedBy:      h.PerformedBy,
		ApprovedBy:       h.ApprovedBy,
		Reason:           h.Reason,
		Notes:            h.Notes,
		Timestamp:        formatTime(h.Timestamp),
	})
}

func (r *EquipmentHistoryRepository) ListByEquipment(ctx context.Context, equipmentID string) ([]entities.EquipmentHistory, error) {
	return findAll(ctx, r.coll, docstore.Where(docstore.Eq("equipment_id", equipmentID)), func(it equipmentHistoryItem) entities.EquipmentHistory {
		return entities.EquipmentHistory{
			ID:               it.ID,
			EquipmentID:      it.EquipmentID,
			Action:           it.Action,
			Counter:          entities.Counter(it.Counter),
			QuantityChange:   it.QuantityChange,
			PreviousQuantity: it.PreviousQuantity,
			NewQuantity:      it.NewQuantity,
			ContractID:       it.ContractID,
			PerformedBy:      it.PerformedBy,
			ApprovedBy:       it.ApprovedBy,
			Reason:           it.Reason,
			Notes:            it.Notes,
			Timestamp:        parseTime(it.Timestamp),
		}
	})
}

type pendingAdjustmentItem struct {
	ID             string `dynamodbav:"id"`
	EquipmentID    string `dynamodbav:"equipment_id"`
	AdjustmentType string `dynamodbav:"adjustment_type"`
	Quantity       int    `dynamodbav:"quantity"`
	Reason         string `dynamodbav:"reason"`
	Notes          string `dynamodbav:"notes"`
	Status         string `dynamodbav:"status"`
	RequestedBy    string `dynamodbav:"requested_by"`
	RequestedAt    string `dynamodbav:"requested_at"`
	ResolvedBy     string `dynamodbav:"resolved_by"`
	ResolvedAt     string `dynamodbav:"resolved_at"`
}

type PendingAdjustmentRepository struct {
	coll docstore.Collection
}

var _ interfaces.IPendingAdjustmentRepository = (*PendingAdjustmentRepository)(nil)

func NewPendingAdjustmentRepository(store docstore.Store) *PendingAdjustmentRepository {
	return &PendingAdjustmentRepository{coll: store.Collection(CollectionPendingAdjustments)}
}

func (r *PendingAdjustmentRepository) Create(ctx context.Context, p entities.PendingAdjustment) (entities.PendingAdjustment, error) {
	if err := insertOne(ctx, r.coll, toPendingAdjustmentItem(p)); err != nil {
		return entities.PendingAdjustment{}, err
	}
	return p, nil
}

func (r *PendingAdjustmentRepository) GetByID(ctx context.Context, id string) (entities.PendingAdjustment, error) {
	return findOne(ctx, r.coll, docstore.ByID(id), fromPendingAdjustmentItem)
}

func (r *PendingAdjustmentRepository) List(ctx context.Context, status entities.PendingAdjustmentStatus) ([]entities.PendingAdjustment, error) {
	return findAll(ctx, r.coll, statusFilter("status", status), fromPendingAdjustmentItem)
}

// Resolve moves an adjustment from one status to another. Moving back to
// pending clears the resolution fields.
func (r *PendingAdjustmentRepository) Resolve(ctx context.Context, id string, from, to entities.PendingAdjustmentStatus, t interfaces.Transition) (entities.PendingAdjustment, error) {
	u := docstore.NewUpdate().Set("status", to)
	if to == entities.PendingAdjustmentPending {
		u.Set("resolved_by", "").Set("resolved_at", "")
	} else {
		u.Set("resolved_by", t.By).Set("resolved_at", formatTime(t.At))
	}
	f := docstore.ByID(id).And(docstore.Eq("status", from))
	return updateOne(ctx, r.coll, f, u, fromPendingAdjustmentItem)
}

func toPendingAdjustmentItem(p entities.PendingAdjustment) pendingAdjustmentItem {
	return pendingAdjustmentItem{
		ID:             p.ID,
		EquipmentID:    p.EquipmentID,
		AdjustmentType: string(p.AdjustmentType),
		Quantity:       p.Quantity,
		Reason:         p.Reason,
		Notes:          p.Notes,
		Status:         string(p.Status),
		RequestedBy:    p.RequestedBy,
		RequestedAt:    formatTime(p.RequestedAt),
		ResolvedBy:     p.ResolvedBy,
		ResolvedAt:     formatTime(p.ResolvedAt),
	}
}

func fromPendingAdjustmentItem(it pendingAdjustmentItem) entities.PendingAdjustment {
	return entities.PendingAdjustment{
		ID:             it.ID,
		EquipmentID:    it.EquipmentID,
		AdjustmentType: entities.AdjustmentType(it.AdjustmentType),
		Quantity:       it.Quantity,
		Reason:         it.Reason,
		Notes:          it.Notes,
		Status:         entities.PendingAdjustmentStatus(it.Status),
		RequestedBy:    it.RequestedBy,
		RequestedAt:    parseTime(it.RequestedAt),
		ResolvedBy:     it.ResolvedBy,
		ResolvedAt:     parseTime(it.ResolvedAt),
	}
}

type equipmentDispatchItem struct {
	ID               string `dynamodbav:"id"`
	EquipmentID      string `dynamodbav:"equipment_id"`
	ContractID       string `dynamodbav:"contract_id"`
	CustomerID       string `dynamodbav:"customer_id"`
	Quantity         int    `dynamodbav:"quantity"`
	OriginalQuantity int    `dynamodbav:"original_quantity"`
	Status           string `dynamodbav:"status"`
	DispatchedBy     string `dynamodbav:"dispatched_by"`
	DispatchedAt     string `dynamodbav:"dispatched_at"`
	CompletedAt      string `dynamodbav:"completed_at"`
	UpdatedAt        string `dynamodbav:"updated_at"`
}

// EquipmentDispatchRepository tracks units held by contracts.
type EquipmentDispatchRepository struct {
	coll docstore.Collection
}

var _ interfaces.IEquipmentDispatchRepository = (*EquipmentDispatchRepository)(nil)

func NewEquipmentDispatchRepository(store docstore.Store) *EquipmentDispatchRepository {
	return &EquipmentDispatchRepository{coll: store.Collection(CollectionEquipmentDispatch)}
}

func (r *EquipmentDispatchRepository) Create(ctx context.Context, d entities.EquipmentDispatch) (entities.EquipmentDispatch, error) {
	if err := insertOne(ctx, r.coll, toEquipmentDispatchItem(d)); err != nil {
		return entities.EquipmentDispatch{}, err
	}
	return d, nil
}

func (r *EquipmentDispatchRepository) GetByID(ctx context.Context, id string) (entities.EquipmentDispatch, error) {
	return findOne(ctx, r.coll, docstore.ByID(id), fromEquipmentDispatchItem)
}

func (r *EquipmentDispatchRepository) ListActive(ctx context.Context, equipmentID, contractID string) ([]entities.EquipmentDispatch, error) {
	f := docstore.Where(
		docstore.Eq("equipment_id", equipmentID),
		docstore.Eq("status", entities.EquipmentDispatchActive),
	)
	if contractID != "" {
		f = f.And(docstore.Eq("contract_id", contractID))
	}
	return findAll(ctx, r.coll, f, fromEquipmentDispatchItem)
}

func (r *EquipmentDispatchRepository) CountActive(ctx context.Context) (int, error) {
	return r.coll.CountDocuments(ctx, docstore.Where(docstore.Eq("status", entities.EquipmentDispatchActive)))
}

func (r *EquipmentDispatchRepository) ListByEquipment(ctx context.Context, equipmentID string) ([]entities.EquipmentDispatch, error) {
	return findAll(ctx, r.coll, docstore.Where(docstore.Eq("equipment_id", equipmentID)), fromEquipmentDispatchItem)
}

func (r *EquipmentDispatchRepository) Reduce(ctx context.Context, id string, q int, at time.Time) (entities.EquipmentDispatch, error) {
	f := docstore.ByID(id).And(
		docstore.Eq("status", entities.EquipmentDispatchActive),
		docstore.Gte("quantity", q),
	)
	u := docstore.NewUpdate().Inc("quantity", -q).Set("updated_at", formatTime(at))
	return updateOne(ctx, r.coll, f, u, fromEquipmentDispatchItem)
}

func (r *EquipmentDispatchRepository) Restore(ctx context.Context, id string, q int, at time.Time) (entities.EquipmentDispatch, error) {
	f := docstore.ByID(id).And(docstore.Eq("status", entities.EquipmentDispatchActive))
	u := docstore.NewUpdate().Inc("quantity", q).Set("updated_at", formatTime(at))
	return updateOne(ctx, r.coll, f, u, fromEquipmentDispatchItem)
}

func (r *EquipmentDispatchRepository) Complete(ctx context.Context, id string, at time.Time) (entities.EquipmentDispatch, error) {
	f := docstore.ByID(id).And(
		docstore.Eq("status", entities.EquipmentDispatchActive),
		docstore.Lte("quantity", 0),
	)
	u := docstore.NewUpdate().
		Set("status", entities.EquipmentDispatchCompleted).
		Set("completed_at", formatTime(at)).
		Set("updated_at", formatTime(at))
	return updateOne(ctx, r.coll, f, u, fromEquipmentDispatchItem)
}

func toEquipmentDispatchItem(d entities.EquipmentDispatch) equipmentDispatchItem {
	return equipmentDispatchItem{
		ID:               d.ID,
		EquipmentID:      d.EquipmentID,
		ContractID:       d.ContractID,
		CustomerID:       d.CustomerID,
		Quantity:         d.Quantity,
		OriginalQuantity: d.OriginalQuantity,
		Status:           string(d.Status),
		DispatchedBy:     d.DispatchedBy,
		DispatchedAt:     formatTime(d.DispatchedAt),
		CompletedAt:      formatTime(d.CompletedAt),
		UpdatedAt:        formatTime(d.UpdatedAt),
	}
}

func fromEquipmentDispatchItem(it equipmentDispatchItem) entities.EquipmentDispatch {
	return entities.EquipmentDispatch{
		ID:               it.ID,
		EquipmentID:      it.EquipmentID,
		ContractID:       it.ContractID,
		CustomerID:       it.CustomerID,
		Quantity:         it.Quantity,
		OriginalQuantity: it.OriginalQuantity,
		Status:           entities.EquipmentDispatchStatus(it.Status),
		DispatchedBy:     it.DispatchedBy,
		DispatchedAt:     parseTime(it.DispatchedAt),
		CompletedAt:      parseTime(it.CompletedAt),
		UpdatedAt:        parseTime(it.UpdatedAt),
	}
}

type equipmentReturnItem struct {
	ID          string `dynamodbav:"id"`
	EquipmentID string `dynamodbav:"equipment_id"`
	ContractID  string `dynamodbav:"contract_id"`
	DispatchID  string `dynamodbav:"dispatch_id"`
	Quantity    int    `dynamodbav:"quantity"`
	Condition   string `dynamodbav:"condition"`
	Notes       string `dynamodbav:"notes"`
	ProcessedBy string `dynamodbav:"processed_by"`
	ReturnedAt  string `dynamodbav:"returned_at"`
}

type EquipmentReturnRepository struct {
	coll docstore.Collection
}

var _ interfaces.IEquipmentReturnRepository = (*EquipmentReturnRepository)(nil)

func NewEquipmentReturnRepository(store docstore.Store) *EquipmentReturnRepository {
	return &EquipmentReturnRepository{coll: store.Collection(CollectionEquipmentReturns)}
}

func (r *EquipmentReturnRepository) Create(ctx context.Context, ret entities.EquipmentReturn) (entities.EquipmentReturn, error) {
	err := insertOne(ctx, r.coll, equipmentReturnItem{
		ID:          ret.ID,
		EquipmentID: ret.EquipmentID,
		ContractID:  ret.ContractID,
		DispatchID:  ret.DispatchID,
		Quantity:    ret.Quantity,
		Condition:   string(ret.Condition),
		Notes:       ret.Notes,
		ProcessedBy: ret.ProcessedBy,
		ReturnedAt:  formatTime(ret.ReturnedAt),
	})
	if err != nil {
		return entities.EquipmentReturn{}, err
	}
	return ret, nil
}

// List returns every return, or only those of equipmentID when it is set.
func (r *EquipmentReturnRepository) List(ctx context.Context, equipmentID string) ([]entities.EquipmentReturn, error) {
	var f docstore.Filter
	if equipmentID != "" {
		f = docstore.Where(docstore.Eq("equipment_id", equipmentID))
	}
	return findAll(ctx, r.coll, f, func(it equipmentReturnItem) entities.EquipmentReturn {
		return entities.EquipmentReturn{
			ID:          it.ID,
			EquipmentID: it.EquipmentID,
			ContractID:  it.ContractID,
			DispatchID:  it.DispatchID,
			Quantity:    it.Quantity,
			Condition:   entities.ReturnCondition(it.Condition),
			Notes:       it.Notes,
			ProcessedBy: it.ProcessedBy,
			ReturnedAt:  parseTime(it.ReturnedAt),
		}
	})
}
