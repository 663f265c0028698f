package repository

import (
	"context"
	"time"

	"rental_backend/internal/adapter/persistence/docstore"
	"rental_backend/internal/domain/entities"
	"rental_backend/internal/usecase/interfaces"
)

type equipmentItem struct {
	ID                  string `dynamodbav:"id"`
	ItemCode            string `dynamodbav:"item_code"`
	Description         string `dynamodbav:"description"`
	Category            string `dynamodbav:"category"`
	Unit                string `dynamodbav:"unit"`
	DailyRate           string `dynamodbav:"daily_rate"`
	QuantityTotal       int    `dynamodbav:"quantity_total"`
	QuantityAvailable   int    `dynamodbav:"quantity_available"`
	QuantityRented      int    `dynamodbav:"quantity_rented"`
	QuantityMaintenance int    `dynamodbav:"quantity_maintenance"`
	QuantityDamaged     int    `dynamodbav:"quantity_damaged"`
	Location            string `dynamodbav:"location"`
	Status              string `dynamodbav:"status"`
	ApprovalStatus      string `dynamodbav:"approval_status"`
	CreatedBy           string `dynamodbav:"created_by"`
	CreatedAt           string `dynamodbav:"created_at"`
	UpdatedAt           string `dynamodbav:"updated_at"`
}

// EquipmentRepository owns the quantity counters. Every counter change goes
// through ApplyDelta.
type EquipmentRepository struct {
	coll docstore.Collection
	now  func() time.Time
}

var _ interfaces.IEquipmentRepository = (*EquipmentRepository)(nil)

func NewEquipmentRepository(store docstore.Store) *EquipmentRepository {
	return &EquipmentRepository{coll: store.Collection(CollectionEquipment), now: time.Now}
}

func (r *EquipmentRepository) Create(ctx context.Context, e entities.Equipment) (entities.Equipment, error) {
	if err := insertOne(ctx, r.coll, toEquipmentItem(e)); err != nil {
		return entities.Equipment{}, err
	}
	return e, nil
}

func (r *EquipmentRepository) GetByID(ctx context.Context, id string) (entities.Equipment, error) {
	return findOne(ctx, r.coll, docstore.ByID(id), fromEquipmentItem)
}

func (r *EquipmentRepository) GetByItemCode(ctx context.Context, itemCode string) (entities.Equipment, error) {
	return findOne(ctx, r.coll, docstore.Where(docstore.Eq("item_code", itemCode)), fromEquipmentItem)
}

func (r *EquipmentRepository) List(ctx context.Context) ([]entities.Equipment, error) {
	return findAll(ctx, r.coll, nil, fromEquipmentItem)
}

func (r *EquipmentRepository) Count(ctx context.Context) (int, error) {
	return r.coll.CountDocuments(ctx, nil)
}

func (r *EquipmentRepository) CountInRange(ctx context.Context, c entities.Counter, lo, hi int) (int, error) {
	f := docstore.Where(docstore.Gte(string(c), lo))
	if hi >= lo {
		f = f.And(docstore.Lte(string(c), hi))
	}
	return r.coll.CountDocuments(ctx, f)
}

func (r *EquipmentRepository) ApplyDelta(ctx context.Context, id string, d interfaces.QuantityDelta) (entities.Equipment, error) {
	f := docstore.ByID(id)
	u := docstore.NewUpdate().Set("updated_at", formatTime(r.now()))
	for _, c := range []struct {
		field entities.Counter
		delta int
	}{
		{entities.CounterTotal, d.Total},
		{entities.CounterAvailable, d.Available},
		{entities.CounterRented, d.Rented},
		{entities.CounterMaintenance, d.Maintenance},
		{entities.CounterDamaged, d.Damaged},
	} {
		if c.delta == 0 {
			continue
		}
		if c.delta < 0 {
			f = f.And(docstore.Gte(string(c.field), -c.delta))
		}
		u.Inc(string(c.field), c.delta)
	}
	return updateOne(ctx, r.coll, f, u, fromEquipmentItem)
}

func toEquipmentItem(e entities.Equipment) equipmentItem {
	return equipmentItem{
		ID:                  e.ID,
		ItemCode:            e.ItemCode,
		Description:         e.Description,
		Category:            string(e.Category),
		Unit:                string(e.Unit),
		DailyRate:           formatMoney(e.DailyRate),
		QuantityTotal:       e.QuantityTotal,
		QuantityAvailable:   e.QuantityAvailable,
		QuantityRented:      e.QuantityRented,
		QuantityMaintenance: e.QuantityMaintenance,
		QuantityDamaged:     e.QuantityDamaged,
		Location:            e.Location,
		Status:              string(e.Status),
		ApprovalStatus:      string(e.ApprovalStatus),
		CreatedBy:           e.CreatedBy,
		CreatedAt:           formatTime(e.CreatedAt),
		UpdatedAt:           formatTime(e.UpdatedAt),
	}
}

func fromEquipmentItem(it equipmentItem) entities.Equipment {
	return entities.Equipment{
		ID:                  it.ID,
		ItemCode:            it.ItemCode,
		Description:         it.Description,
		Category:            entities.EquipmentCategory(it.Category),
		Unit:                entities.EquipmentUnit(it.Unit),
		DailyRate:           parseMoney(it.DailyRate),
		QuantityTotal:       it.QuantityTotal,
		QuantityAvailable:   it.QuantityAvailable,
		QuantityRented:      it.QuantityRented,
		QuantityMaintenance: it.QuantityMaintenance,
		QuantityDamaged:     it.QuantityDamaged,
		Location:            it.Location,
		Status:              entities.EquipmentStatus(it.Status),
		ApprovalStatus:      entities.ApprovalStatus(it.ApprovalStatus),
		CreatedBy:           it.CreatedBy,
		CreatedAt:           parseTime(it.CreatedAt),
		UpdatedAt:           parseTime(it.UpdatedAt),
	}
}
