package entities

import (
	"time"

	"github.com/shopspring/decimal"
)

type EquipmentCategory string

const (
	EquipmentCategoryScaffolding EquipmentCategory = "scaffolding"
	EquipmentCategoryFormwork    EquipmentCategory = "formwork"
	EquipmentCategoryShoring     EquipmentCategory = "shoring"
	EquipmentCategorySafety      EquipmentCategory = "safety"
	EquipmentCategoryTools       EquipmentCategory = "tools"
	EquipmentCategoryOther       EquipmentCategory = "other"
)

func (c EquipmentCategory) Valid() bool {
	switch c {
	case EquipmentCategoryScaffolding, EquipmentCategoryFormwork, EquipmentCategoryShoring,
		EquipmentCategorySafety, EquipmentCategoryTools, EquipmentCategoryOther:
		return true
	}
	return false
}

type EquipmentUnit string

const (
	EquipmentUnitPiece EquipmentUnit = "piece"
	EquipmentUnitSet   EquipmentUnit = "set"
	EquipmentUnitMeter EquipmentUnit = "meter"
	EquipmentUnitKg    EquipmentUnit = "kg"
	EquipmentUnitTon   EquipmentUnit = "ton"
)

func (u EquipmentUnit) Valid() bool {
	switch u {
	case EquipmentUnitPiece, EquipmentUnitSet, EquipmentUnitMeter, EquipmentUnitKg, EquipmentUnitTon:
		return true
	}
	return false
}

type EquipmentStatus string

const (
	EquipmentStatusAvailable   EquipmentStatus = "available"
	EquipmentStatusRented      EquipmentStatus = "rented"
	EquipmentStatusMaintenance EquipmentStatus = "maintenance"
	EquipmentStatusDamaged     EquipmentStatus = "damaged"
	EquipmentStatusScrapped    EquipmentStatus = "scrapped"
)

// Equipment is a stock-keeping unit with its quantity counters.
//
// Invariant: available + rented + maintenance + damaged == total, all >= 0.
type Equipment struct {
	ID                  string            `json:"id"`
	ItemCode            string            `json:"item_code"`
	Description         string            `json:"description"`
	Category            EquipmentCategory `json:"category"`
	Unit                EquipmentUnit     `json:"unit"`
	DailyRate           decimal.Decimal   `json:"daily_rate"`
	QuantityTotal       int               `json:"quantity_total"`
	QuantityAvailable   int               `json:"quantity_available"`
	QuantityRented      int               `json:"quantity_rented"`
	QuantityMaintenance int               `json:"quantity_maintenance"`
	QuantityDamaged     int               `json:"quantity_damaged"`
	Location            string            `json:"location"`
	Status              EquipmentStatus   `json:"status"`
	ApprovalStatus      ApprovalStatus    `json:"approval_status"`
	CreatedBy           string            `json:"created_by"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

// Balanced reports whether the counters satisfy the ledger invariant.
func (e Equipment) Balanced() bool {
	if e.QuantityTotal < 0 || e.QuantityAvailable < 0 || e.QuantityRented < 0 ||
		e.QuantityMaintenance < 0 || e.QuantityDamaged < 0 {
		return false
	}
	return e.QuantityAvailable+e.QuantityRented+e.QuantityMaintenance+e.QuantityDamaged == e.QuantityTotal
}

// Counter names the quantity attribute a ledger operation reports on.
type Counter string

const (
	CounterTotal       Counter = "quantity_total"
	CounterAvailable   Counter = "quantity_available"
	CounterRented      Counter = "quantity_rented"
	CounterMaintenance Counter = "quantity_maintenance"
	CounterDamaged     Counter = "quantity_damaged"
)

// Value returns the current value of c.
func (e Equipment) Value(c Counter) int {
	switch c {
	case CounterTotal:
		return e.QuantityTotal
	case CounterAvailable:
		return e.QuantityAvailable
	case CounterRented:
		return e.QuantityRented
	case CounterMaintenance:
		return e.QuantityMaintenance
	case CounterDamaged:
		return e.QuantityDamaged
	}
	return 0
}

type AdjustmentType string

const (
	AdjustmentAdd    AdjustmentType = "add"
	AdjustmentRemove AdjustmentType = "remove"
	AdjustmentDamage AdjustmentType = "damage"
	AdjustmentRepair AdjustmentType = "repair"
)

func (t AdjustmentType) Valid() bool {
	switch t {
	case AdjustmentAdd, AdjustmentRemove, AdjustmentDamage, AdjustmentRepair:
		return true
	}
	return false
}

type ReturnCondition string

const (
	ReturnGood    ReturnCondition = "good"
	ReturnDamaged ReturnCondition = "damaged"
	ReturnLost    ReturnCondition = "lost"
)

func (c ReturnCondition) Valid() bool {
	switch c {
	case ReturnGood, ReturnDamaged, ReturnLost:
		return true
	}
	return false
}

// EquipmentHistory is an append-only ledger entry. PreviousQuantity and
// NewQuantity refer to the counter named by Counter.
type EquipmentHistory struct {
	ID               string    `json:"id"`
	EquipmentID      string    `json:"equipment_id"`
	Action           string    `json:"action"`
	Counter          Counter   `json:"counter"`
	QuantityChange   int       `json:"quantity_change"`
	PreviousQuantity int       `json:"previous_quantity"`
	NewQuantity      int       `json:"new_quantity"`
	ContractID       string    `json:"contract_id,omitempty"`
	PerformedBy      string    `json:"performed_by"`
	ApprovedBy       string    `json:"approved_by,omitempty"`
	Reason           string    `json:"reason"`
	Notes            string    `json:"notes,omitempty"`
	Timestamp        time.Time `json:"timestamp"`
}

type PendingAdjustmentStatus string

const (
	PendingAdjustmentPending  PendingAdjustmentStatus = "pending"
	PendingAdjustmentApproved PendingAdjustmentStatus = "approved"
	PendingAdjustmentRejected PendingAdjustmentStatus = "rejected"
)

// PendingAdjustment is a warehouse-requested adjustment awaiting an admin.
type PendingAdjustment struct {
	ID             string                  `json:"id"`
	EquipmentID    string                  `json:"equipment_id"`
	AdjustmentType AdjustmentType          `json:"adjustment_type"`
	Quantity       int                     `json:"quantity"`
	Reason         string                  `json:"reason"`
	Notes          string                  `json:"notes"`
	Status         PendingAdjustmentStatus `json:"status"`
	RequestedBy    string                  `json:"requested_by"`
	RequestedAt    time.Time               `json:"requested_at"`
	ResolvedBy     string                  `json:"resolved_by"`
	ResolvedAt     time.Time               `json:"resolved_at"`
}

type EquipmentDispatchStatus string

const (
	EquipmentDispatchActive    EquipmentDispatchStatus = "active"
	EquipmentDispatchCompleted EquipmentDispatchStatus = "completed"
)

// EquipmentDispatch records units of one equipment held by one contract.
// Quantity is the number of units still out.
type EquipmentDispatch struct {
	ID               string                  `json:"id"`
	EquipmentID      string                  `json:"equipment_id"`
	ContractID       string                  `json:"contract_id"`
	CustomerID       string                  `json:"customer_id"`
	Quantity         int                     `json:"quantity"`
	OriginalQuantity int                     `json:"original_quantity"`
	Status           EquipmentDispatchStatus `json:"status"`
	DispatchedBy     string                  `json:"dispatched_by"`
	DispatchedAt     time.Time               `json:"dispatched_at"`
	CompletedAt      time.Time               `json:"completed_at"`
	UpdatedAt        time.Time               `json:"updated_at"`
}

// EquipmentReturn is the audit record of a processed return.
type EquipmentReturn struct {
	ID          string          `json:"id"`
	EquipmentID string          `json:"equipment_id"`
	ContractID  string          `json:"contract_id"`
	DispatchID  string          `json:"dispatch_id"`
	Quantity    int             `json:"quantity"`
	Condition   ReturnCondition `json:"condition"`
	Notes       string          `json:"notes"`
	ProcessedBy string          `json:"processed_by"`
	ReturnedAt  time.Time       `json:"returned_at"`
}
