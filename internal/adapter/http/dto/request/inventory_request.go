package request

import (
	"strings"

	"rental_backend/internal/domain/entities"
	"rental_backend/internal/usecase/interfaces"

	"github.com/shopspring/decimal"
)

// EquipmentRequest registers a new stock-keeping unit. All units start
// available.
type EquipmentRequest struct {
	ItemCode      string          `json:"item_code" binding:"required"`
	Description   string          `json:"description" binding:"required"`
	Category      string          `json:"category"`
	Unit          string          `json:"unit"`
	DailyRate     decimal.Decimal `json:"daily_rate"`
	QuantityTotal int             `json:"quantity_total" binding:"gte=0"`
	Location      string          `json:"location"`
}

func (r EquipmentRequest) ToEntity() entities.Equipment {
	return entities.Equipment{
		ItemCode:      strings.TrimSpace(r.ItemCode),
		Description:   strings.TrimSpace(r.Description),
		Category:      entities.EquipmentCategory(strings.ToLower(strings.TrimSpace(r.Category))),
		Unit:          entities.EquipmentUnit(strings.ToLower(strings.TrimSpace(r.Unit))),
		DailyRate:     r.DailyRate,
		QuantityTotal: r.QuantityTotal,
		Location:      r.Location,
	}
}

type AdjustRequest struct {
	AdjustmentType string `json:"adjustment_type" binding:"required"`
	Quantity       int    `json:"quantity" binding:"required"`
	Reason         string `json:"reason" binding:"required"`
	Notes          string `json:"notes"`
}

func (r AdjustRequest) ToCommand(equipmentID string) interfaces.AdjustRequest {
	return interfaces.AdjustRequest{
		EquipmentID: equipmentID,
		Type:        entities.AdjustmentType(strings.ToLower(strings.TrimSpace(r.AdjustmentType))),
		Quantity:    r.Quantity,
		Reason:      strings.TrimSpace(r.Reason),
		Notes:       r.Notes,
	}
}

type DispatchRequest struct {
	ContractID string `json:"contract_id" binding:"required"`
	CustomerID string `json:"customer_id"`
	Quantity   int    `json:"quantity" binding:"required"`
	Notes      string `json:"notes"`
}

func (r DispatchRequest) ToCommand(equipmentID string) interfaces.DispatchRequest {
	return interfaces.DispatchRequest{
		EquipmentID: equipmentID,
		ContractID:  strings.TrimSpace(r.ContractID),
		CustomerID:  strings.TrimSpace(r.CustomerID),
		Quantity:    r.Quantity,
		Notes:       r.Notes,
	}
}

// ReturnRequest brings dispatched units back. EquipmentID is read from the
// path when the route carries one.
type ReturnRequest struct {
	EquipmentID string `json:"equipment_id"`
	ContractID  string `json:"contract_id" binding:"required"`
	Quantity    int    `json:"quantity" binding:"required"`
	Condition   string `json:"condition"`
	Notes       string `json:"notes"`
}

func (r ReturnRequest) ToCommand(equipmentID string) interfaces.ReturnRequest {
	if equipmentID == "" {
		equipmentID = strings.TrimSpace(r.EquipmentID)
	}
	condition := entities.ReturnCondition(strings.ToLower(strings.TrimSpace(r.Condition)))
	if condition == "" {
		condition = entities.ReturnGood
	}
	return interfaces.ReturnRequest{
		EquipmentID: equipmentID,
		ContractID:  strings.TrimSpace(r.ContractID),
		Quantity:    r.Quantity,
		Condition:   condition,
		Notes:       r.Notes,
	}
}

// OrderDispatchRequest sends an approved sales order out of the warehouse.
type OrderDispatchRequest struct {
	SalesOrderID string `json:"sales_order_id" binding:"required"`
}
