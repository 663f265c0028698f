package interfaces

//go:generate mockgen -source=inventory_ledger_interface.go -destination=mocks/mock_inventory_ledger_interface.go -package=mocks

import (
	"context"

	"rental_backend/internal/domain/entities"
)

// AdjustRequest changes the counters of one equipment item.
type AdjustRequest struct {
	EquipmentID string
	Type        entities.AdjustmentType
	Quantity    int
	Reason      string
	Notes       string
}

// DispatchRequest commits available units of one equipment item to a contract.
type DispatchRequest struct {
	EquipmentID string
	ContractID  string
	CustomerID  string
	Quantity    int
	Notes       string
}

// ReturnRequest brings units held by a contract back into stock.
type ReturnRequest struct {
	EquipmentID string
	ContractID  string
	Quantity    int
	Condition   entities.ReturnCondition
	Notes       string
}

// IInventoryLedger is the part of the inventory ledger the warehouse
// workflow drives.
type IInventoryLedger interface {
	Dispatch(ctx context.Context, p entities.Principal, req DispatchRequest) (entities.Equipment, entities.EquipmentDispatch, error)
	Return(ctx context.Context, p entities.Principal, req ReturnRequest) (entities.Equipment, entities.EquipmentReturn, error)
}
