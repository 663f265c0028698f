package response

import (
	"rental_backend/internal/domain/entities"
	"rental_backend/internal/usecase"
)

// List never renders a nil slice as null.
func List[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}

type QuotationApprovalResponse struct {
	Message    string              `json:"message"`
	Quotation  entities.Quotation  `json:"quotation"`
	SalesOrder entities.SalesOrder `json:"sales_order"`
}

type StockCheckResponse struct {
	SalesOrder entities.SalesOrder  `json:"sales_order"`
	Report     entities.StockReport `json:"report"`
}

type ContractApprovalResponse struct {
	Message  string            `json:"message"`
	Contract entities.Contract `json:"contract"`
	Invoice  entities.Invoice  `json:"invoice"`
}

type OrderDispatchResponse struct {
	SalesOrder entities.SalesOrder    `json:"sales_order"`
	Dispatch   entities.OrderDispatch `json:"dispatch"`
}

type EquipmentDispatchResponse struct {
	Equipment entities.Equipment         `json:"equipment"`
	Dispatch  entities.EquipmentDispatch `json:"dispatch"`
}

type EquipmentReturnResponse struct {
	Equipment entities.Equipment       `json:"equipment"`
	Return    entities.EquipmentReturn `json:"return"`
}

// AdjustmentResponse reports whether an adjustment was applied or queued
// for admin approval.
type AdjustmentResponse struct {
	Applied           bool                        `json:"applied"`
	Equipment         entities.Equipment          `json:"equipment"`
	PendingAdjustment *entities.PendingAdjustment `json:"pending_adjustment,omitempty"`
}

func FromAdjustment(r usecase.AdjustmentResult) AdjustmentResponse {
	return AdjustmentResponse{
		Applied:           r.Pending == nil || r.Pending.Status == entities.PendingAdjustmentApproved,
		Equipment:         r.Equipment,
		PendingAdjustment: r.Pending,
	}
}

type MessageResponse struct {
	Message string `json:"message"`
}
