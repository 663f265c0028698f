package routes

import (
	"rental_backend/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInventory = "/inventory"
	PathWarehouse = "/warehouse"
)

func addInventoryRoutes(rg *gin.RouterGroup, inventoryHandler *handlers.InventoryHandler) {
	inventory := rg.Group(PathInventory)

	equipment := inventory.Group("/equipment")
	{
		equipment.POST("", inventoryHandler.CreateEquipment)
		equipment.GET("", inventoryHandler.ListEquipment)
		equipment.GET("/:id", inventoryHandler.GetEquipment)
		equipment.GET("/:id/history", inventoryHandler.History)
		equipment.GET("/:id/dispatches", inventoryHandler.ListDispatches)
		equipment.GET("/:id/returns", inventoryHandler.ListReturns)
		equipment.POST("/:id/adjust", inventoryHandler.Adjust)
		equipment.POST("/:id/dispatch", inventoryHandler.Dispatch)
		equipment.POST("/:id/return", inventoryHandler.Return)
	}

	adjustments := inventory.Group("/adjustments")
	{
		adjustments.GET("", inventoryHandler.ListAdjustments)
		adjustments.POST("/:id/approve", inventoryHandler.ApproveAdjustment)
		adjustments.POST("/:id/reject", inventoryHandler.RejectAdjustment)
	}

	inventory.GET("/returns", inventoryHandler.ListReturns)
}

func addWarehouseRoutes(rg *gin.RouterGroup, warehouseHandler *handlers.WarehouseHandler, inventoryHandler *handlers.InventoryHandler) {
	warehouse := rg.Group(PathWarehouse)
	{
		warehouse.GET("/dashboard", inventoryHandler.Dashboard)
		warehouse.GET("/stock/export", inventoryHandler.ExportStock)

		warehouse.POST("/dispatches", warehouseHandler.DispatchSalesOrder)
		warehouse.GET("/dispatches", warehouseHandler.ListDispatches)
		warehouse.GET("/dispatches/:id", warehouseHandler.GetDispatch)
		warehouse.POST("/dispatches/:id/advance", warehouseHandler.AdvanceDispatch)

		warehouse.POST("/returns", warehouseHandler.ProcessReturn)
	}
}
