package routes

import (
	"rental_backend/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathEnquiries   = "/enquiries"
	PathQuotations  = "/quotations"
	PathSalesOrders = "/sales-orders"
	PathContracts   = "/contracts"
)

func addPipelineRoutes(
	rg *gin.RouterGroup,
	enquiryHandler *handlers.EnquiryHandler,
	quotationHandler *handlers.QuotationHandler,
	salesOrderHandler *handlers.SalesOrderHandler,
	contractHandler *handlers.ContractHandler,
) {
	enquiries := rg.Group(PathEnquiries)
	{
		enquiries.POST("", enquiryHandler.Create)
		enquiries.GET("", enquiryHandler.List)
		enquiries.GET("/:id", enquiryHandler.Get)
		enquiries.PATCH("/:id/status", enquiryHandler.UpdateStatus)
		enquiries.PATCH("/:id/extend", enquiryHandler.Extend)
	}

	quotations := rg.Group(PathQuotations)
	{
		quotations.POST("", quotationHandler.Create)
		quotations.GET("", quotationHandler.List)
		quotations.GET("/:id", quotationHandler.Get)
		quotations.PUT("/:id", quotationHandler.Update)
		quotations.POST("/:id/send", quotationHandler.Send)
		quotations.POST("/:id/approve", quotationHandler.Approve)
		quotations.POST("/:id/reject", quotationHandler.Reject)
	}

	orders := rg.Group(PathSalesOrders)
	{
		orders.GET("", salesOrderHandler.List)
		orders.GET("/:id", salesOrderHandler.Get)
		orders.POST("/:id/check-stock", salesOrderHandler.CheckStock)
	}

	contracts := rg.Group(PathContracts)
	{
		contracts.POST("", contractHandler.Request)
		contracts.GET("", contractHandler.List)
		contracts.GET("/:id", contractHandler.Get)
		contracts.POST("/:id/approve", contractHandler.Approve)
		contracts.POST("/:id/reject", contractHandler.Reject)
	}
}
