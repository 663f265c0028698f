package routes

import (
	"rental_backend/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathInvoices = "/invoices"
	PathPayments = "/payments"
)

func addFinanceRoutes(rg *gin.RouterGroup, invoiceHandler *handlers.InvoiceHandler) {
	invoices := rg.Group(PathInvoices)
	{
		invoices.GET("", invoiceHandler.List)
		invoices.GET("/:id", invoiceHandler.Get)
		invoices.POST("/:id/pay", invoiceHandler.Pay)
		invoices.GET("/:id/payments", invoiceHandler.ListPayments)
	}

	payments := rg.Group(PathPayments)
	{
		payments.GET("/:id", invoiceHandler.GetPayment)
	}
}
