package routes

import (
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCustomers = "/customers"
	PathPackages  = "/packages"
	PathInvoices  = "/invoices"
)

func addCatalogRoutes(
	rg *gin.RouterGroup,
	customerHandler *handlers.CustomerHandler,
	packageHandler *handlers.PackageHandler,
	invoiceHandler *handlers.InvoiceHandler,
) {
	customers := rg.Group(PathCustomers)
	{
		customers.POST("", customerHandler.CreateCustomer)
		customers.GET("", customerHandler.ListCustomers)
		customers.GET("/:customer_id", customerHandler.GetCustomerByID)
		customers.PATCH("/:customer_id/status", customerHandler.UpdateCustomerStatus)
	}

	packages := rg.Group(PathPackages)
	{
		packages.POST("", packageHandler.CreatePackage)
		packages.GET("", packageHandler.ListPackages)
		packages.GET("/:package_id", packageHandler.GetPackageByID)
	}

	invoices := rg.Group(PathInvoices)
	{
		invoices.POST("", invoiceHandler.CreateInvoice)
		invoices.GET("", invoiceHandler.ListInvoices)
		invoices.GET("/:invoice_id", invoiceHandler.GetInvoiceByID)
		invoices.GET("/:invoice_id/pdf", invoiceHandler.DownloadInvoicePDF)
		invoices.PATCH("/:invoice_id/status", invoiceHandler.UpdateInvoiceStatus)
	}
}
