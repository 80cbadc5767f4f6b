package routes

import (
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathReports = "/reports"
)

func addReportRoutes(rg *gin.RouterGroup, reportHandler *handlers.ReportHandler) {
	reports := rg.Group(PathReports)
	{
		reports.GET("/payments", reportHandler.GetPaymentStats)
		reports.GET("/revenue", reportHandler.GetMonthlyRevenue)
		reports.GET("/outstanding", reportHandler.GetOutstandingInvoices)
	}
}
