package handlers

import (
	"net/http"

	response "github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/adapter/http/dto/response"
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/usecase"
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/pkg"

	"github.com/gin-gonic/gin"
)

// ReportHandler serves the dashboard summary endpoints.

type ReportHandler struct {
	usecase usecase.IReportUseCase
}

func NewReportHandler(uc usecase.IReportUseCase) *ReportHandler {
	return &ReportHandler{usecase: uc}
}

func (h *ReportHandler) GetPaymentStats(c *gin.Context) {
	stats, err := h.usecase.PaymentStats(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *ReportHandler) GetMonthlyRevenue(c *gin.Context) {
	points, err := h.usecase.MonthlyRevenue(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, points)
}

func (h *ReportHandler) GetOutstandingInvoices(c *gin.Context) {
	invoices, err := h.usecase.OutstandingInvoices(c.Request.Context())
	if err != nil {
		appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}
