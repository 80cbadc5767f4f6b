package handlers

import (
	"errors"
	"fmt"
	"net/http"

	request "github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/adapter/http/dto/request"
	response "github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/adapter/http/dto/response"
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/domain/entities"
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/infrastructure/pdf"
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/usecase"
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidInvoicePayload = pkg.NewDomainErrorSimple("INVALID_INVOICE_INPUT", "Invalid invoice payload", http.StatusBadRequest)
)

// InvoiceHandler handles HTTP requests for billing invoices, including the
// printable PDF rendition.

type InvoiceHandler struct {
	usecase usecase.IInvoiceUseCase
}

func NewInvoiceHandler(uc usecase.IInvoiceUseCase) *InvoiceHandler {
	return &InvoiceHandler{usecase: uc}
}

func (h *InvoiceHandler) CreateInvoice(c *gin.Context) {
	var payload request.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	amount, err := payload.ResolveAmount()
	if err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}
	dueDate, err := payload.ResolveDueDate()
	if err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), usecase.CreateInvoiceCommand{
		CustomerID:    payload.CustomerID,
		PackageID:     payload.PackageID,
		Amount:        amount,
		DueDate:       dueDate,
		BillingPeriod: payload.BillingPeriod,
	})
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromInvoice(created))
}

func (h *InvoiceHandler) ListInvoices(c *gin.Context) {
	invoices, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoices(invoices))
}

func (h *InvoiceHandler) GetInvoiceByID(c *gin.Context) {
	invoice, err := h.usecase.GetByID(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

func (h *InvoiceHandler) UpdateInvoiceStatus(c *gin.Context) {
	var payload request.UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidInvoicePayload.HTTPStatus, errInvalidInvoicePayload.ToHTTPError())
		return
	}

	invoice, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("invoice_id"), entities.InvoiceStatus(payload.Status))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromInvoice(invoice))
}

// DownloadInvoicePDF streams the printable rendition of an invoice.
func (h *InvoiceHandler) DownloadInvoicePDF(c *gin.Context) {
	invoice, err := h.usecase.GetByID(c.Request.Context(), c.Param("invoice_id"))
	if err != nil {
		appErr := mapInvoiceError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	data, err := pdf.RenderInvoice(invoice)
	if err != nil {
		appErr := pkg.NewDomainError("PDF_RENDER_FAILED", "Failed to render invoice PDF", err, http.StatusInternalServerError)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s.pdf", invoice.ID))
	c.Data(http.StatusOK, "application/pdf", data)
}

func mapInvoiceError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingField), errors.Is(err, usecase.ErrInvalidAmount), errors.Is(err, usecase.ErrInvalidInvoiceStatus):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPackageNotFound):
		return pkg.NewDomainErrorSimple("PACKAGE_NOT_FOUND", "Package not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
