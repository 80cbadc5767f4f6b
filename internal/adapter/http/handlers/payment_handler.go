package handlers

import (
	"errors"
	"log"
	"net/http"

	request "github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/adapter/http/dto/request"
	response "github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/adapter/http/dto/response"
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/domain/entities"
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/usecase"
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPaymentPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request payload", http.StatusBadRequest)
)

// PaymentHandler handles HTTP requests for the payments ledger and the
// mobile-money prompt flow.

type PaymentHandler struct {
	usecase usecase.IPaymentUseCase
}

func NewPaymentHandler(uc usecase.IPaymentUseCase) *PaymentHandler {
	return &PaymentHandler{usecase: uc}
}

// SendPrompt pushes a payment confirmation to the customer's phone and
// returns the resulting pending ledger record.
func (h *PaymentHandler) SendPrompt(c *gin.Context) {
	var payload request.SendPromptRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	amount, err := payload.ResolveAmount()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Invalid payment amount", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] send-prompt start customer_id=%s method=%s amount=%d", payload.CustomerID, payload.Method, amount)

	created, message, err := h.usecase.SendPrompt(c.Request.Context(), usecase.SendPromptCommand{
		CustomerID:  payload.CustomerID,
		PhoneNumber: payload.PhoneNumber,
		Amount:      amount,
		Method:      entities.PaymentMethod(payload.Method),
		InvoiceID:   payload.InvoiceID,
	})
	if err != nil {
		log.Printf("[payment][handler] send-prompt failed customer_id=%s err=%v", payload.CustomerID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] send-prompt success payment_id=%s reference=%s", created.ID, created.Reference)

	c.JSON(http.StatusAccepted, response.FromPromptedPayment(created, message))
}

// RecordPayment records a payment settled outside the prompt flow.
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var payload request.RecordPaymentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPaymentPayload.HTTPStatus, errInvalidPaymentPayload.ToHTTPError())
		return
	}

	amount, err := payload.ResolveAmount()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_AMOUNT", "Invalid payment amount", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	date, err := payload.ResolveDate()
	if err != nil {
		appErr := pkg.NewDomainErrorSimple("INVALID_DATE", "Invalid payment date", http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	log.Printf("[payment][handler] record start customer_id=%s method=%s amount=%d", payload.CustomerID, payload.Method, amount)

	created, err := h.usecase.RecordPayment(c.Request.Context(), usecase.RecordPaymentCommand{
		CustomerID: payload.CustomerID,
		Amount:     amount,
		Method:     entities.PaymentMethod(payload.Method),
		Reference:  payload.Reference,
		InvoiceID:  payload.InvoiceID,
		Date:       date,
	})
	if err != nil {
		log.Printf("[payment][handler] record failed customer_id=%s err=%v", payload.CustomerID, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] record success payment_id=%s", created.ID)

	c.JSON(http.StatusCreated, response.FromPayment(created))
}

// ListPayments returns the full ledger.
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	payments, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayments(payments))
}

// GetPaymentByID returns a single ledger record.
func (h *PaymentHandler) GetPaymentByID(c *gin.Context) {
	id := c.Param("payment_id")

	p, err := h.usecase.GetByID(c.Request.Context(), id)
	if err != nil {
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPayment(p))
}

// ReconcilePayment asks the provider for the outcome of a pending prompt.
func (h *PaymentHandler) ReconcilePayment(c *gin.Context) {
	id := c.Param("payment_id")
	log.Printf("[payment][handler] reconcile start payment_id=%s", id)

	updated, err := h.usecase.ReconcilePayment(c.Request.Context(), id)
	if err != nil {
		log.Printf("[payment][handler] reconcile failed payment_id=%s err=%v", id, err)
		appErr := mapPaymentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	log.Printf("[payment][handler] reconcile success payment_id=%s status=%s", updated.ID, updated.Status)

	c.JSON(http.StatusOK, response.FromPayment(updated))
}

func mapPaymentError(err error) *pkg.AppError {
	var delivery *usecase.PromptDeliveryError
	switch {
	case errors.As(err, &delivery):
		return pkg.NewDomainError("PROMPT_DELIVERY_FAILED", "Failed to send payment prompt. Please try again.", err, http.StatusBadGateway)
	case errors.Is(err, usecase.ErrMissingField), errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPhoneNumber):
		return pkg.NewDomainErrorSimple("INVALID_PHONE_NUMBER", "Invalid Kenyan phone number", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidPaymentMethod):
		return pkg.NewDomainErrorSimple("INVALID_PAYMENT_METHOD", "Unknown payment method", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrMethodNotPromptable):
		return pkg.NewDomainErrorSimple("METHOD_NOT_PROMPTABLE", "This payment method cannot receive prompts", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvoiceNotFound):
		return pkg.NewDomainErrorSimple("INVOICE_NOT_FOUND", "Invoice not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPaymentNotFound):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_FOUND", "Payment not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrPromptInFlight):
		return pkg.NewDomainErrorSimple("PROMPT_IN_FLIGHT", "A prompt is already in flight for this customer and invoice", http.StatusConflict)
	case errors.Is(err, usecase.ErrPaymentNotPending):
		return pkg.NewDomainErrorSimple("PAYMENT_NOT_PENDING", "Payment is not pending reconciliation", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
