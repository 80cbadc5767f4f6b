package handlers

import (
	"errors"
	"net/http"

	request "github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/adapter/http/dto/request"
	response "github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/adapter/http/dto/response"
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/domain/entities"
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/usecase"
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidCustomerPayload = pkg.NewDomainErrorSimple("INVALID_CUSTOMER_INPUT", "Invalid customer payload", http.StatusBadRequest)
)

// CustomerHandler handles HTTP requests for the subscriber directory.

type CustomerHandler struct {
	usecase usecase.ICustomerUseCase
}

func NewCustomerHandler(uc usecase.ICustomerUseCase) *CustomerHandler {
	return &CustomerHandler{usecase: uc}
}

func (h *CustomerHandler) CreateCustomer(c *gin.Context) {
	var payload request.CreateCustomerRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCustomerPayload.HTTPStatus, errInvalidCustomerPayload.ToHTTPError())
		return
	}

	customer, err := h.usecase.Create(c.Request.Context(), usecase.CreateCustomerCommand{
		Name:           payload.Name,
		Location:       payload.Location,
		Phone:          payload.Phone,
		Email:          payload.Email,
		ConnectionType: entities.ConnectionType(payload.ConnectionType),
		Package:        payload.Package,
		RouterMAC:      payload.RouterMAC,
	})
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCustomer(customer))
}

func (h *CustomerHandler) ListCustomers(c *gin.Context) {
	customers, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCustomers(customers))
}

func (h *CustomerHandler) GetCustomerByID(c *gin.Context) {
	customer, err := h.usecase.GetByID(c.Request.Context(), c.Param("customer_id"))
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

func (h *CustomerHandler) UpdateCustomerStatus(c *gin.Context) {
	var payload request.UpdateCustomerStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCustomerPayload.HTTPStatus, errInvalidCustomerPayload.ToHTTPError())
		return
	}

	customer, err := h.usecase.UpdateStatus(c.Request.Context(), c.Param("customer_id"), entities.CustomerStatus(payload.Status))
	if err != nil {
		appErr := mapCustomerError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromCustomer(customer))
}

func mapCustomerError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingField), errors.Is(err, usecase.ErrInvalidPhoneNumber),
		errors.Is(err, usecase.ErrInvalidCustomerStatus), errors.Is(err, usecase.ErrInvalidConnectionType):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrCustomerNotFound):
		return pkg.NewDomainErrorSimple("CUSTOMER_NOT_FOUND", "Customer not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
