package handlers

import (
	"errors"
	"net/http"

	request "github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/adapter/http/dto/request"
	response "github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/adapter/http/dto/response"
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/usecase"
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidPackagePayload = pkg.NewDomainErrorSimple("INVALID_PACKAGE_INPUT", "Invalid package payload", http.StatusBadRequest)
)

// PackageHandler handles HTTP requests for the internet package catalog.

type PackageHandler struct {
	usecase usecase.IPackageUseCase
}

func NewPackageHandler(uc usecase.IPackageUseCase) *PackageHandler {
	return &PackageHandler{usecase: uc}
}

func (h *PackageHandler) CreatePackage(c *gin.Context) {
	var payload request.CreatePackageRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidPackagePayload.HTTPStatus, errInvalidPackagePayload.ToHTTPError())
		return
	}

	price, err := payload.ResolvePrice()
	if err != nil {
		c.JSON(errInvalidPackagePayload.HTTPStatus, errInvalidPackagePayload.ToHTTPError())
		return
	}

	created, err := h.usecase.Create(c.Request.Context(), usecase.CreatePackageCommand{
		Name:        payload.Name,
		Speed:       payload.Speed,
		Price:       price,
		Description: payload.Description,
	})
	if err != nil {
		appErr := mapPackageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromPackage(created))
}

func (h *PackageHandler) ListPackages(c *gin.Context) {
	packages, err := h.usecase.List(c.Request.Context())
	if err != nil {
		appErr := mapPackageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPackages(packages))
}

func (h *PackageHandler) GetPackageByID(c *gin.Context) {
	p, err := h.usecase.GetByID(c.Request.Context(), c.Param("package_id"))
	if err != nil {
		appErr := mapPackageError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromPackage(p))
}

func mapPackageError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrMissingField), errors.Is(err, usecase.ErrInvalidAmount):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrPackageNotFound):
		return pkg.NewDomainErrorSimple("PACKAGE_NOT_FOUND", "Package not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
