package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"

	"realty/internal/api/dto"
	"realty/internal/api/services"
	"realty/internal/repository"
)

type InvoiceHandler struct {
	invoiceService *services.InvoiceService
}

func NewInvoiceHandler(db *sqlx.DB) *InvoiceHandler {
	return &InvoiceHandler{
		invoiceService: services.NewInvoiceService(
			repository.NewInvoiceRepository(db),
			repository.NewCustomerRepository(db),
		),
	}
}

func (h *InvoiceHandler) GetAll(c echo.Context) error {
	invoices, err := h.invoiceService.GetAll(c.Request().Context())
	if err != nil {
		return ErrInternalServerError(c)
	}
	return c.JSON(http.StatusOK, invoices)
}

func (h *InvoiceHandler) GetByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return ErrBadRequest(c, "invalid id")
	}

	invoice, err := h.invoiceService.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound(c, "invoice not found")
		}
		return ErrInternalServerError(c)
	}
	return c.JSON(http.StatusOK, invoice)
}

func (h *InvoiceHandler) Create(c echo.Context) error {
	req := new(dto.CreateInvoiceRequest)
	if err := c.Bind(req); err != nil {
		return ErrBadRequest(c, "invalid request payload")
	}
	if err := c.Validate(req); err != nil {
		return ErrBadRequest(c, "invalid request payload")
	}

	invoice, err := h.invoiceService.Create(c.Request().Context(), req)
	if err != nil {
		return invoiceError(c, err, req.CustomerID)
	}
	return c.JSON(http.StatusCreated, invoice)
}

func (h *InvoiceHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return ErrBadRequest(c, "invalid id")
	}

	req := new(dto.UpdateInvoiceRequest)
	if err := c.Bind(req); err != nil {
		return ErrBadRequest(c, "invalid request payload")
	}
	if err := c.Validate(req); err != nil {
		return ErrBadRequest(c, "invalid request payload")
	}

	invoice, err := h.invoiceService.Update(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound(c, "invoice not found")
		}
		return invoiceError(c, err, req.CustomerID)
	}
	return c.JSON(http.StatusOK, invoice)
}

func (h *InvoiceHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return ErrBadRequest(c, "invalid id")
	}

	deleted, err := h.invoiceService.Delete(c.Request().Context(), id)
	if err != nil {
		return ErrInternalServerError(c)
	}
	if !deleted {
		return ErrNotFound(c, "invoice not found")
	}
	return c.NoContent(http.StatusNoContent)
}

func invoiceError(c echo.Context, err error, customerID int64) error {
	switch {
	case errors.Is(err, services.ErrInvalidAmount):
		return ErrBadRequest(c, "invoice amount must be greater than zero")
	case errors.Is(err, services.ErrCustomerNotFound):
		return ErrBadRequest(c, fmt.Sprintf("customer with id %d does not exist", customerID))
	default:
		return ErrInternalServerError(c)
	}
}
