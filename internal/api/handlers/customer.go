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

type CustomerHandler struct {
	customerService *services.CustomerService
}

func NewCustomerHandler(db *sqlx.DB) *CustomerHandler {
	return &CustomerHandler{
		customerService: services.NewCustomerService(repository.NewCustomerRepository(db)),
	}
}

func (h *CustomerHandler) GetAll(c echo.Context) error {
	customers, err := h.customerService.GetAll(c.Request().Context())
	if err != nil {
		return ErrInternalServerError(c)
	}
	return c.JSON(http.StatusOK, customers)
}

func (h *CustomerHandler) GetByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return ErrBadRequest(c, "invalid id")
	}

	customer, err := h.customerService.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound(c, "customer not found")
		}
		return ErrInternalServerError(c)
	}
	return c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) Create(c echo.Context) error {
	req := new(dto.CreateCustomerRequest)
	if err := c.Bind(req); err != nil {
		return ErrBadRequest(c, "invalid request payload")
	}
	if err := c.Validate(req); err != nil {
		return ErrBadRequest(c, "invalid request payload")
	}

	customer, err := h.customerService.Create(c.Request().Context(), req)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return ErrBadRequest(c, fmt.Sprintf("email '%s' already exists", req.Email))
		}
		return ErrInternalServerError(c)
	}
	return c.JSON(http.StatusCreated, customer)
}

func (h *CustomerHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return ErrBadRequest(c, "invalid id")
	}

	req := new(dto.UpdateCustomerRequest)
	if err := c.Bind(req); err != nil {
		return ErrBadRequest(c, "invalid request payload")
	}
	if err := c.Validate(req); err != nil {
		return ErrBadRequest(c, "invalid request payload")
	}

	customer, err := h.customerService.Update(c.Request().Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrNotFound):
			return ErrNotFound(c, "customer not found")
		case errors.Is(err, repository.ErrDuplicateEmail):
			return ErrBadRequest(c, fmt.Sprintf("email '%s' already exists", req.Email))
		default:
			return ErrInternalServerError(c)
		}
	}
	return c.JSON(http.StatusOK, customer)
}

func (h *CustomerHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return ErrBadRequest(c, "invalid id")
	}

	deleted, err := h.customerService.Delete(c.Request().Context(), id)
	if err != nil {
		return ErrInternalServerError(c)
	}
	if !deleted {
		return ErrNotFound(c, "customer not found")
	}
	return c.NoContent(http.StatusNoContent)
}
