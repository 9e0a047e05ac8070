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

type PropertyHandler struct {
	propertyService *services.PropertyService
}

func NewPropertyHandler(db *sqlx.DB) *PropertyHandler {
	return &PropertyHandler{
		propertyService: services.NewPropertyService(
			repository.NewPropertyRepository(db),
			repository.NewCategoryRepository(db),
			repository.NewLocationRepository(db),
		),
	}
}

func (h *PropertyHandler) GetAll(c echo.Context) error {
	properties, err := h.propertyService.GetAll(c.Request().Context())
	if err != nil {
		return ErrInternalServerError(c)
	}
	return c.JSON(http.StatusOK, properties)
}

func (h *PropertyHandler) GetByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return ErrBadRequest(c, "invalid id")
	}

	property, err := h.propertyService.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound(c, "property not found")
		}
		return ErrInternalServerError(c)
	}
	return c.JSON(http.StatusOK, property)
}

func (h *PropertyHandler) Create(c echo.Context) error {
	req := new(dto.CreatePropertyRequest)
	if err := c.Bind(req); err != nil {
		return ErrBadRequest(c, "invalid request payload")
	}
	if err := c.Validate(req); err != nil {
		return ErrBadRequest(c, "invalid request payload")
	}

	property, err := h.propertyService.Create(c.Request().Context(), req)
	if err != nil {
		return propertyError(c, err, req.CategoryID, req.LocationID)
	}
	return c.JSON(http.StatusCreated, property)
}

func (h *PropertyHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return ErrBadRequest(c, "invalid id")
	}

	req := new(dto.UpdatePropertyRequest)
	if err := c.Bind(req); err != nil {
		return ErrBadRequest(c, "invalid request payload")
	}
	if err := c.Validate(req); err != nil {
		return ErrBadRequest(c, "invalid request payload")
	}

	property, err := h.propertyService.Update(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound(c, "property not found")
		}
		return propertyError(c, err, req.CategoryID, req.LocationID)
	}
	return c.JSON(http.StatusOK, property)
}

func (h *PropertyHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return ErrBadRequest(c, "invalid id")
	}

	deleted, err := h.propertyService.Delete(c.Request().Context(), id)
	if err != nil {
		return ErrInternalServerError(c)
	}
	if !deleted {
		return ErrNotFound(c, "property not found")
	}
	return c.NoContent(http.StatusNoContent)
}

func propertyError(c echo.Context, err error, categoryID, locationID int64) error {
	switch {
	case errors.Is(err, services.ErrCategoryNotFound):
		return ErrBadRequest(c, fmt.Sprintf("category with id %d does not exist", categoryID))
	case errors.Is(err, services.ErrLocationNotFound):
		return ErrBadRequest(c, fmt.Sprintf("location with id %d does not exist", locationID))
	default:
		return ErrInternalServerError(c)
	}
}
