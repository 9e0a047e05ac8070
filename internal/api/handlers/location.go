package handlers

import (
	"errors"
	"net/http"

	"github.com/jmoiron/sqlx"
	"github.com/labstack/echo/v4"

	"realty/internal/api/dto"
	"realty/internal/api/services"
	"realty/internal/repository"
)

type LocationHandler struct {
	locationService *services.LocationService
}

func NewLocationHandler(db *sqlx.DB) *LocationHandler {
	return &LocationHandler{
		locationService: services.NewLocationService(repository.NewLocationRepository(db)),
	}
}

func (h *LocationHandler) GetAll(c echo.Context) error {
	locations, err := h.locationService.GetAll(c.Request().Context())
	if err != nil {
		return ErrInternalServerError(c)
	}
	return c.JSON(http.StatusOK, locations)
}

func (h *LocationHandler) GetByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return ErrBadRequest(c, "invalid id")
	}

	location, err := h.locationService.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound(c, "location not found")
		}
		return ErrInternalServerError(c)
	}
	return c.JSON(http.StatusOK, location)
}

func (h *LocationHandler) Create(c echo.Context) error {
	req := new(dto.CreateLocationRequest)
	if err := c.Bind(req); err != nil {
		return ErrBadRequest(c, "invalid request payload")
	}
	if err := c.Validate(req); err != nil {
		return ErrBadRequest(c, "invalid request payload")
	}

	location, err := h.locationService.Create(c.Request().Context(), req)
	if err != nil {
		return ErrInternalServerError(c)
	}
	return c.JSON(http.StatusCreated, location)
}

func (h *LocationHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return ErrBadRequest(c, "invalid id")
	}

	req := new(dto.UpdateLocationRequest)
	if err := c.Bind(req); err != nil {
		return ErrBadRequest(c, "invalid request payload")
	}
	if err := c.Validate(req); err != nil {
		return ErrBadRequest(c, "invalid request payload")
	}

	location, err := h.locationService.Update(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound(c, "location not found")
		}
		return ErrInternalServerError(c)
	}
	return c.JSON(http.StatusOK, location)
}

func (h *LocationHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return ErrBadRequest(c, "invalid id")
	}

	deleted, err := h.locationService.Delete(c.Request().Context(), id)
	if err != nil {
		return ErrInternalServerError(c)
	}
	if !deleted {
		return ErrNotFound(c, "location not found")
	}
	return c.NoContent(http.StatusNoContent)
}
