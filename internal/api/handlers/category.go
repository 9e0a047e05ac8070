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

type CategoryHandler struct {
	categoryService *services.CategoryService
}

func NewCategoryHandler(db *sqlx.DB) *CategoryHandler {
	return &CategoryHandler{
		categoryService: services.NewCategoryService(repository.NewCategoryRepository(db)),
	}
}

func (h *CategoryHandler) GetAll(c echo.Context) error {
	categories, err := h.categoryService.GetAll(c.Request().Context())
	if err != nil {
		return ErrInternalServerError(c)
	}
	return c.JSON(http.StatusOK, categories)
}

func (h *CategoryHandler) GetByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return ErrBadRequest(c, "invalid id")
	}

	category, err := h.categoryService.GetByID(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound(c, "category not found")
		}
		return ErrInternalServerError(c)
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Create(c echo.Context) error {
	req := new(dto.CreateCategoryRequest)
	if err := c.Bind(req); err != nil {
		return ErrBadRequest(c, "invalid request payload")
	}
	if err := c.Validate(req); err != nil {
		return ErrBadRequest(c, "invalid request payload")
	}

	category, err := h.categoryService.Create(c.Request().Context(), req)
	if err != nil {
		return ErrInternalServerError(c)
	}
	return c.JSON(http.StatusCreated, category)
}

func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return ErrBadRequest(c, "invalid id")
	}

	req := new(dto.UpdateCategoryRequest)
	if err := c.Bind(req); err != nil {
		return ErrBadRequest(c, "invalid request payload")
	}
	if err := c.Validate(req); err != nil {
		return ErrBadRequest(c, "invalid request payload")
	}

	category, err := h.categoryService.Update(c.Request().Context(), id, req)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound(c, "category not found")
		}
		return ErrInternalServerError(c)
	}
	return c.JSON(http.StatusOK, category)
}

func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return ErrBadRequest(c, "invalid id")
	}

	deleted, err := h.categoryService.Delete(c.Request().Context(), id)
	if err != nil {
		return ErrInternalServerError(c)
	}
	if !deleted {
		return ErrNotFound(c, "category not found")
	}
	return c.NoContent(http.StatusNoContent)
}
