package dto

import (
	"time"

	"realty/internal/domain"
)

type Category struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	CreatedDate time.Time `json:"createdDate"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

type UpdateCategoryRequest struct {
	Name        string `json:"name" validate:"required,max=100"`
	Description string `json:"description" validate:"max=500"`
}

func CategoryFromDomain(category *domain.Category) *Category {
	if category == nil {
		return nil
	}
	return &Category{
		ID:          category.ID,
		Name:        category.Name,
		Description: category.Description,
		CreatedDate: category.CreatedDate,
	}
}

func CategoriesFromDomain(categories []*domain.Category) []*Category {
	result := make([]*Category, len(categories))
	for i, category := range categories {
		result[i] = CategoryFromDomain(category)
	}
	return result
}
