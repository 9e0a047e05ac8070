package services

import (
	"context"

	"realty/internal/api/dto"
	"realty/internal/domain"
	"realty/internal/repository"
)

// Category names may repeat; create and update carry no business rules.
type CategoryService struct {
	categoryRepo *repository.CategoryRepository
}

func NewCategoryService(categoryRepo *repository.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

func (s *CategoryService) GetAll(ctx context.Context) ([]*dto.Category, error) {
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.CategoriesFromDomain(categories), nil
}

func (s *CategoryService) GetByID(ctx context.Context, id int64) (*dto.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.CategoryFromDomain(category), nil
}

func (s *CategoryService) Create(ctx context.Context, req *dto.CreateCategoryRequest) (*dto.Category, error) {
	category := &domain.Category{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.categoryRepo.Add(ctx, category); err != nil {
		return nil, err
	}
	return dto.CategoryFromDomain(category), nil
}

func (s *CategoryService) Update(ctx context.Context, id int64, req *dto.UpdateCategoryRequest) (*dto.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	category.Name = req.Name
	category.Description = req.Description

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}
	return dto.CategoryFromDomain(category), nil
}

func (s *CategoryService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.categoryRepo.Delete(ctx, id)
}
