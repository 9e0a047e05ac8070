package services

import (
	"context"
	"errors"

	"realty/internal/api/dto"
	"realty/internal/domain"
	"realty/internal/repository"
)

var (
	ErrCategoryNotFound = errors.New("category does not exist")
	ErrLocationNotFound = errors.New("location does not exist")
)

type PropertyService struct {
	propertyRepo *repository.PropertyRepository
	categoryRepo *repository.CategoryRepository
	locationRepo *repository.LocationRepository
}

func NewPropertyService(
	propertyRepo *repository.PropertyRepository,
	categoryRepo *repository.CategoryRepository,
	locationRepo *repository.LocationRepository,
) *PropertyService {
	return &PropertyService{
		propertyRepo: propertyRepo,
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
	}
}

func (s *PropertyService) GetAll(ctx context.Context) ([]*dto.Property, error) {
	properties, err := s.propertyRepo.GetAllWithRelations(ctx)
	if err != nil {
		return nil, err
	}
	return dto.PropertiesFromDomain(properties), nil
}

func (s *PropertyService) GetByID(ctx context.Context, id int64) (*dto.Property, error) {
	property, err := s.propertyRepo.GetByIDWithRelations(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.PropertyFromDomain(property), nil
}

func (s *PropertyService) Create(ctx context.Context, req *dto.CreatePropertyRequest) (*dto.Property, error) {
	if err := s.validateReferences(ctx, req.CategoryID, req.LocationID); err != nil {
		return nil, err
	}

	property := &domain.Property{
		Title:        req.Title,
		BlockNumber:  req.BlockNumber,
		ParcelNumber: req.ParcelNumber,
		SquareMeters: req.SquareMeters,
		Price:        req.Price,
		CategoryID:   req.CategoryID,
		LocationID:   req.LocationID,
		IsAvailable:  req.IsAvailable,
	}

	if err := s.propertyRepo.Add(ctx, property); err != nil {
		return nil, err
	}

	// Re-read the committed row joined with category and location so the
	// denormalized names always reflect committed state.
	created, err := s.propertyRepo.GetByIDWithRelations(ctx, property.ID)
	if err != nil {
		return nil, err
	}
	return dto.PropertyFromDomain(created), nil
}

func (s *PropertyService) Update(ctx context.Context, id int64, req *dto.UpdatePropertyRequest) (*dto.Property, error) {
	property, err := s.propertyRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.validateReferences(ctx, req.CategoryID, req.LocationID); err != nil {
		return nil, err
	}

	property.Title = req.Title
	property.BlockNumber = req.BlockNumber
	property.ParcelNumber = req.ParcelNumber
	property.SquareMeters = req.SquareMeters
	property.Price = req.Price
	property.CategoryID = req.CategoryID
	property.LocationID = req.LocationID
	property.IsAvailable = req.IsAvailable

	if err := s.propertyRepo.Update(ctx, property); err != nil {
		return nil, err
	}

	updated, err := s.propertyRepo.GetByIDWithRelations(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.PropertyFromDomain(updated), nil
}

func (s *PropertyService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.propertyRepo.Delete(ctx, id)
}

// Both references must point at existing, non-deleted rows before anything
// is persisted. Category is checked first.
func (s *PropertyService) validateReferences(ctx context.Context, categoryID, locationID int64) error {
	categoryExists, err := s.categoryRepo.Exists(ctx, categoryID)
	if err != nil {
		return err
	}
	if !categoryExists {
		return ErrCategoryNotFound
	}

	locationExists, err := s.locationRepo.Exists(ctx, locationID)
	if err != nil {
		return err
	}
	if !locationExists {
		return ErrLocationNotFound
	}
	return nil
}
