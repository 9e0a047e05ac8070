package services

import (
	"context"

	"realty/internal/api/dto"
	"realty/internal/domain"
	"realty/internal/repository"
)

type LocationService struct {
	locationRepo *repository.LocationRepository
}

func NewLocationService(locationRepo *repository.LocationRepository) *LocationService {
	return &LocationService{locationRepo: locationRepo}
}

func (s *LocationService) GetAll(ctx context.Context) ([]*dto.Location, error) {
	locations, err := s.locationRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.LocationsFromDomain(locations), nil
}

func (s *LocationService) GetByID(ctx context.Context, id int64) (*dto.Location, error) {
	location, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.LocationFromDomain(location), nil
}

func (s *LocationService) Create(ctx context.Context, req *dto.CreateLocationRequest) (*dto.Location, error) {
	location := &domain.Location{
		CityName:  req.CityName,
		PlateCode: req.PlateCode,
	}

	if err := s.locationRepo.Add(ctx, location); err != nil {
		return nil, err
	}
	return dto.LocationFromDomain(location), nil
}

func (s *LocationService) Update(ctx context.Context, id int64, req *dto.UpdateLocationRequest) (*dto.Location, error) {
	location, err := s.locationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	location.CityName = req.CityName
	location.PlateCode = req.PlateCode

	if err := s.locationRepo.Update(ctx, location); err != nil {
		return nil, err
	}
	return dto.LocationFromDomain(location), nil
}

func (s *LocationService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.locationRepo.Delete(ctx, id)
}
