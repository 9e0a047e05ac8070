package dto

import (
	"time"

	"realty/internal/domain"
)

type Location struct {
	ID          int64     `json:"id"`
	CityName    string    `json:"cityName"`
	PlateCode   string    `json:"plateCode"`
	CreatedDate time.Time `json:"createdDate"`
}

type CreateLocationRequest struct {
	CityName  string `json:"cityName" validate:"required,max=100"`
	PlateCode string `json:"plateCode" validate:"required,max=10"`
}

type UpdateLocationRequest struct {
	CityName  string `json:"cityName" validate:"required,max=100"`
	PlateCode string `json:"plateCode" validate:"required,max=10"`
}

func LocationFromDomain(location *domain.Location) *Location {
	if location == nil {
		return nil
	}
	return &Location{
		ID:          location.ID,
		CityName:    location.CityName,
		PlateCode:   location.PlateCode,
		CreatedDate: location.CreatedDate,
	}
}

func LocationsFromDomain(locations []*domain.Location) []*Location {
	result := make([]*Location, len(locations))
	for i, location := range locations {
		result[i] = LocationFromDomain(location)
	}
	return result
}
