package dto

import (
	"time"

	"realty/internal/domain"
)

type Property struct {
	ID               int64     `json:"id"`
	Title            string    `json:"title"`
	BlockNumber      string    `json:"blockNumber"`
	ParcelNumber     string    `json:"parcelNumber"`
	SquareMeters     float64   `json:"squareMeters"`
	Price            float64   `json:"price"`
	CategoryID       int64     `json:"categoryId"`
	CategoryName     string    `json:"categoryName"`
	LocationID       int64     `json:"locationId"`
	LocationCityName string    `json:"locationCityName"`
	IsAvailable      bool      `json:"isAvailable"`
	CreatedDate      time.Time `json:"createdDate"`
}

type CreatePropertyRequest struct {
	Title        string  `json:"title" validate:"required,max=200"`
	BlockNumber  string  `json:"blockNumber" validate:"max=50"`
	ParcelNumber string  `json:"parcelNumber" validate:"max=50"`
	SquareMeters float64 `json:"squareMeters"`
	Price        float64 `json:"price"`
	CategoryID   int64   `json:"categoryId" validate:"required"`
	LocationID   int64   `json:"locationId" validate:"required"`
	IsAvailable  bool    `json:"isAvailable"`
}

type UpdatePropertyRequest struct {
	Title        string  `json:"title" validate:"required,max=200"`
	BlockNumber  string  `json:"blockNumber" validate:"max=50"`
	ParcelNumber string  `json:"parcelNumber" validate:"max=50"`
	SquareMeters float64 `json:"squareMeters"`
	Price        float64 `json:"price"`
	CategoryID   int64   `json:"categoryId" validate:"required"`
	LocationID   int64   `json:"locationId" validate:"required"`
	IsAvailable  bool    `json:"isAvailable"`
}

func PropertyFromDomain(property *domain.Property) *Property {
	if property == nil {
		return nil
	}
	return &Property{
		ID:               property.ID,
		Title:            property.Title,
		BlockNumber:      property.BlockNumber,
		ParcelNumber:     property.ParcelNumber,
		SquareMeters:     property.SquareMeters,
		Price:            property.Price,
		CategoryID:       property.CategoryID,
		CategoryName:     property.CategoryName,
		LocationID:       property.LocationID,
		LocationCityName: property.LocationCityName,
		IsAvailable:      property.IsAvailable,
		CreatedDate:      property.CreatedDate,
	}
}

func PropertiesFromDomain(properties []*domain.Property) []*Property {
	result := make([]*Property, len(properties))
	for i, property := range properties {
		result[i] = PropertyFromDomain(property)
	}
	return result
}
