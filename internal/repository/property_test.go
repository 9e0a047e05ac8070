package repository

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realty/internal/domain"
	"realty/internal/testutil"
)

func TestPropertyRepository_GetByIDWithRelations(t *testing.T) {
	testutil.RequireDB(t, testDB)
	ctx := context.Background()
	ts := time.Now().UnixNano()

	categoryRepo := NewCategoryRepository(testDB)
	locationRepo := NewLocationRepository(testDB)
	propertyRepo := NewPropertyRepository(testDB)

	category := &domain.Category{Name: fmt.Sprintf("Office %d", ts)}
	require.NoError(t, categoryRepo.Add(ctx, category))
	location := &domain.Location{CityName: fmt.Sprintf("Ankara %d", ts), PlateCode: "06"}
	require.NoError(t, locationRepo.Add(ctx, location))

	property := &domain.Property{
		Title:       fmt.Sprintf("Plaza %d", ts),
		Price:       500000,
		CategoryID:  category.ID,
		LocationID:  location.ID,
		IsAvailable: true,
	}
	require.NoError(t, propertyRepo.Add(ctx, property))

	found, err := propertyRepo.GetByIDWithRelations(ctx, property.ID)
	require.NoError(t, err)
	assert.Equal(t, category.Name, found.CategoryName)
	assert.Equal(t, location.CityName, found.LocationCityName)
	assert.Equal(t, property.Price, found.Price)

	t.Run("soft-deleted category name falls back to empty", func(t *testing.T) {
		deleted, err := categoryRepo.Delete(ctx, category.ID)
		require.NoError(t, err)
		require.True(t, deleted)

		found, err := propertyRepo.GetByIDWithRelations(ctx, property.ID)
		require.NoError(t, err)
		assert.Equal(t, "", found.CategoryName)
		assert.Equal(t, location.CityName, found.LocationCityName)
	})

	t.Run("missing property reports not found", func(t *testing.T) {
		_, err := propertyRepo.GetByIDWithRelations(ctx, 0)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
