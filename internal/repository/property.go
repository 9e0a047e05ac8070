package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"realty/internal/domain"
)

var propertyColumns = Columns{
	Table:  "properties",
	Select: "id, created_date, modified_date, is_deleted, title, block_number, parcel_number, square_meters, price, category_id, location_id, is_available",
	Insert: "title, block_number, parcel_number, square_meters, price, category_id, location_id, is_available",
	Values: ":title, :block_number, :parcel_number, :square_meters, :price, :category_id, :location_id, :is_available",
	Update: "title = :title, block_number = :block_number, parcel_number = :parcel_number, square_meters = :square_meters, price = :price, category_id = :category_id, location_id = :location_id, is_available = :is_available",
}

// Soft-deleted parents are excluded from the joins so their names fall back
// to the empty string, same as the default read paths.
const propertyRelationsQuery = `
	SELECT properties.id, properties.created_date, properties.modified_date, properties.is_deleted,
		properties.title, properties.block_number, properties.parcel_number, properties.square_meters,
		properties.price, properties.category_id, properties.location_id, properties.is_available,
		COALESCE(categories.name, '') AS category_name,
		COALESCE(locations.city_name, '') AS location_city_name
	FROM properties
	LEFT JOIN categories ON categories.id = properties.category_id AND categories.is_deleted = FALSE
	LEFT JOIN locations ON locations.id = properties.location_id AND locations.is_deleted = FALSE
	WHERE properties.is_deleted = FALSE
`

type PropertyRepository struct {
	*Repository[domain.Property, *domain.Property]
}

func NewPropertyRepository(db *sqlx.DB) *PropertyRepository {
	return &PropertyRepository{NewRepository[domain.Property](db, propertyColumns)}
}

func (r *PropertyRepository) GetAllWithRelations(ctx context.Context) ([]*domain.Property, error) {
	var properties []*domain.Property
	if err := r.db.SelectContext(ctx, &properties, propertyRelationsQuery); err != nil {
		return nil, err
	}
	return properties, nil
}

func (r *PropertyRepository) GetByIDWithRelations(ctx context.Context, id int64) (*domain.Property, error) {
	query := propertyRelationsQuery + ` AND properties.id = $1`

	property := &domain.Property{}
	if err := r.db.GetContext(ctx, property, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return property, nil
}
