package repository

import (
	"github.com/jmoiron/sqlx"

	"realty/internal/domain"
)

var locationColumns = Columns{
	Table:  "locations",
	Select: "id, created_date, modified_date, is_deleted, city_name, plate_code",
	Insert: "city_name, plate_code",
	Values: ":city_name, :plate_code",
	Update: "city_name = :city_name, plate_code = :plate_code",
}

type LocationRepository struct {
	*Repository[domain.Location, *domain.Location]
}

func NewLocationRepository(db *sqlx.DB) *LocationRepository {
	return &LocationRepository{NewRepository[domain.Location](db, locationColumns)}
}
