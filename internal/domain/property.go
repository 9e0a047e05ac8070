package domain

type Property struct {
	Model
	Title        string  `db:"title"`
	BlockNumber  string  `db:"block_number"`
	ParcelNumber string  `db:"parcel_number"`
	SquareMeters float64 `db:"square_meters"`
	Price        float64 `db:"price"`
	CategoryID   int64   `db:"category_id"`
	LocationID   int64   `db:"location_id"`
	IsAvailable  bool    `db:"is_available"`

	// Populated only by joined reads.
	CategoryName     string `db:"category_name"`
	LocationCityName string `db:"location_city_name"`
}
