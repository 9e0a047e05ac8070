package domain

type Location struct {
	Model
	CityName  string `db:"city_name"`
	PlateCode string `db:"plate_code"`
}
