package repository

import (
	"github.com/jmoiron/sqlx"

	"realty/internal/domain"
)

var categoryColumns = Columns{
	Table:  "categories",
	Select: "id, created_date, modified_date, is_deleted, name, description",
	Insert: "name, description",
	Values: ":name, :description",
	Update: "name = :name, description = :description",
}

type CategoryRepository struct {
	*Repository[domain.Category, *domain.Category]
}

func NewCategoryRepository(db *sqlx.DB) *CategoryRepository {
	return &CategoryRepository{NewRepository[domain.Category](db, categoryColumns)}
}
