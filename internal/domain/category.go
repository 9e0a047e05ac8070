package domain

type Category struct {
	Model
	Name        string `db:"name"`
	Description string `db:"description"`
}
