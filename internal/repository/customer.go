package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"realty/internal/domain"
)

var ErrDuplicateEmail = errors.New("email already exists")

var customerColumns = Columns{
	Table:  "customers",
	Select: "id, created_date, modified_date, is_deleted, first_name, last_name, email, identity_number, balance, phone_number",
	Insert: "first_name, last_name, email, identity_number, balance, phone_number",
	Values: ":first_name, :last_name, :email, :identity_number, :balance, :phone_number",
	Update: "first_name = :first_name, last_name = :last_name, email = :email, identity_number = :identity_number, balance = :balance, phone_number = :phone_number",
}

type CustomerRepository struct {
	*Repository[domain.Customer, *domain.Customer]
}

func NewCustomerRepository(db *sqlx.DB) *CustomerRepository {
	return &CustomerRepository{NewRepository[domain.Customer](db, customerColumns)}
}

// Add translates a violation of the partial unique index on email into
// ErrDuplicateEmail.
func (r *CustomerRepository) Add(ctx context.Context, customer *domain.Customer) error {
	if err := r.Repository.Add(ctx, customer); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *CustomerRepository) Update(ctx context.Context, customer *domain.Customer) error {
	if err := r.Repository.Update(ctx, customer); err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateEmail
		}
		return err
	}
	return nil
}

func (r *CustomerRepository) GetByEmail(ctx context.Context, email string) (*domain.Customer, error) {
	query := fmt.Sprintf(`SELECT %s FROM customers WHERE email = $1 AND is_deleted = FALSE`, customerColumns.Select)

	customer := &domain.Customer{}
	if err := r.db.GetContext(ctx, customer, query, email); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return customer, nil
}

// EmailExists reports whether a non-deleted customer other than excludeID
// holds the given email. Pass 0 to exclude nobody.
func (r *CustomerRepository) EmailExists(ctx context.Context, email string, excludeID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM customers WHERE email = $1 AND is_deleted = FALSE)`
	args := []any{email}

	if excludeID > 0 {
		query = `SELECT EXISTS(SELECT 1 FROM customers WHERE email = $1 AND is_deleted = FALSE AND id <> $2)`
		args = append(args, excludeID)
	}

	exists := false
	err := r.db.GetContext(ctx, &exists, query, args...)
	return exists, err
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
