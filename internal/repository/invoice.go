package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"realty/internal/domain"
)

var invoiceColumns = Columns{
	Table:  "invoices",
	Select: "id, created_date, modified_date, is_deleted, serial_number, total_amount, invoice_date, customer_id, status",
	Insert: "serial_number, total_amount, invoice_date, customer_id, status",
	Values: ":serial_number, :total_amount, :invoice_date, :customer_id, :status",
	Update: "serial_number = :serial_number, total_amount = :total_amount, invoice_date = :invoice_date, customer_id = :customer_id, status = :status",
}

const invoiceRelationsQuery = `
	SELECT invoices.id, invoices.created_date, invoices.modified_date, invoices.is_deleted,
		invoices.serial_number, invoices.total_amount, invoices.invoice_date, invoices.customer_id,
		invoices.status,
		COALESCE(customers.first_name, '') AS customer_first_name,
		COALESCE(customers.last_name, '') AS customer_last_name
	FROM invoices
	LEFT JOIN customers ON customers.id = invoices.customer_id AND customers.is_deleted = FALSE
	WHERE invoices.is_deleted = FALSE
`

type InvoiceRepository struct {
	*Repository[domain.Invoice, *domain.Invoice]
}

func NewInvoiceRepository(db *sqlx.DB) *InvoiceRepository {
	return &InvoiceRepository{NewRepository[domain.Invoice](db, invoiceColumns)}
}

func (r *InvoiceRepository) GetAllWithRelations(ctx context.Context) ([]*domain.Invoice, error) {
	var invoices []*domain.Invoice
	if err := r.db.SelectContext(ctx, &invoices, invoiceRelationsQuery); err != nil {
		return nil, err
	}
	return invoices, nil
}

func (r *InvoiceRepository) GetByIDWithRelations(ctx context.Context, id int64) (*domain.Invoice, error) {
	query := invoiceRelationsQuery + ` AND invoices.id = $1`

	invoice := &domain.Invoice{}
	if err := r.db.GetContext(ctx, invoice, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return invoice, nil
}
