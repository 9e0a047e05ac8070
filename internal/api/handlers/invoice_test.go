package handlers

import (
	"context"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realty/internal/api/dto"
	"realty/internal/domain"
	"realty/internal/repository"
	"realty/internal/testutil"
)

func TestInvoiceHandler_Create(t *testing.T) {
	testutil.RequireDB(t, testDB)
	e := newTestEcho()
	h := NewInvoiceHandler(testDB)
	ctx := context.Background()
	ts := time.Now().UnixNano()

	customer := &domain.Customer{
		FirstName: "Zeynep",
		LastName:  fmt.Sprintf("Aydin%d", ts),
		Email:     fmt.Sprintf("zeynep%d@example.com", ts),
	}
	require.NoError(t, repository.NewCustomerRepository(testDB).Add(ctx, customer))

	t.Run("create returns 201 with the customer name", func(t *testing.T) {
		rec := request(t, e, h.Create, http.MethodPost, "/api/invoices", &dto.CreateInvoiceRequest{
			SerialNumber: fmt.Sprintf("INV-%d", ts),
			TotalAmount:  5000,
			InvoiceDate:  time.Now().UTC(),
			CustomerID:   customer.ID,
			Status:       "Pending",
		}, "")
		require.Equal(t, http.StatusCreated, rec.Code)
		var got dto.Invoice
		decodeBody(t, rec, &got)
		assert.Equal(t, customer.FullName(), got.CustomerName)
		assert.Equal(t, 5000.0, got.TotalAmount)
	})

	t.Run("zero amount returns 400", func(t *testing.T) {
		rec := request(t, e, h.Create, http.MethodPost, "/api/invoices", &dto.CreateInvoiceRequest{
			SerialNumber: fmt.Sprintf("INV-ZERO-%d", ts),
			TotalAmount:  0,
			CustomerID:   customer.ID,
			Status:       "Pending",
		}, "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		var body map[string]string
		decodeBody(t, rec, &body)
		assert.Equal(t, "invoice amount must be greater than zero", body["error"])
	})

	t.Run("missing customer returns 400 with the offending id", func(t *testing.T) {
		badID := customer.ID + 1_000_000
		rec := request(t, e, h.Create, http.MethodPost, "/api/invoices", &dto.CreateInvoiceRequest{
			SerialNumber: fmt.Sprintf("INV-NOCUST-%d", ts),
			TotalAmount:  100,
			CustomerID:   badID,
			Status:       "Pending",
		}, "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		var body map[string]string
		decodeBody(t, rec, &body)
		assert.Equal(t, fmt.Sprintf("customer with id %d does not exist", badID), body["error"])
	})

	t.Run("missing serial number fails validation", func(t *testing.T) {
		rec := request(t, e, h.Create, http.MethodPost, "/api/invoices", &dto.CreateInvoiceRequest{
			TotalAmount: 100,
			CustomerID:  customer.ID,
			Status:      "Pending",
		}, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
