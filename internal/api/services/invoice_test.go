package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realty/internal/api/dto"
	"realty/internal/domain"
	"realty/internal/repository"
	"realty/internal/testutil"
)

func newInvoiceService() *InvoiceService {
	return NewInvoiceService(
		repository.NewInvoiceRepository(testDB),
		repository.NewCustomerRepository(testDB),
	)
}

func seedCustomer(t *testing.T, ctx context.Context, ts int64) *domain.Customer {
	t.Helper()
	customer := &domain.Customer{
		FirstName: "Fatma",
		LastName:  fmt.Sprintf("Kaya%d", ts),
		Email:     fmt.Sprintf("fatma%d@example.com", ts),
	}
	require.NoError(t, repository.NewCustomerRepository(testDB).Add(ctx, customer))
	return customer
}

func TestInvoiceService_Create(t *testing.T) {
	testutil.RequireDB(t, testDB)
	ctx := context.Background()
	svc := newInvoiceService()
	ts := time.Now().UnixNano()

	customer := seedCustomer(t, ctx, ts)

	created, err := svc.Create(ctx, &dto.CreateInvoiceRequest{
		SerialNumber: fmt.Sprintf("INV-%d", ts),
		TotalAmount:  5000,
		InvoiceDate:  time.Now().UTC(),
		CustomerID:   customer.ID,
		Status:       "Pending",
	})
	require.NoError(t, err)
	assert.Greater(t, created.ID, int64(0))
	assert.Equal(t, customer.FullName(), created.CustomerName)
	assert.Equal(t, 5000.0, created.TotalAmount)

	t.Run("zero amount is rejected without persisting", func(t *testing.T) {
		serial := fmt.Sprintf("INV-ZERO-%d", ts)
		_, err := svc.Create(ctx, &dto.CreateInvoiceRequest{
			SerialNumber: serial,
			TotalAmount:  0,
			CustomerID:   customer.ID,
			Status:       "Pending",
		})
		assert.ErrorIs(t, err, ErrInvalidAmount)

		leftovers, err := repository.NewInvoiceRepository(testDB).Find(ctx, "serial_number = $1", serial)
		require.NoError(t, err)
		assert.Empty(t, leftovers)
	})

	t.Run("negative amount is rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, &dto.CreateInvoiceRequest{
			SerialNumber: fmt.Sprintf("INV-NEG-%d", ts),
			TotalAmount:  -10,
			CustomerID:   customer.ID,
			Status:       "Pending",
		})
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("amount is checked before the customer reference", func(t *testing.T) {
		_, err := svc.Create(ctx, &dto.CreateInvoiceRequest{
			SerialNumber: fmt.Sprintf("INV-BOTH-%d", ts),
			TotalAmount:  0,
			CustomerID:   customer.ID + 1_000_000,
			Status:       "Pending",
		})
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("missing customer is rejected", func(t *testing.T) {
		_, err := svc.Create(ctx, &dto.CreateInvoiceRequest{
			SerialNumber: fmt.Sprintf("INV-NOCUST-%d", ts),
			TotalAmount:  100,
			CustomerID:   customer.ID + 1_000_000,
			Status:       "Pending",
		})
		assert.ErrorIs(t, err, ErrCustomerNotFound)
	})
}

func TestInvoiceService_Update(t *testing.T) {
	testutil.RequireDB(t, testDB)
	ctx := context.Background()
	svc := newInvoiceService()
	ts := time.Now().UnixNano()

	customer := seedCustomer(t, ctx, ts)

	created, err := svc.Create(ctx, &dto.CreateInvoiceRequest{
		SerialNumber: fmt.Sprintf("INV-UPD-%d", ts),
		TotalAmount:  1000,
		InvoiceDate:  time.Now().UTC(),
		CustomerID:   customer.ID,
		Status:       "Pending",
	})
	require.NoError(t, err)

	updated, err := svc.Update(ctx, created.ID, &dto.UpdateInvoiceRequest{
		SerialNumber: created.SerialNumber,
		TotalAmount:  1500,
		InvoiceDate:  created.InvoiceDate,
		CustomerID:   customer.ID,
		Status:       "Paid",
	})
	require.NoError(t, err)
	assert.Equal(t, 1500.0, updated.TotalAmount)
	assert.Equal(t, "Paid", updated.Status)
	assert.Equal(t, customer.FullName(), updated.CustomerName)

	t.Run("zero amount is rejected", func(t *testing.T) {
		_, err := svc.Update(ctx, created.ID, &dto.UpdateInvoiceRequest{
			SerialNumber: created.SerialNumber,
			TotalAmount:  0,
			CustomerID:   customer.ID,
			Status:       "Paid",
		})
		assert.ErrorIs(t, err, ErrInvalidAmount)
	})

	t.Run("unknown invoice reports not found", func(t *testing.T) {
		_, err := svc.Update(ctx, 0, &dto.UpdateInvoiceRequest{
			SerialNumber: "INV-NONE",
			TotalAmount:  100,
			CustomerID:   customer.ID,
			Status:       "Pending",
		})
		assert.ErrorIs(t, err, repository.ErrNotFound)
	})
}
