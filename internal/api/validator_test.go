package api

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realty/internal/api/dto"
)

func TestValidator(t *testing.T) {
	v := NewValidator()

	t.Run("accepts a complete customer payload", func(t *testing.T) {
		req := &dto.CreateCustomerRequest{
			FirstName: "Ayse",
			LastName:  "Yilmaz",
			Email:     "ayse@example.com",
		}
		require.NoError(t, v.Validate(req))
	})

	t.Run("rejects a malformed email", func(t *testing.T) {
		req := &dto.CreateCustomerRequest{
			FirstName: "Ayse",
			LastName:  "Yilmaz",
			Email:     "not-an-email",
		}
		assert.Error(t, v.Validate(req))
	})

	t.Run("rejects missing required fields", func(t *testing.T) {
		assert.Error(t, v.Validate(&dto.CreateCategoryRequest{}))
		assert.Error(t, v.Validate(&dto.CreateLocationRequest{CityName: "Ankara"}))
	})

	t.Run("amount is not a payload concern", func(t *testing.T) {
		// A zero amount passes payload validation; the invoice service
		// owns that rule.
		req := &dto.CreateInvoiceRequest{
			SerialNumber: "INV-1",
			TotalAmount:  0,
			CustomerID:   1,
			Status:       "Pending",
		}
		assert.NoError(t, v.Validate(req))
	})
}
