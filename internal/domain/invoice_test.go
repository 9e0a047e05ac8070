package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInvoice_CustomerName(t *testing.T) {
	t.Run("uses joined customer names", func(t *testing.T) {
		invoice := &Invoice{CustomerFirstName: "Mehmet", CustomerLastName: "Demir"}
		assert.Equal(t, "Mehmet Demir", invoice.CustomerName())
	})

	t.Run("empty when the customer is absent", func(t *testing.T) {
		invoice := &Invoice{}
		assert.Equal(t, "", invoice.CustomerName())
	})

	t.Run("trims partial names", func(t *testing.T) {
		invoice := &Invoice{CustomerFirstName: "Mehmet"}
		assert.Equal(t, "Mehmet", invoice.CustomerName())
	})
}
