package handlers

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"realty/internal/api/dto"
	"realty/internal/testutil"
)

func TestCustomerHandler_Lifecycle(t *testing.T) {
	testutil.RequireDB(t, testDB)
	e := newTestEcho()
	h := NewCustomerHandler(testDB)
	ts := time.Now().UnixNano()

	email := fmt.Sprintf("ahmet%d@example.com", ts)
	createReq := &dto.CreateCustomerRequest{
		FirstName:   "Ahmet",
		LastName:    "Yilmaz",
		Email:       email,
		Balance:     50000,
		PhoneNumber: "+90 555 123 4567",
	}

	var created dto.Customer
	t.Run("create returns 201", func(t *testing.T) {
		rec := request(t, e, h.Create, http.MethodPost, "/api/customers", createReq, "")
		require.Equal(t, http.StatusCreated, rec.Code)
		decodeBody(t, rec, &created)
		assert.Greater(t, created.ID, int64(0))
		assert.Equal(t, email, created.Email)
	})

	customerID := fmt.Sprintf("%d", created.ID)

	t.Run("duplicate email returns 400", func(t *testing.T) {
		rec := request(t, e, h.Create, http.MethodPost, "/api/customers", createReq, "")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		var body map[string]string
		decodeBody(t, rec, &body)
		assert.Contains(t, body["error"], "already exists")
	})

	t.Run("get by id returns the customer", func(t *testing.T) {
		rec := request(t, e, h.GetByID, http.MethodGet, "/api/customers/"+customerID, nil, customerID)
		require.Equal(t, http.StatusOK, rec.Code)
		var got dto.Customer
		decodeBody(t, rec, &got)
		assert.Equal(t, created.ID, got.ID)
		assert.Equal(t, 50000.0, got.Balance)
	})

	newEmail := fmt.Sprintf("ahmet.new%d@example.com", ts)
	t.Run("update changes balance and email", func(t *testing.T) {
		rec := request(t, e, h.Update, http.MethodPut, "/api/customers/"+customerID, &dto.UpdateCustomerRequest{
			FirstName:   createReq.FirstName,
			LastName:    createReq.LastName,
			Email:       newEmail,
			Balance:     75000,
			PhoneNumber: createReq.PhoneNumber,
		}, customerID)
		require.Equal(t, http.StatusOK, rec.Code)
		var got dto.Customer
		decodeBody(t, rec, &got)
		assert.Equal(t, 75000.0, got.Balance)
		assert.Equal(t, newEmail, got.Email)
	})

	t.Run("delete returns 204", func(t *testing.T) {
		rec := request(t, e, h.Delete, http.MethodDelete, "/api/customers/"+customerID, nil, customerID)
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})

	t.Run("get after delete returns 404", func(t *testing.T) {
		rec := request(t, e, h.GetByID, http.MethodGet, "/api/customers/"+customerID, nil, customerID)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("second delete returns 404", func(t *testing.T) {
		rec := request(t, e, h.Delete, http.MethodDelete, "/api/customers/"+customerID, nil, customerID)
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCustomerHandler_BadRequests(t *testing.T) {
	testutil.RequireDB(t, testDB)
	e := newTestEcho()
	h := NewCustomerHandler(testDB)

	t.Run("non-numeric id returns 400", func(t *testing.T) {
		rec := request(t, e, h.GetByID, http.MethodGet, "/api/customers/abc", nil, "abc")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		var body map[string]string
		decodeBody(t, rec, &body)
		assert.Equal(t, "invalid id", body["error"])
	})

	t.Run("malformed email fails validation", func(t *testing.T) {
		rec := request(t, e, h.Create, http.MethodPost, "/api/customers", &dto.CreateCustomerRequest{
			FirstName: "No",
			LastName:  "Email",
			Email:     "not-an-email",
		}, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("missing required fields fail validation", func(t *testing.T) {
		rec := request(t, e, h.Create, http.MethodPost, "/api/customers", &dto.CreateCustomerRequest{}, "")
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
