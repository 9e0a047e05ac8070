package dto

import (
	"time"

	"realty/internal/domain"
)

type Customer struct {
	ID             int64     `json:"id"`
	FirstName      string    `json:"firstName"`
	LastName       string    `json:"lastName"`
	Email          string    `json:"email"`
	IdentityNumber string    `json:"identityNumber"`
	Balance        float64   `json:"balance"`
	PhoneNumber    string    `json:"phoneNumber"`
	CreatedDate    time.Time `json:"createdDate"`
}

type CreateCustomerRequest struct {
	FirstName      string  `json:"firstName" validate:"required,max=100"`
	LastName       string  `json:"lastName" validate:"required,max=100"`
	Email          string  `json:"email" validate:"required,email,max=255"`
	IdentityNumber string  `json:"identityNumber" validate:"max=20"`
	Balance        float64 `json:"balance"`
	PhoneNumber    string  `json:"phoneNumber" validate:"max=20"`
}

type UpdateCustomerRequest struct {
	FirstName      string  `json:"firstName" validate:"required,max=100"`
	LastName       string  `json:"lastName" validate:"required,max=100"`
	Email          string  `json:"email" validate:"required,email,max=255"`
	IdentityNumber string  `json:"identityNumber" validate:"max=20"`
	Balance        float64 `json:"balance"`
	PhoneNumber    string  `json:"phoneNumber" validate:"max=20"`
}

func CustomerFromDomain(customer *domain.Customer) *Customer {
	if customer == nil {
		return nil
	}
	return &Customer{
		ID:             customer.ID,
		FirstName:      customer.FirstName,
		LastName:       customer.LastName,
		Email:          customer.Email,
		IdentityNumber: customer.IdentityNumber,
		Balance:        customer.Balance,
		PhoneNumber:    customer.PhoneNumber,
		CreatedDate:    customer.CreatedDate,
	}
}

func CustomersFromDomain(customers []*domain.Customer) []*Customer {
	result := make([]*Customer, len(customers))
	for i, customer := range customers {
		result[i] = CustomerFromDomain(customer)
	}
	return result
}
