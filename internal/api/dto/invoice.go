package dto

import (
	"time"

	"realty/internal/domain"
)

type Invoice struct {
	ID           int64     `json:"id"`
	SerialNumber string    `json:"serialNumber"`
	TotalAmount  float64   `json:"totalAmount"`
	InvoiceDate  time.Time `json:"invoiceDate"`
	CustomerID   int64     `json:"customerId"`
	CustomerName string    `json:"customerName"`
	Status       string    `json:"status"`
	CreatedDate  time.Time `json:"createdDate"`
}

type CreateInvoiceRequest struct {
	SerialNumber string    `json:"serialNumber" validate:"required,max=50"`
	TotalAmount  float64   `json:"totalAmount"`
	InvoiceDate  time.Time `json:"invoiceDate"`
	CustomerID   int64     `json:"customerId" validate:"required"`
	Status       string    `json:"status" validate:"required,max=50"`
}

type UpdateInvoiceRequest struct {
	SerialNumber string    `json:"serialNumber" validate:"required,max=50"`
	TotalAmount  float64   `json:"totalAmount"`
	InvoiceDate  time.Time `json:"invoiceDate"`
	CustomerID   int64     `json:"customerId" validate:"required"`
	Status       string    `json:"status" validate:"required,max=50"`
}

func InvoiceFromDomain(invoice *domain.Invoice) *Invoice {
	if invoice == nil {
		return nil
	}
	return &Invoice{
		ID:           invoice.ID,
		SerialNumber: invoice.SerialNumber,
		TotalAmount:  invoice.TotalAmount,
		InvoiceDate:  invoice.InvoiceDate,
		CustomerID:   invoice.CustomerID,
		CustomerName: invoice.CustomerName(),
		Status:       invoice.Status,
		CreatedDate:  invoice.CreatedDate,
	}
}

func InvoicesFromDomain(invoices []*domain.Invoice) []*Invoice {
	result := make([]*Invoice, len(invoices))
	for i, invoice := range invoices {
		result[i] = InvoiceFromDomain(invoice)
	}
	return result
}
