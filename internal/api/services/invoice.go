package services

import (
	"context"
	"errors"

	"realty/internal/api/dto"
	"realty/internal/domain"
	"realty/internal/repository"
)

var (
	ErrInvalidAmount    = errors.New("invoice amount must be greater than zero")
	ErrCustomerNotFound = errors.New("customer does not exist")
	ErrRetrieveFailed   = errors.New("failed to retrieve created invoice")
)

type InvoiceService struct {
	invoiceRepo  *repository.InvoiceRepository
	customerRepo *repository.CustomerRepository
}

func NewInvoiceService(invoiceRepo *repository.InvoiceRepository, customerRepo *repository.CustomerRepository) *InvoiceService {
	return &InvoiceService{invoiceRepo: invoiceRepo, customerRepo: customerRepo}
}

func (s *InvoiceService) GetAll(ctx context.Context) ([]*dto.Invoice, error) {
	invoices, err := s.invoiceRepo.GetAllWithRelations(ctx)
	if err != nil {
		return nil, err
	}
	return dto.InvoicesFromDomain(invoices), nil
}

func (s *InvoiceService) GetByID(ctx context.Context, id int64) (*dto.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByIDWithRelations(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.InvoiceFromDomain(invoice), nil
}

func (s *InvoiceService) Create(ctx context.Context, req *dto.CreateInvoiceRequest) (*dto.Invoice, error) {
	// Amount is checked before the customer reference and before any
	// repository call.
	if req.TotalAmount <= 0 {
		return nil, ErrInvalidAmount
	}

	customerExists, err := s.customerRepo.Exists(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if !customerExists {
		return nil, ErrCustomerNotFound
	}

	invoice := &domain.Invoice{
		SerialNumber: req.SerialNumber,
		TotalAmount:  req.TotalAmount,
		InvoiceDate:  req.InvoiceDate,
		CustomerID:   req.CustomerID,
		Status:       req.Status,
	}

	if err := s.invoiceRepo.Add(ctx, invoice); err != nil {
		return nil, err
	}

	created, err := s.invoiceRepo.GetByIDWithRelations(ctx, invoice.ID)
	if err != nil {
		return nil, ErrRetrieveFailed
	}
	return dto.InvoiceFromDomain(created), nil
}

func (s *InvoiceService) Update(ctx context.Context, id int64, req *dto.UpdateInvoiceRequest) (*dto.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.TotalAmount <= 0 {
		return nil, ErrInvalidAmount
	}

	customerExists, err := s.customerRepo.Exists(ctx, req.CustomerID)
	if err != nil {
		return nil, err
	}
	if !customerExists {
		return nil, ErrCustomerNotFound
	}

	invoice.SerialNumber = req.SerialNumber
	invoice.TotalAmount = req.TotalAmount
	invoice.InvoiceDate = req.InvoiceDate
	invoice.CustomerID = req.CustomerID
	invoice.Status = req.Status

	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, err
	}

	updated, err := s.invoiceRepo.GetByIDWithRelations(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.InvoiceFromDomain(updated), nil
}

func (s *InvoiceService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.invoiceRepo.Delete(ctx, id)
}
