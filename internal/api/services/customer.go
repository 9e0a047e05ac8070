package services

import (
	"context"

	"realty/internal/api/dto"
	"realty/internal/domain"
	"realty/internal/repository"
)

type CustomerService struct {
	customerRepo *repository.CustomerRepository
}

func NewCustomerService(customerRepo *repository.CustomerRepository) *CustomerService {
	return &CustomerService{customerRepo: customerRepo}
}

func (s *CustomerService) GetAll(ctx context.Context) ([]*dto.Customer, error) {
	customers, err := s.customerRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	return dto.CustomersFromDomain(customers), nil
}

func (s *CustomerService) GetByID(ctx context.Context, id int64) (*dto.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return dto.CustomerFromDomain(customer), nil
}

func (s *CustomerService) Create(ctx context.Context, req *dto.CreateCustomerRequest) (*dto.Customer, error) {
	exists, err := s.customerRepo.EmailExists(ctx, req.Email, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, repository.ErrDuplicateEmail
	}

	customer := &domain.Customer{
		FirstName:      req.FirstName,
		LastName:       req.LastName,
		Email:          req.Email,
		IdentityNumber: req.IdentityNumber,
		Balance:        req.Balance,
		PhoneNumber:    req.PhoneNumber,
	}

	if err := s.customerRepo.Add(ctx, customer); err != nil {
		return nil, err
	}
	return dto.CustomerFromDomain(customer), nil
}

func (s *CustomerService) Update(ctx context.Context, id int64, req *dto.UpdateCustomerRequest) (*dto.Customer, error) {
	customer, err := s.customerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// A customer may keep their own email on update.
	exists, err := s.customerRepo.EmailExists(ctx, req.Email, id)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, repository.ErrDuplicateEmail
	}

	customer.FirstName = req.FirstName
	customer.LastName = req.LastName
	customer.Email = req.Email
	customer.IdentityNumber = req.IdentityNumber
	customer.Balance = req.Balance
	customer.PhoneNumber = req.PhoneNumber

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, err
	}
	return dto.CustomerFromDomain(customer), nil
}

func (s *CustomerService) Delete(ctx context.Context, id int64) (bool, error) {
	return s.customerRepo.Delete(ctx, id)
}
