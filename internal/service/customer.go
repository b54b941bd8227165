package service

import (
	"context"
	"fmt"

	"github.com/mvergaraz/puntoventa/internal/apperr"
	"github.com/mvergaraz/puntoventa/internal/model"
	"github.com/mvergaraz/puntoventa/internal/storage/jsonfile"
	"github.com/mvergaraz/puntoventa/pkg/validator"
)

type CustomerParams struct {
	Name  string
	Email string
	Phone string
}

type CustomerService interface {
	ListCustomers(ctx context.Context) ([]model.Customer, error)
	GetCustomer(ctx context.Context, id string) (model.Customer, error)
	CreateCustomer(ctx context.Context, params CustomerParams) (model.Customer, error)
	UpdateCustomer(ctx context.Context, id string, params CustomerParams) (model.Customer, error)
	DeleteCustomer(ctx context.Context, id string) error
}

type customerService struct {
	store *jsonfile.Store
}

func NewCustomerService(store *jsonfile.Store) CustomerService {
	return &customerService{store: store}
}

func (s *customerService) ListCustomers(ctx context.Context) ([]model.Customer, error) {
	customers, err := s.store.ListCustomers()
	if err != nil {
		return nil, fmt.Errorf("store list customers: %w", err)
	}
	return customers, nil
}

func (s *customerService) GetCustomer(ctx context.Context, id string) (model.Customer, error) {
	customer, found, err := s.store.GetCustomerByID(id)
	if err != nil {
		return model.Customer{}, fmt.Errorf("store get customer: %w", err)
	}
	if !found {
		return model.Customer{}, apperr.CustomerNotFoundErr
	}
	return customer, nil
}

func (s *customerService) CreateCustomer(ctx context.Context, params CustomerParams) (model.Customer, error) {
	// Format checks run before any identifier is generated.
	if !validator.IsValidEmail(params.Email) {
		return model.Customer{}, apperr.InvalidEmailErr
	}
	if !validator.IsValidPhone(params.Phone) {
		return model.Customer{}, apperr.InvalidPhoneErr
	}

	id, err := newID()
	if err != nil {
		return model.Customer{}, err
	}

	customer := model.Customer{
		ID:           id,
		Name:         params.Name,
		Email:        params.Email,
		Phone:        params.Phone,
		RegisteredAt: nowTimestamp(),
	}

	if err := s.store.InsertCustomer(customer); err != nil {
		return model.Customer{}, fmt.Errorf("store insert customer: %w", err)
	}

	return customer, nil
}

func (s *customerService) UpdateCustomer(ctx context.Context, id string, params CustomerParams) (model.Customer, error) {
	existing, found, err := s.store.GetCustomerByID(id)
	if err != nil {
		return model.Customer{}, fmt.Errorf("store get customer: %w", err)
	}
	if !found {
		return model.Customer{}, apperr.CustomerNotFoundErr
	}

	customer := model.Customer{
		ID:           id,
		Name:         params.Name,
		Email:        params.Email,
		Phone:        params.Phone,
		RegisteredAt: existing.RegisteredAt,
	}

	found, err = s.store.UpdateCustomerByID(id, customer)
	if err != nil {
		return model.Customer{}, fmt.Errorf("store update customer: %w", err)
	}
	if !found {
		return model.Customer{}, apperr.CustomerNotFoundErr
	}

	return customer, nil
}

func (s *customerService) DeleteCustomer(ctx context.Context, id string) error {
	found, err := s.store.DeleteCustomerByID(id)
	if err != nil {
		return fmt.Errorf("store delete customer: %w", err)
	}
	if !found {
		return apperr.CustomerNotFoundErr
	}
	return nil
}
