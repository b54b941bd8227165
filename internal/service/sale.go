package service

import (
	"context"
	"fmt"

	"github.com/mvergaraz/puntoventa/internal/apperr"
	"github.com/mvergaraz/puntoventa/internal/model"
	"github.com/mvergaraz/puntoventa/internal/storage/jsonfile"
)

type SaleParams struct {
	CustomerID string
	Items      []model.SaleItem
}

type SaleService interface {
	ListSales(ctx context.Context) ([]model.Sale, error)
	GetSale(ctx context.Context, id string) (model.Sale, error)
	CreateSale(ctx context.Context, params SaleParams) (model.Sale, error)
	ListSalesByCustomer(ctx context.Context, customerID string) ([]model.Sale, error)
}

type saleService struct {
	store *jsonfile.Store
}

func NewSaleService(store *jsonfile.Store) SaleService {
	return &saleService{store: store}
}

func (s *saleService) ListSales(ctx context.Context) ([]model.Sale, error) {
	sales, err := s.store.ListSales()
	if err != nil {
		return nil, fmt.Errorf("store list sales: %w", err)
	}
	return sales, nil
}

func (s *saleService) GetSale(ctx context.Context, id string) (model.Sale, error) {
	sale, found, err := s.store.GetSaleByID(id)
	if err != nil {
		return model.Sale{}, fmt.Errorf("store get sale: %w", err)
	}
	if !found {
		return model.Sale{}, apperr.SaleNotFoundErr
	}
	return sale, nil
}

// CreateSale validates the customer and every line item, computes the
// total, debits stock per item and persists the sale.
//
// The stock check and the later per-item debits are separate
// read-modify-write cycles against the store. A line item is checked
// against the stock the product had when its own check ran, so repeating
// a product across items can drive stock negative. That interleaving is
// kept as is for compatibility with existing documents and clients.
func (s *saleService) CreateSale(ctx context.Context, params SaleParams) (model.Sale, error) {
	_, found, err := s.store.GetCustomerByID(params.CustomerID)
	if err != nil {
		return model.Sale{}, fmt.Errorf("store get customer: %w", err)
	}
	if !found {
		return model.Sale{}, apperr.CustomerNotFoundErr
	}

	// The total uses the caller-supplied unit price, never the current
	// catalog price.
	var total float64
	for _, item := range params.Items {
		product, found, err := s.store.GetProductByID(item.ProductID)
		if err != nil {
			return model.Sale{}, fmt.Errorf("store get product: %w", err)
		}
		if !found {
			return model.Sale{}, apperr.SaleProductNotFound(item.ProductID)
		}
		if product.Stock < item.Quantity {
			return model.Sale{}, apperr.InsufficientStock(product.Name)
		}

		total += item.UnitPrice * float64(item.Quantity)
	}

	id, err := newID()
	if err != nil {
		return model.Sale{}, err
	}

	sale := model.Sale{
		ID:         id,
		CustomerID: params.CustomerID,
		Items:      params.Items,
		Total:      total,
		Date:       nowTimestamp(),
		Status:     model.SaleStatusCompleted,
	}

	for _, item := range params.Items {
		if _, err := s.store.DecrementStock(item.ProductID, item.Quantity); err != nil {
			return model.Sale{}, fmt.Errorf("store decrement stock: %w", err)
		}
	}

	if err := s.store.InsertSale(sale); err != nil {
		return model.Sale{}, fmt.Errorf("store insert sale: %w", err)
	}

	return sale, nil
}

func (s *saleService) ListSalesByCustomer(ctx context.Context, customerID string) ([]model.Sale, error) {
	sales, err := s.store.ListSalesByCustomer(customerID)
	if err != nil {
		return nil, fmt.Errorf("store list sales by customer: %w", err)
	}
	return sales, nil
}
