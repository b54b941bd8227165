package service

import (
	"context"
	"fmt"

	"github.com/mvergaraz/puntoventa/internal/apperr"
	"github.com/mvergaraz/puntoventa/internal/model"
	"github.com/mvergaraz/puntoventa/internal/storage/jsonfile"
)

type ProductParams struct {
	Name     string
	Price    float64
	Stock    int
	Category string
}

type ProductService interface {
	ListProducts(ctx context.Context) ([]model.Product, error)
	GetProduct(ctx context.Context, id string) (model.Product, error)
	CreateProduct(ctx context.Context, params ProductParams) (model.Product, error)
	UpdateProduct(ctx context.Context, id string, params ProductParams) (model.Product, error)
	DeleteProduct(ctx context.Context, id string) error
}

type productService struct {
	store *jsonfile.Store
}

func NewProductService(store *jsonfile.Store) ProductService {
	return &productService{store: store}
}

func (s *productService) ListProducts(ctx context.Context) ([]model.Product, error) {
	products, err := s.store.ListProducts()
	if err != nil {
		return nil, fmt.Errorf("store list products: %w", err)
	}
	return products, nil
}

func (s *productService) GetProduct(ctx context.Context, id string) (model.Product, error) {
	product, found, err := s.store.GetProductByID(id)
	if err != nil {
		return model.Product{}, fmt.Errorf("store get product: %w", err)
	}
	if !found {
		return model.Product{}, apperr.ProductNotFoundErr
	}
	return product, nil
}

func (s *productService) CreateProduct(ctx context.Context, params ProductParams) (model.Product, error) {
	id, err := newID()
	if err != nil {
		return model.Product{}, err
	}

	product := model.Product{
		ID:        id,
		Name:      params.Name,
		Price:     params.Price,
		Stock:     params.Stock,
		Category:  params.Category,
		CreatedAt: nowTimestamp(),
	}

	if err := s.store.InsertProduct(product); err != nil {
		return model.Product{}, fmt.Errorf("store insert product: %w", err)
	}

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id string, params ProductParams) (model.Product, error) {
	existing, found, err := s.store.GetProductByID(id)
	if err != nil {
		return model.Product{}, fmt.Errorf("store get product: %w", err)
	}
	if !found {
		return model.Product{}, apperr.ProductNotFoundErr
	}

	// Identifier and creation timestamp are carried over from the
	// stored record; the payload cannot override them.
	product := model.Product{
		ID:        id,
		Name:      params.Name,
		Price:     params.Price,
		Stock:     params.Stock,
		Category:  params.Category,
		CreatedAt: existing.CreatedAt,
	}

	found, err = s.store.UpdateProductByID(id, product)
	if err != nil {
		return model.Product{}, fmt.Errorf("store update product: %w", err)
	}
	if !found {
		return model.Product{}, apperr.ProductNotFoundErr
	}

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id string) error {
	found, err := s.store.DeleteProductByID(id)
	if err != nil {
		return fmt.Errorf("store delete product: %w", err)
	}
	if !found {
		return apperr.ProductNotFoundErr
	}
	return nil
}
