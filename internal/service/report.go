package service

import (
	"context"
	"fmt"
	"sort"

	"github.com/mvergaraz/puntoventa/internal/model"
	"github.com/mvergaraz/puntoventa/internal/storage/jsonfile"
)

// popularProductsLimit caps the popular-products ranking.
const popularProductsLimit = 10

// unknownProductName labels ranking entries whose product has been
// deleted from the catalog since the sale was recorded.
const unknownProductName = "Producto desconocido"

type ReportService interface {
	SalesSummary(ctx context.Context) (model.SalesSummary, error)
	PopularProducts(ctx context.Context) ([]model.PopularProduct, error)
}

type reportService struct {
	store *jsonfile.Store
}

func NewReportService(store *jsonfile.Store) ReportService {
	return &reportService{store: store}
}

func (s *reportService) SalesSummary(ctx context.Context) (model.SalesSummary, error) {
	sales, err := s.store.ListSales()
	if err != nil {
		return model.SalesSummary{}, fmt.Errorf("store list sales: %w", err)
	}

	summary := model.SalesSummary{TotalSales: len(sales)}
	for _, sale := range sales {
		summary.TotalRevenue += sale.Total
	}
	if summary.TotalSales > 0 {
		summary.AveragePer = summary.TotalRevenue / float64(summary.TotalSales)
	}

	return summary, nil
}

func (s *reportService) PopularProducts(ctx context.Context) ([]model.PopularProduct, error) {
	sales, err := s.store.ListSales()
	if err != nil {
		return nil, fmt.Errorf("store list sales: %w", err)
	}
	products, err := s.store.ListProducts()
	if err != nil {
		return nil, fmt.Errorf("store list products: %w", err)
	}

	// Accumulate quantities in encounter order so ties rank by first
	// appearance after the stable sort.
	quantities := make(map[string]int)
	order := make([]string, 0)
	for _, sale := range sales {
		for _, item := range sale.Items {
			if _, seen := quantities[item.ProductID]; !seen {
				order = append(order, item.ProductID)
			}
			quantities[item.ProductID] += item.Quantity
		}
	}

	names := make(map[string]string, len(products))
	for _, product := range products {
		names[product.ID] = product.Name
	}

	ranking := make([]model.PopularProduct, 0, len(order))
	for _, productID := range order {
		name, ok := names[productID]
		if !ok {
			name = unknownProductName
		}
		ranking = append(ranking, model.PopularProduct{
			ProductID:    productID,
			Name:         name,
			QuantitySold: quantities[productID],
		})
	}

	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].QuantitySold > ranking[j].QuantitySold
	})

	if len(ranking) > popularProductsLimit {
		ranking = ranking[:popularProductsLimit]
	}

	return ranking, nil
}
