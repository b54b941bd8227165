package service_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mvergaraz/puntoventa/internal/model"
	"github.com/mvergaraz/puntoventa/internal/service"
)

func TestReportServiceSalesSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("Should return zeros when there are no sales", func(t *testing.T) {
		svc := service.NewReportService(newTestStore(t))

		summary, err := svc.SalesSummary(ctx)
		require.NoError(t, err)

		assert.Equal(t, 0, summary.TotalSales)
		assert.Equal(t, 0.0, summary.TotalRevenue)
		assert.Equal(t, 0.0, summary.AveragePer)
	})

	t.Run("Should aggregate count, revenue and average", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, store.InsertSale(model.Sale{ID: "v-1", Total: 100}))
		require.NoError(t, store.InsertSale(model.Sale{ID: "v-2", Total: 200}))
		require.NoError(t, store.InsertSale(model.Sale{ID: "v-3", Total: 600}))

		summary, err := service.NewReportService(store).SalesSummary(ctx)
		require.NoError(t, err)

		assert.Equal(t, 3, summary.TotalSales)
		assert.Equal(t, 900.0, summary.TotalRevenue)
		assert.Equal(t, 300.0, summary.AveragePer)
	})
}

func TestReportServicePopularProducts(t *testing.T) {
	ctx := context.Background()

	t.Run("Should rank by accumulated quantity descending", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, store.InsertProduct(model.Product{ID: "p-1", Name: "Teclado"}))
		require.NoError(t, store.InsertProduct(model.Product{ID: "p-2", Name: "Mouse"}))
		require.NoError(t, store.InsertSale(model.Sale{ID: "v-1", Items: []model.SaleItem{
			{ProductID: "p-1", Quantity: 2},
			{ProductID: "p-2", Quantity: 5},
		}}))
		require.NoError(t, store.InsertSale(model.Sale{ID: "v-2", Items: []model.SaleItem{
			{ProductID: "p-1", Quantity: 1},
		}}))

		ranking, err := service.NewReportService(store).PopularProducts(ctx)
		require.NoError(t, err)

		require.Len(t, ranking, 2)
		assert.Equal(t, model.PopularProduct{ProductID: "p-2", Name: "Mouse", QuantitySold: 5}, ranking[0])
		assert.Equal(t, model.PopularProduct{ProductID: "p-1", Name: "Teclado", QuantitySold: 3}, ranking[1])
	})

	t.Run("Should break ties by encounter order", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, store.InsertProduct(model.Product{ID: "p-1", Name: "Teclado"}))
		require.NoError(t, store.InsertProduct(model.Product{ID: "p-2", Name: "Mouse"}))
		require.NoError(t, store.InsertSale(model.Sale{ID: "v-1", Items: []model.SaleItem{
			{ProductID: "p-2", Quantity: 4},
			{ProductID: "p-1", Quantity: 4},
		}}))

		ranking, err := service.NewReportService(store).PopularProducts(ctx)
		require.NoError(t, err)

		require.Len(t, ranking, 2)
		assert.Equal(t, "p-2", ranking[0].ProductID)
		assert.Equal(t, "p-1", ranking[1].ProductID)
	})

	t.Run("Should cap the ranking at ten entries", func(t *testing.T) {
		store := newTestStore(t)

		items := make([]model.SaleItem, 0, 12)
		for i := 0; i < 12; i++ {
			id := fmt.Sprintf("p-%d", i)
			require.NoError(t, store.InsertProduct(model.Product{ID: id, Name: id}))
			items = append(items, model.SaleItem{ProductID: id, Quantity: i + 1})
		}
		require.NoError(t, store.InsertSale(model.Sale{ID: "v-1", Items: items}))

		ranking, err := service.NewReportService(store).PopularProducts(ctx)
		require.NoError(t, err)

		require.Len(t, ranking, 10)
		assert.Equal(t, 12, ranking[0].QuantitySold)
		assert.Equal(t, 3, ranking[9].QuantitySold)
	})

	t.Run("Should label products missing from the catalog", func(t *testing.T) {
		store := newTestStore(t)
		require.NoError(t, store.InsertSale(model.Sale{ID: "v-1", Items: []model.SaleItem{
			{ProductID: "deleted-product", Quantity: 2},
		}}))

		ranking, err := service.NewReportService(store).PopularProducts(ctx)
		require.NoError(t, err)

		require.Len(t, ranking, 1)
		assert.Equal(t, "Producto desconocido", ranking[0].Name)
		assert.Equal(t, 2, ranking[0].QuantitySold)
	})

	t.Run("Should return an empty ranking with no sales", func(t *testing.T) {
		ranking, err := service.NewReportService(newTestStore(t)).PopularProducts(ctx)
		require.NoError(t, err)
		assert.Empty(t, ranking)
	})
}
