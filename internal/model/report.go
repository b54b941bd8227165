package model

// SalesSummary aggregates every recorded sale.
type SalesSummary struct {
	TotalSales   int     `json:"total_ventas"`
	TotalRevenue float64 `json:"total_ingresos"`
	AveragePer   float64 `json:"promedio_por_venta"`
}

// PopularProduct is one entry of the top-sold-products ranking.
type PopularProduct struct {
	ProductID    string `json:"producto_id"`
	Name         string `json:"nombre"`
	QuantitySold int    `json:"cantidad_vendida"`
}
