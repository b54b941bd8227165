package model

// SaleStatusCompleted is the only sale status this system produces.
// There is no cancellation or refund state machine.
const SaleStatusCompleted = "completada"

// SaleItem is one product line within a sale. UnitPrice is the price
// supplied by the caller at sale time, independent of the catalog price.
type SaleItem struct {
	ProductID string  `json:"producto_id"`
	Quantity  int     `json:"cantidad"`
	UnitPrice float64 `json:"precio_unitario"`
}

// Sale mirrors the persisted venta record. CustomerID references an
// existing customer at creation time only; it is not enforced afterwards.
type Sale struct {
	ID         string     `json:"id"`
	CustomerID string     `json:"cliente_id"`
	Items      []SaleItem `json:"items"`
	Total      float64    `json:"total"`
	Date       string     `json:"fecha"`
	Status     string     `json:"estado"`
}
