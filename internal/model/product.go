package model

// Product is a catalog entry. JSON field names match the persisted
// document format (Spanish domain language) and must not change.
type Product struct {
	ID        string  `json:"id"`
	Name      string  `json:"nombre"`
	Price     float64 `json:"precio"`
	Stock     int     `json:"stock"`
	Category  string  `json:"categoria"`
	CreatedAt string  `json:"fecha_creacion"`
}
