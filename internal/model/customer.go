package model

// Customer mirrors the persisted cliente record.
type Customer struct {
	ID           string `json:"id"`
	Name         string `json:"nombre"`
	Email        string `json:"email"`
	Phone        string `json:"telefono"`
	RegisteredAt string `json:"fecha_registro"`
}
