// Package service implements the catalog, sale and reporting workflows
// on top of the jsonfile store.
package service

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// newID generates a fresh record identifier. Identifiers are opaque to
// clients and never reused.
func newID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate uuid v7: %w", err)
	}
	return id.String(), nil
}

// nowTimestamp stamps new records. Stored timestamps are kept as opaque
// strings afterwards so they survive updates verbatim.
func nowTimestamp() string {
	return time.Now().Format(time.RFC3339Nano)
}
