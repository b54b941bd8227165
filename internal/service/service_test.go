package service_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mvergaraz/puntoventa/internal/storage/jsonfile"
)

func newTestStore(t *testing.T) *jsonfile.Store {
	t.Helper()

	store, err := jsonfile.New(filepath.Join(t.TempDir(), "pos_database.json"))
	require.NoError(t, err)

	return store
}
