package paginate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mvergaraz/puntoventa/pkg/paginate"
)

func TestNew(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7}

	t.Run("Should slice the first page", func(t *testing.T) {
		page := paginate.New(items, 1, 3)

		assert.Equal(t, []int{1, 2, 3}, page.Items)
		assert.Equal(t, 7, page.Pagination.TotalItems)
		assert.Equal(t, 3, page.Pagination.TotalPages)
		assert.True(t, page.Pagination.HasNext)
		assert.False(t, page.Pagination.HasPrev)
	})

	t.Run("Should slice a partial last page", func(t *testing.T) {
		page := paginate.New(items, 3, 3)

		assert.Equal(t, []int{7}, page.Items)
		assert.False(t, page.Pagination.HasNext)
		assert.True(t, page.Pagination.HasPrev)
	})

	t.Run("Should return empty items past the end", func(t *testing.T) {
		page := paginate.New(items, 9, 3)

		assert.Empty(t, page.Items)
		assert.Equal(t, 7, page.Pagination.TotalItems)
	})

	t.Run("Should normalize out-of-range arguments", func(t *testing.T) {
		page := paginate.New(items, 0, 0)

		assert.Equal(t, 1, page.Pagination.Page)
		assert.Equal(t, 10, page.Pagination.PageSize)
		assert.Equal(t, items, page.Items)
	})

	t.Run("Should paginate an empty slice", func(t *testing.T) {
		page := paginate.New([]int{}, 1, 10)

		assert.Empty(t, page.Items)
		assert.Equal(t, 0, page.Pagination.TotalPages)
	})
}
