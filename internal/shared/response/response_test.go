package response_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/udoykumar/assets-verse-server/internal/shared/response"
)

func TestNewListMeta(t *testing.T) {
	t.Run("rounds total pages up", func(t *testing.T) {
		meta := response.NewListMeta(25, 2, 10)

		assert.Equal(t, int64(25), meta.Total)
		assert.Equal(t, 2, meta.Page)
		assert.Equal(t, 10, meta.Limit)
		assert.Equal(t, 3, meta.TotalPages)
	})

	t.Run("exact multiple has no partial page", func(t *testing.T) {
		meta := response.NewListMeta(20, 1, 10)

		assert.Equal(t, 2, meta.TotalPages)
	})

	t.Run("empty collection has zero pages", func(t *testing.T) {
		meta := response.NewListMeta(0, 1, 10)

		assert.Equal(t, 0, meta.TotalPages)
	})

	t.Run("zero limit does not divide by zero", func(t *testing.T) {
		meta := response.NewListMeta(10, 1, 0)

		assert.Equal(t, 0, meta.TotalPages)
	})
}
