package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate(t *testing.T) {
	p := &PaginationParams{Page: 0, PerPage: 0}
	p.Validate()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 15, p.PerPage)

	p = &PaginationParams{Page: 2, PerPage: 500}
	p.Validate()
	assert.Equal(t, 2, p.Page)
	assert.Equal(t, 100, p.PerPage)
}

func TestSlice(t *testing.T) {
	items := make([]int, 0, 25)
	for i := 1; i <= 25; i++ {
		items = append(items, i)
	}

	result := Slice(items, &PaginationParams{Page: 2, PerPage: 10})
	require.Len(t, result.Items, 10)
	assert.Equal(t, 11, result.Items[0])
	assert.Equal(t, int64(25), result.Pagination.Total)
	assert.Equal(t, 3, result.Pagination.TotalPages)
	assert.True(t, result.Pagination.HasNext)
	assert.True(t, result.Pagination.HasPrev)

	last := Slice(items, &PaginationParams{Page: 3, PerPage: 10})
	require.Len(t, last.Items, 5)
	assert.False(t, last.Pagination.HasNext)
}

func TestSlicePastEnd(t *testing.T) {
	result := Slice([]int{1, 2, 3}, &PaginationParams{Page: 9, PerPage: 10})
	assert.Empty(t, result.Items)
	assert.Equal(t, int64(3), result.Pagination.Total)
}
