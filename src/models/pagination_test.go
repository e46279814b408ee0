package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaginationNormalize(t *testing.T) {
	p := PaginationParams{Page: -2, Limit: 500, Order: "sideways"}
	p.Normalize()
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, MaxPageLimit, p.Limit)
	assert.Equal(t, "_id", p.SortBy)
	assert.Equal(t, "desc", p.Order)
	assert.Equal(t, -1, p.SortDirection())

	p = PaginationParams{Page: 3, Limit: 20, SortBy: "submittedAt", Order: "asc"}
	p.Normalize()
	assert.Equal(t, int64(40), p.GetSkip())
	assert.Equal(t, 1, p.SortDirection())
}

func TestNewPaginatedResponse(t *testing.T) {
	r := NewPaginatedResponse([]int{}, 21, PaginationParams{Page: 2, Limit: 10})
	assert.Equal(t, 3, r.TotalPages)
	assert.True(t, r.HasNext)
	assert.True(t, r.HasPrevious)

	r = NewPaginatedResponse(nil, 0, PaginationParams{Page: 1})
	assert.Equal(t, 0, r.TotalPages)
	assert.False(t, r.HasNext)
	assert.False(t, r.HasPrevious)
}
