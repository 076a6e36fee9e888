package helper

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewPagedResponse_PageMath(t *testing.T) {
	cases := []struct {
		name       string
		total      int64
		size       int
		totalPages int
	}{
		{"kosong", 0, 10, 0},
		{"pas satu halaman", 10, 10, 1},
		{"lebih satu", 11, 10, 2},
		{"banyak halaman", 95, 10, 10},
		{"size satu", 3, 1, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			resp := NewPagedResponse([]int{}, tc.total, tc.size)
			assert.Equal(t, tc.totalPages, resp.TotalPages)
			assert.Equal(t, tc.total, resp.TotalElements)
		})
	}
}

func TestPageParams_Offset(t *testing.T) {
	p := PageParams{Page: 3, Size: 25}
	assert.Equal(t, 75, p.Offset())
	assert.Equal(t, 25, p.Limit())
}

func TestEmptyPage_WellFormed(t *testing.T) {
	resp := EmptyPage()
	assert.NotNil(t, resp.Content)
	assert.Zero(t, resp.TotalPages)
	assert.Zero(t, resp.TotalElements)
}
