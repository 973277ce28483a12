package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		name     string
		total    int64
		pageSize int
		want     int64
	}{
		{"no records", 0, 10, 0},
		{"exact fit", 20, 10, 2},
		{"partial last page", 15, 10, 2},
		{"single record", 1, 10, 1},
		{"page size one", 7, 1, 7},
		{"invalid page size", 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, TotalPages(tt.total, tt.pageSize))
		})
	}
}
