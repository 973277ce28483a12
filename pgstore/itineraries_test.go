package pgstore

import (
	"testing"

	"itinero/models"

	"github.com/stretchr/testify/assert"
)

func TestOrderClause(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{models.SortMostRecent, "updated_at DESC"},
		{models.SortMostViewed, "views DESC"},
		{models.SortBestRated, "rating DESC"},
		{models.SortPriceLow, "price ASC"},
		{models.SortPriceHigh, "price DESC"},
		{"", "updated_at DESC"},
		{"garbage", "updated_at DESC"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			assert.Equal(t, tt.want, OrderClause(tt.key))
		})
	}
}
