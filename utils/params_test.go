package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseItineraryQuery_Defaults(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/itineraries", nil)

	q := ParseItineraryQuery(r)

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.PageSize)
	assert.Empty(t, q.Destination)
	assert.Empty(t, q.Countries)
	assert.Empty(t, q.Sort)
}

func TestParseItineraryQuery_AllParams(t *testing.T) {
	r := httptest.NewRequest("GET",
		"/api/itineraries?destination=lisbon&minDuration=3&maxDuration=10"+
			"&minBudget=1000&maxBudget=90000&countries=Portugal,Spain"+
			"&itineraryTags=Food,%20beach&status=published&sort=price-low"+
			"&page=3&pageSize=25", nil)

	q := ParseItineraryQuery(r)

	assert.Equal(t, "lisbon", q.Destination)
	assert.Equal(t, 3, q.MinDuration)
	assert.Equal(t, 10, q.MaxDuration)
	assert.Equal(t, int64(1000), q.MinBudget)
	assert.Equal(t, int64(90000), q.MaxBudget)
	assert.Equal(t, []string{"Portugal", "Spain"}, q.Countries)
	assert.Equal(t, []string{"food", "beach"}, q.ItineraryTags)
	assert.Equal(t, []string{"published"}, q.Status)
	assert.Equal(t, "price-low", q.Sort)
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 25, q.PageSize)
}

func TestParseItineraryQuery_InvalidPagination(t *testing.T) {
	r := httptest.NewRequest("GET", "/api/itineraries?page=-2&pageSize=0", nil)

	q := ParseItineraryQuery(r)

	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 10, q.PageSize)
}

func TestSplitTags(t *testing.T) {
	assert.Equal(t, []string{}, SplitTags(""))
	assert.Equal(t, []string{"beach", "food"}, SplitTags("Beach, food, beach"))
	assert.Equal(t, []string{"a"}, SplitTags(" a ,, "))
}
