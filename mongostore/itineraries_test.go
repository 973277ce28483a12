package mongostore

import (
	"testing"

	"itinero/models"

	"github.com/stretchr/testify/assert"
	"go.mongodb.org/mongo-driver/bson"
)

func TestBuildFilter_Empty(t *testing.T) {
	filter := BuildFilter(models.ItineraryQuery{})
	assert.Empty(t, filter)
}

func TestBuildFilter_DurationBounds(t *testing.T) {
	filter := BuildFilter(models.ItineraryQuery{MinDuration: 3, MaxDuration: 10})

	assert.Equal(t, bson.M{"$gte": 3, "$lte": 10}, filter["duration"])
	assert.Len(t, filter, 1)
}

func TestBuildFilter_OnlyMinBudget(t *testing.T) {
	filter := BuildFilter(models.ItineraryQuery{MinBudget: 1000})

	assert.Equal(t, bson.M{"$gte": int64(1000)}, filter["price"])
}

func TestBuildFilter_AnyOfSets(t *testing.T) {
	filter := BuildFilter(models.ItineraryQuery{
		Countries:     []string{"Japan", "Korea"},
		ItineraryTags: []string{"food"},
		Status:        []string{"published"},
	})

	assert.Equal(t, bson.M{"$in": []string{"Japan", "Korea"}}, filter["countries"])
	assert.Equal(t, bson.M{"$in": []string{"food"}}, filter["itinerarytags"])
	assert.Equal(t, bson.M{"$in": []string{"published"}}, filter["status"])
}

func TestBuildFilter_DestinationIsCaseInsensitive(t *testing.T) {
	filter := BuildFilter(models.ItineraryQuery{Destination: "lisbon"})

	clauses, ok := filter["$or"].([]bson.M)
	assert.True(t, ok)
	assert.Len(t, clauses, 2)
	assert.Equal(t, bson.M{"$regex": "lisbon", "$options": "i"}, clauses[0]["countries"])
}

func TestSortSpec(t *testing.T) {
	tests := []struct {
		key   string
		field string
		dir   int
	}{
		{models.SortMostRecent, "updatedat", -1},
		{models.SortMostViewed, "views", -1},
		{models.SortBestRated, "rating", -1},
		{models.SortPriceLow, "price", 1},
		{models.SortPriceHigh, "price", -1},
		{"", "updatedat", -1},
		{"garbage", "updatedat", -1},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			spec := SortSpec(tt.key)
			assert.Equal(t, tt.field, spec[0].Key)
			assert.Equal(t, tt.dir, spec[0].Value)
		})
	}
}
