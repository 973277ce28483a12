package utils

import (
	"net/http"
	"strconv"

	"itinero/models"
)

// ParseItineraryQuery reads the filter/pagination params of the itinerary
// listing endpoint. Missing page/pageSize default to 1/10; list params
// accept comma-separated values.
func ParseItineraryQuery(r *http.Request) models.ItineraryQuery {
	q := r.URL.Query()

	page, _ := strconv.Atoi(q.Get("page"))
	if page < 1 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(q.Get("pageSize"))
	if pageSize < 1 {
		pageSize = 10
	}

	minDuration, _ := strconv.Atoi(q.Get("minDuration"))
	maxDuration, _ := strconv.Atoi(q.Get("maxDuration"))
	minBudget, _ := strconv.ParseInt(q.Get("minBudget"), 10, 64)
	maxBudget, _ := strconv.ParseInt(q.Get("maxBudget"), 10, 64)

	return models.ItineraryQuery{
		Destination:   q.Get("destination"),
		MinDuration:   minDuration,
		MaxDuration:   maxDuration,
		MinBudget:     minBudget,
		MaxBudget:     maxBudget,
		Continents:    SplitList(q.Get("continents")),
		ActivityTags:  SplitTags(q.Get("activityTags")),
		ItineraryTags: SplitTags(q.Get("itineraryTags")),
		Countries:     SplitList(q.Get("countries")),
		Status:        SplitTags(q.Get("status")),
		Sort:          q.Get("sort"),
		Page:          page,
		PageSize:      pageSize,
	}
}
