package models

// Sort keys accepted by the itinerary query endpoint.
const (
	SortMostRecent = "most-recent"
	SortMostViewed = "most-viewed"
	SortBestRated  = "best-rated"
	SortPriceLow   = "price-low"
	SortPriceHigh  = "price-high"
)

// ItineraryQuery is a filter/pagination request. Zero values mean
// "not supplied"; set filters combine with AND, list filters are any-of.
type ItineraryQuery struct {
	Destination   string
	MinDuration   int
	MaxDuration   int
	MinBudget     int64
	MaxBudget     int64
	Continents    []string
	ActivityTags  []string
	ItineraryTags []string
	Countries     []string
	Status        []string
	Sort          string
	Page          int
	PageSize      int
}

// QueryResult is one page of itinerary summaries plus totals.
type QueryResult struct {
	Data        []Itinerary `json:"data"`
	Total       int64       `json:"total"`
	TotalPages  int64       `json:"totalPages"`
	CurrentPage int         `json:"currentPage"`
}

// TotalPages computes ceil(total/pageSize) for pageSize >= 1.
func TotalPages(total int64, pageSize int) int64 {
	if pageSize < 1 {
		return 0
	}
	return (total + int64(pageSize) - 1) / int64(pageSize)
}
