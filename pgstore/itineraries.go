package pgstore

import (
	"context"
	"errors"
	"time"

	"itinero/models"
	"itinero/store"

	"gorm.io/gorm"
)

type ItineraryStore struct {
	db *gorm.DB
}

func NewItineraryStore(db *gorm.DB) *ItineraryStore {
	return &ItineraryStore{db: db}
}

// ApplyFilter adds one WHERE clause per supplied field, combined with AND.
// List columns are stored as JSON, so any-of checks go through
// jsonb_exists_any.
func ApplyFilter(tx *gorm.DB, q models.ItineraryQuery) *gorm.DB {
	if q.Destination != "" {
		like := "%" + q.Destination + "%"
		tx = tx.Where("countries::text ILIKE ? OR days::text ILIKE ?", like, like)
	}
	if q.MinDuration > 0 {
		tx = tx.Where("duration >= ?", q.MinDuration)
	}
	if q.MaxDuration > 0 {
		tx = tx.Where("duration <= ?", q.MaxDuration)
	}
	if q.MinBudget > 0 {
		tx = tx.Where("price >= ?", q.MinBudget)
	}
	if q.MaxBudget > 0 {
		tx = tx.Where("price <= ?", q.MaxBudget)
	}
	if len(q.Continents) > 0 {
		tx = tx.Where("jsonb_exists_any(continents::jsonb, ?)", q.Continents)
	}
	if len(q.ActivityTags) > 0 {
		tx = tx.Where("jsonb_exists_any(activity_tags::jsonb, ?)", q.ActivityTags)
	}
	if len(q.ItineraryTags) > 0 {
		tx = tx.Where("jsonb_exists_any(itinerary_tags::jsonb, ?)", q.ItineraryTags)
	}
	if len(q.Countries) > 0 {
		tx = tx.Where("jsonb_exists_any(countries::jsonb, ?)", q.Countries)
	}
	if len(q.Status) > 0 {
		tx = tx.Where("status IN ?", q.Status)
	}
	return tx
}

// OrderClause maps a sort key to a single ORDER BY; default is
// most-recently-updated.
func OrderClause(key string) string {
	switch key {
	case models.SortMostViewed:
		return "views DESC"
	case models.SortBestRated:
		return "rating DESC"
	case models.SortPriceLow:
		return "price ASC"
	case models.SortPriceHigh:
		return "price DESC"
	default:
		return "updated_at DESC"
	}
}

func (s *ItineraryStore) Query(ctx context.Context, q models.ItineraryQuery) (*models.QueryResult, error) {
	tx := ApplyFilter(s.db.WithContext(ctx).Model(&models.Itinerary{}), q)

	var total int64
	if err := tx.Count(&total).Error; err != nil {
		return nil, err
	}

	offset := (q.Page - 1) * q.PageSize
	data := []models.Itinerary{}
	err := tx.Order(OrderClause(q.Sort)).
		Offset(offset).
		Limit(q.PageSize).
		Find(&data).Error
	if err != nil {
		return nil, err
	}

	return &models.QueryResult{
		Data:        data,
		Total:       total,
		TotalPages:  models.TotalPages(total, q.PageSize),
		CurrentPage: q.Page,
	}, nil
}

func (s *ItineraryStore) GetByID(ctx context.Context, id string) (*models.Itinerary, error) {
	var it models.Itinerary
	err := s.db.WithContext(ctx).First(&it, "itinerary_id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (s *ItineraryStore) GetByIDs(ctx context.Context, ids []string) ([]models.Itinerary, error) {
	var items []models.Itinerary
	err := s.db.WithContext(ctx).Where("itinerary_id IN ?", ids).Find(&items).Error
	return items, err
}

func (s *ItineraryStore) GetByCreator(ctx context.Context, creatorID string) ([]models.Itinerary, error) {
	items := []models.Itinerary{}
	err := s.db.WithContext(ctx).
		Where("creator_id = ?", creatorID).
		Order("updated_at DESC").
		Find(&items).Error
	return items, err
}

func (s *ItineraryStore) Create(ctx context.Context, it *models.Itinerary) error {
	return s.db.WithContext(ctx).Create(it).Error
}

var columnFor = map[string]string{
	"title":            "title",
	"shortdescription": "short_description",
	"mainimage":        "main_image",
	"duration":         "duration",
	"countries":        "countries",
	"continents":       "continents",
	"activitytags":     "activity_tags",
	"itinerarytags":    "itinerary_tags",
	"days":             "days",
	"notes":            "notes",
	"price":            "price",
	"status":           "status",
	"rating":           "rating",
	"creatorname":      "creator_name",
}

func (s *ItineraryStore) Update(ctx context.Context, id string, fields map[string]any) error {
	updates := map[string]any{"updated_at": time.Now()}
	for k, v := range fields {
		if col, ok := columnFor[k]; ok {
			updates[col] = v
		}
	}

	res := s.db.WithContext(ctx).
		Model(&models.Itinerary{}).
		Where("itinerary_id = ?", id).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *ItineraryStore) Delete(ctx context.Context, id string) error {
	res := s.db.WithContext(ctx).Delete(&models.Itinerary{}, "itinerary_id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *ItineraryStore) IncrementViews(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).
		Model(&models.Itinerary{}).
		Where("itinerary_id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}
