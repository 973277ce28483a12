package mongostore

import (
	"context"
	"time"

	"itinero/models"
	"itinero/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ItineraryStore struct {
	coll *mongo.Collection
}

func NewItineraryStore(coll *mongo.Collection) *ItineraryStore {
	return &ItineraryStore{coll: coll}
}

// BuildFilter translates a query into one conjunctive bson filter.
// Each supplied field contributes a single clause.
func BuildFilter(q models.ItineraryQuery) bson.M {
	filter := bson.M{}

	if q.Destination != "" {
		rx := bson.M{"$regex": q.Destination, "$options": "i"}
		filter["$or"] = []bson.M{
			{"countries": rx},
			{"days.city": rx},
		}
	}

	duration := bson.M{}
	if q.MinDuration > 0 {
		duration["$gte"] = q.MinDuration
	}
	if q.MaxDuration > 0 {
		duration["$lte"] = q.MaxDuration
	}
	if len(duration) > 0 {
		filter["duration"] = duration
	}

	price := bson.M{}
	if q.MinBudget > 0 {
		price["$gte"] = q.MinBudget
	}
	if q.MaxBudget > 0 {
		price["$lte"] = q.MaxBudget
	}
	if len(price) > 0 {
		filter["price"] = price
	}

	if len(q.Continents) > 0 {
		filter["continents"] = bson.M{"$in": q.Continents}
	}
	if len(q.ActivityTags) > 0 {
		filter["activitytags"] = bson.M{"$in": q.ActivityTags}
	}
	if len(q.ItineraryTags) > 0 {
		filter["itinerarytags"] = bson.M{"$in": q.ItineraryTags}
	}
	if len(q.Countries) > 0 {
		filter["countries"] = bson.M{"$in": q.Countries}
	}
	if len(q.Status) > 0 {
		filter["status"] = bson.M{"$in": q.Status}
	}

	return filter
}

// SortSpec maps a sort key to a single order-by clause.
// Unknown or empty keys fall back to most-recently-updated.
func SortSpec(key string) bson.D {
	switch key {
	case models.SortMostViewed:
		return bson.D{{Key: "views", Value: -1}}
	case models.SortBestRated:
		return bson.D{{Key: "rating", Value: -1}}
	case models.SortPriceLow:
		return bson.D{{Key: "price", Value: 1}}
	case models.SortPriceHigh:
		return bson.D{{Key: "price", Value: -1}}
	default:
		return bson.D{{Key: "updatedat", Value: -1}}
	}
}

func (s *ItineraryStore) Query(ctx context.Context, q models.ItineraryQuery) (*models.QueryResult, error) {
	filter := BuildFilter(q)

	total, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, err
	}

	skip := int64(q.Page-1) * int64(q.PageSize)
	opts := options.Find().
		SetSort(SortSpec(q.Sort)).
		SetSkip(skip).
		SetLimit(int64(q.PageSize))

	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var data []models.Itinerary
	if err := cursor.All(ctx, &data); err != nil {
		return nil, err
	}
	if data == nil {
		data = []models.Itinerary{}
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
	err := s.coll.FindOne(ctx, bson.M{"itineraryid": id}).Decode(&it)
	if err == mongo.ErrNoDocuments {
		return nil, store.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (s *ItineraryStore) GetByIDs(ctx context.Context, ids []string) ([]models.Itinerary, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"itineraryid": bson.M{"$in": ids}})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.Itinerary
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

func (s *ItineraryStore) GetByCreator(ctx context.Context, creatorID string) ([]models.Itinerary, error) {
	opts := options.Find().SetSort(bson.D{{Key: "updatedat", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{"creatorid": creatorID}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var items []models.Itinerary
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	if items == nil {
		items = []models.Itinerary{}
	}
	return items, nil
}

func (s *ItineraryStore) Create(ctx context.Context, it *models.Itinerary) error {
	_, err := s.coll.InsertOne(ctx, it)
	return err
}

func (s *ItineraryStore) Update(ctx context.Context, id string, fields map[string]any) error {
	set := bson.M{}
	for k, v := range fields {
		set[k] = v
	}
	set["updatedat"] = time.Now()

	res, err := s.coll.UpdateOne(ctx, bson.M{"itineraryid": id}, bson.M{"$set": set})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *ItineraryStore) Delete(ctx context.Context, id string) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"itineraryid": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}

func (s *ItineraryStore) IncrementViews(ctx context.Context, id string) error {
	_, err := s.coll.UpdateOne(ctx, bson.M{"itineraryid": id}, bson.M{"$inc": bson.M{"views": 1}})
	return err
}
