package mongostore

import (
	"context"
	"time"

	"itinero/models"
	"itinero/store"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type PurchaseStore struct {
	coll *mongo.Collection
}

func NewPurchaseStore(coll *mongo.Collection) *PurchaseStore {
	return &PurchaseStore{coll: coll}
}

func (s *PurchaseStore) Create(ctx context.Context, p *models.Purchase) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	_, err := s.coll.InsertOne(ctx, p)
	if mongo.IsDuplicateKeyError(err) {
		return store.ErrDuplicate
	}
	return err
}

func (s *PurchaseStore) PurchasedAmong(ctx context.Context, userID string, ids []string) ([]string, error) {
	cursor, err := s.coll.Find(ctx, bson.M{
		"userid":      userID,
		"itineraryid": bson.M{"$in": ids},
	})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var purchases []models.Purchase
	if err := cursor.All(ctx, &purchases); err != nil {
		return nil, err
	}

	owned := make([]string, 0, len(purchases))
	for _, p := range purchases {
		owned = append(owned, p.ItineraryID)
	}
	return owned, nil
}

func (s *PurchaseStore) ListByUser(ctx context.Context, userID string) ([]models.Purchase, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"userid": userID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var purchases []models.Purchase
	if err := cursor.All(ctx, &purchases); err != nil {
		return nil, err
	}
	if purchases == nil {
		purchases = []models.Purchase{}
	}
	return purchases, nil
}
