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

type FollowStore struct {
	coll *mongo.Collection
}

func NewFollowStore(coll *mongo.Collection) *FollowStore {
	return &FollowStore{coll: coll}
}

func (s *FollowStore) Follow(ctx context.Context, followerID, creatorID string) error {
	filter := bson.M{"followerid": followerID, "creatorid": creatorID}
	update := bson.M{"$setOnInsert": bson.M{
		"followerid": followerID,
		"creatorid":  creatorID,
		"createdat":  time.Now(),
	}}
	_, err := s.coll.UpdateOne(ctx, filter, update, options.Update().SetUpsert(true))
	return err
}

func (s *FollowStore) Unfollow(ctx context.Context, followerID, creatorID string) error {
	_, err := s.coll.DeleteOne(ctx, bson.M{"followerid": followerID, "creatorid": creatorID})
	return err
}

func (s *FollowStore) Following(ctx context.Context, followerID string) ([]string, error) {
	cursor, err := s.coll.Find(ctx, bson.M{"followerid": followerID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var follows []models.Follow
	if err := cursor.All(ctx, &follows); err != nil {
		return nil, err
	}

	creators := make([]string, 0, len(follows))
	for _, f := range follows {
		creators = append(creators, f.CreatorID)
	}
	return creators, nil
}

type NewsletterStore struct {
	coll *mongo.Collection
}

func NewNewsletterStore(coll *mongo.Collection) *NewsletterStore {
	return &NewsletterStore{coll: coll}
}

func (s *NewsletterStore) Subscribe(ctx context.Context, email string) error {
	_, err := s.coll.InsertOne(ctx, models.NewsletterEntry{
		Email:     email,
		CreatedAt: time.Now(),
	})
	if mongo.IsDuplicateKeyError(err) {
		return store.ErrDuplicate
	}
	return err
}
