package pgstore

import (
	"context"
	"errors"
	"time"

	"itinero/models"
	"itinero/store"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type FollowStore struct {
	db *gorm.DB
}

func NewFollowStore(db *gorm.DB) *FollowStore {
	return &FollowStore{db: db}
}

func (s *FollowStore) Follow(ctx context.Context, followerID, creatorID string) error {
	follow := models.Follow{
		FollowerID: followerID,
		CreatorID:  creatorID,
		CreatedAt:  time.Now(),
	}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&follow).Error
}

func (s *FollowStore) Unfollow(ctx context.Context, followerID, creatorID string) error {
	return s.db.WithContext(ctx).
		Where("follower_id = ? AND creator_id = ?", followerID, creatorID).
		Delete(&models.Follow{}).Error
}

func (s *FollowStore) Following(ctx context.Context, followerID string) ([]string, error) {
	creators := []string{}
	err := s.db.WithContext(ctx).
		Model(&models.Follow{}).
		Where("follower_id = ?", followerID).
		Pluck("creator_id", &creators).Error
	return creators, err
}

type NewsletterStore struct {
	db *gorm.DB
}

func NewNewsletterStore(db *gorm.DB) *NewsletterStore {
	return &NewsletterStore{db: db}
}

func (s *NewsletterStore) Subscribe(ctx context.Context, email string) error {
	entry := models.NewsletterEntry{Email: email, CreatedAt: time.Now()}
	err := s.db.WithContext(ctx).Create(&entry).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return store.ErrDuplicate
	}
	return err
}
