package pgstore

import (
	"context"
	"errors"
	"time"

	"itinero/models"
	"itinero/store"

	"gorm.io/gorm"
)

type PurchaseStore struct {
	db *gorm.DB
}

func NewPurchaseStore(db *gorm.DB) *PurchaseStore {
	return &PurchaseStore{db: db}
}

func (s *PurchaseStore) Create(ctx context.Context, p *models.Purchase) error {
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	err := s.db.WithContext(ctx).Create(p).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return store.ErrDuplicate
	}
	return err
}

func (s *PurchaseStore) PurchasedAmong(ctx context.Context, userID string, ids []string) ([]string, error) {
	owned := []string{}
	err := s.db.WithContext(ctx).
		Model(&models.Purchase{}).
		Where("user_id = ? AND itinerary_id IN ?", userID, ids).
		Pluck("itinerary_id", &owned).Error
	return owned, err
}

func (s *PurchaseStore) ListByUser(ctx context.Context, userID string) ([]models.Purchase, error) {
	purchases := []models.Purchase{}
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&purchases).Error
	return purchases, err
}
