// Package store defines the storage interfaces the handlers depend on.
// Two backends conform: mongostore (document) and pgstore (relational),
// selected once at startup by STORAGE_BACKEND.
package store

import (
	"context"
	"errors"

	"itinero/models"
)

var ErrNotFound = errors.New("record not found")
var ErrDuplicate = errors.New("duplicate record")

type ItineraryStore interface {
	Query(ctx context.Context, q models.ItineraryQuery) (*models.QueryResult, error)
	GetByID(ctx context.Context, id string) (*models.Itinerary, error)
	GetByIDs(ctx context.Context, ids []string) ([]models.Itinerary, error)
	GetByCreator(ctx context.Context, creatorID string) ([]models.Itinerary, error)
	Create(ctx context.Context, it *models.Itinerary) error
	Update(ctx context.Context, id string, fields map[string]any) error
	Delete(ctx context.Context, id string) error
	IncrementViews(ctx context.Context, id string) error
}

type PurchaseStore interface {
	Create(ctx context.Context, p *models.Purchase) error
	// PurchasedAmong returns the subset of ids the user already purchased.
	PurchasedAmong(ctx context.Context, userID string, ids []string) ([]string, error)
	ListByUser(ctx context.Context, userID string) ([]models.Purchase, error)
}

type FollowStore interface {
	Follow(ctx context.Context, followerID, creatorID string) error
	Unfollow(ctx context.Context, followerID, creatorID string) error
	Following(ctx context.Context, followerID string) ([]string, error)
}

type NewsletterStore interface {
	// Subscribe returns ErrDuplicate when the email is already registered.
	Subscribe(ctx context.Context, email string) error
}

type UserStore interface {
	Create(ctx context.Context, u *models.User) error
	GetByID(ctx context.Context, id string) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	Update(ctx context.Context, id string, fields map[string]any) error
}

// Stores bundles every backend interface behind one value.
type Stores struct {
	Itineraries ItineraryStore
	Purchases   PurchaseStore
	Follows     FollowStore
	Newsletter  NewsletterStore
	Users       UserStore
}
