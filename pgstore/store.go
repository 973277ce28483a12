// Package pgstore implements the store interfaces on Postgres via GORM.
package pgstore

import (
	"itinero/store"

	"gorm.io/gorm"
)

// New wires the gorm-backed stores over one shared connection.
func New(db *gorm.DB) store.Stores {
	return store.Stores{
		Itineraries: NewItineraryStore(db),
		Purchases:   NewPurchaseStore(db),
		Follows:     NewFollowStore(db),
		Newsletter:  NewNewsletterStore(db),
		Users:       NewUserStore(db),
	}
}
