// Package mongostore implements the store interfaces on MongoDB.
package mongostore

import (
	"itinero/db"
	"itinero/store"
)

// New wires the mongo-backed stores over the shared collections.
func New() store.Stores {
	return store.Stores{
		Itineraries: NewItineraryStore(db.ItineraryCollection),
		Purchases:   NewPurchaseStore(db.PurchasesCollection),
		Follows:     NewFollowStore(db.FollowingsCollection),
		Newsletter:  NewNewsletterStore(db.NewsletterCollection),
		Users:       NewUserStore(db.UserCollection),
	}
}
