// Package cart holds the shopping cart as an explicit state container:
// a pure reducer over cart operations plus a load/save repository.
package cart

import (
	"context"

	"itinero/models"
)

type Cart struct {
	Items []models.CartItem `json:"items"`
}

type OpKind string

const (
	OpAdd    OpKind = "add"
	OpRemove OpKind = "remove"
	OpClear  OpKind = "clear"
)

// Op is one cart mutation. Item is required for add, ItineraryID for remove.
type Op struct {
	Kind        OpKind          `json:"kind"`
	Item        models.CartItem `json:"item,omitempty"`
	ItineraryID string          `json:"itineraryId,omitempty"`
}

// Apply reduces an op onto a cart and returns the next state. Adding an
// itinerary already present is a no-op: a trip is bought at most once.
func Apply(c Cart, op Op) Cart {
	switch op.Kind {
	case OpAdd:
		if op.Item.ItineraryID == "" || Contains(c, op.Item.ItineraryID) {
			return c
		}
		next := Cart{Items: make([]models.CartItem, len(c.Items), len(c.Items)+1)}
		copy(next.Items, c.Items)
		next.Items = append(next.Items, op.Item)
		return next
	case OpRemove:
		next := Cart{Items: make([]models.CartItem, 0, len(c.Items))}
		for _, item := range c.Items {
			if item.ItineraryID != op.ItineraryID {
				next.Items = append(next.Items, item)
			}
		}
		return next
	case OpClear:
		return Cart{Items: []models.CartItem{}}
	default:
		return c
	}
}

// Contains reports whether the cart holds the itinerary.
func Contains(c Cart, itineraryID string) bool {
	for _, item := range c.Items {
		if item.ItineraryID == itineraryID {
			return true
		}
	}
	return false
}

// Total sums the display prices in cents. Checkout does not use this:
// charged amounts are re-read from the itinerary records.
func Total(c Cart) int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Price
	}
	return total
}

// Repository persists a user's cart between requests.
type Repository interface {
	Load(ctx context.Context, userID string) (Cart, error)
	Save(ctx context.Context, userID string, c Cart) error
}
