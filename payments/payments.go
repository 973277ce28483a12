// Package payments isolates checkout-session creation behind one seam so
// handlers and tests never touch the processor SDK directly.
package payments

import "context"

// LineItem is one priced entry of a checkout session. Amount is in cents
// and always comes from the stored itinerary record.
type LineItem struct {
	ItineraryID string
	Title       string
	Image       string
	Amount      int64
}

// SessionConfig describes a one-time-payment checkout session.
type SessionConfig struct {
	LineItems     []LineItem
	SuccessURL    string
	CancelURL     string
	Metadata      map[string]string
	CustomerEmail string
}

type SessionCreator interface {
	// CreateSession submits the config and returns the hosted session URL.
	CreateSession(ctx context.Context, cfg SessionConfig) (string, error)
}
