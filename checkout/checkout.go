// Package checkout builds payment-processor sessions from untrusted carts.
package checkout

import (
	"context"
	"strings"

	"itinero/apperr"
	"itinero/models"
	"itinero/payments"
	"itinero/store"
)

const purchaseType = "itinerary"

type Service struct {
	Itineraries store.ItineraryStore
	Purchases   store.PurchaseStore
	Users       store.UserStore
	Sessions    payments.SessionCreator
	// BaseURL is the public site origin used for redirect targets.
	BaseURL string
}

// BuildSession re-verifies the submitted cart against stored records and
// creates a checkout session. userID is empty for anonymous callers.
// Prices always come from the stored itinerary, never from the request:
// a tampered client price has no effect on the charged amount.
func (s *Service) BuildSession(ctx context.Context, userID string, items []models.CartItem) (string, error) {
	if len(items) == 0 {
		return "", apperr.ErrEmptyCart
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ItineraryID)
	}

	records, err := s.Itineraries.GetByIDs(ctx, ids)
	if err != nil {
		return "", &apperr.VerificationError{Reason: err.Error()}
	}
	if len(records) == 0 {
		return "", &apperr.VerificationError{Reason: "no matching itineraries"}
	}

	if userID != "" {
		owned, err := s.Purchases.PurchasedAmong(ctx, userID, ids)
		if err != nil {
			return "", &apperr.UpstreamError{Op: "purchase lookup", Err: err}
		}
		if len(owned) > 0 {
			return "", &apperr.DuplicatePurchaseError{ItineraryIDs: owned}
		}
	}

	lineItems := make([]payments.LineItem, 0, len(records))
	verifiedIDs := make([]string, 0, len(records))
	for _, rec := range records {
		lineItems = append(lineItems, payments.LineItem{
			ItineraryID: rec.ItineraryID,
			Title:       rec.Title,
			Image:       rec.MainImage,
			Amount:      rec.Price,
		})
		verifiedIDs = append(verifiedIDs, rec.ItineraryID)
	}

	metadata := map[string]string{
		"itinerary_ids": strings.Join(verifiedIDs, ","),
		"purchase_type": purchaseType,
	}

	cfg := payments.SessionConfig{
		LineItems:  lineItems,
		SuccessURL: s.BaseURL + "/checkout/success?session_id={CHECKOUT_SESSION_ID}",
		CancelURL:  s.BaseURL + "/cart",
		Metadata:   metadata,
	}

	if userID != "" {
		metadata["user_id"] = userID
		if user, err := s.Users.GetByID(ctx, userID); err == nil {
			cfg.CustomerEmail = user.Email
			metadata["user_email"] = user.Email
		}
	}

	url, err := s.Sessions.CreateSession(ctx, cfg)
	if err != nil {
		return "", &apperr.UpstreamError{Op: "create checkout session", Err: err}
	}
	return url, nil
}
