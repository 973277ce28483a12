package checkout

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"itinero/models"
	"itinero/store"
	"itinero/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/webhook"
)

// POST /api/checkout/webhook
// Records purchases when the processor reports a completed session.
func (s *Service) Webhook(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	payload, err := io.ReadAll(http.MaxBytesReader(w, r.Body, 1<<16))
	if err != nil {
		utils.RespondWithError(w, http.StatusServiceUnavailable, "could not read payload")
		return
	}

	event, err := webhook.ConstructEvent(payload, r.Header.Get("Stripe-Signature"),
		os.Getenv("STRIPE_WEBHOOK_SECRET"))
	if err != nil {
		log.Printf("webhook signature verification failed: %v", err)
		utils.RespondWithError(w, http.StatusBadRequest, "invalid signature")
		return
	}

	if event.Type != "checkout.session.completed" {
		w.WriteHeader(http.StatusOK)
		return
	}

	var session stripe.CheckoutSession
	if err := json.Unmarshal(event.Data.Raw, &session); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "malformed event")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	s.recordPurchases(ctx, &session)
	w.WriteHeader(http.StatusOK)
}

func (s *Service) recordPurchases(ctx context.Context, session *stripe.CheckoutSession) {
	userID := session.Metadata["user_id"]
	if userID == "" {
		// Anonymous checkout: nothing to reconcile against an account.
		return
	}

	ids := strings.Split(session.Metadata["itinerary_ids"], ",")
	for _, id := range ids {
		id = strings.TrimSpace(id)
		if id == "" {
			continue
		}
		err := s.Purchases.Create(ctx, &models.Purchase{
			UserID:      userID,
			ItineraryID: id,
			SessionID:   session.ID,
			AmountPaid:  session.AmountTotal,
		})
		if err != nil && err != store.ErrDuplicate {
			log.Printf("recording purchase %s for %s: %v", id, userID, err)
		}
	}
}
