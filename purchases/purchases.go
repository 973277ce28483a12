package purchases

import (
	"context"
	"log"
	"net/http"
	"time"

	"itinero/store"
	"itinero/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Purchases   store.PurchaseStore
	Itineraries store.ItineraryStore
}

// GET /api/purchases
func (h *Handler) List(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	records, err := h.Purchases.ListByUser(ctx, userID)
	if err != nil {
		log.Printf("listing purchases for %s: %v", userID, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not fetch purchases")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, records)
}

// HasPurchased reports whether the user owns the itinerary.
func HasPurchased(ctx context.Context, purchases store.PurchaseStore, userID, itineraryID string) (bool, error) {
	owned, err := purchases.PurchasedAmong(ctx, userID, []string{itineraryID})
	if err != nil {
		return false, err
	}
	return len(owned) > 0, nil
}
