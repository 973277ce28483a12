package checkout

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"os"
	"time"

	"itinero/models"
	"itinero/utils"

	"github.com/julienschmidt/httprouter"
)

type checkoutRequest struct {
	Items []models.CartItem `json:"items"`
}

// POST /api/checkout
func (s *Service) Checkout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req checkoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	userID := utils.GetUserIDFromRequest(r)

	url, err := s.BuildSession(ctx, userID, req.Items)
	if err != nil {
		log.Printf("checkout failed: %v", err)
		utils.RespondWithAppError(w, err)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"url": url})
}

// GET /api/checkout/config
func Config(w http.ResponseWriter, _ *http.Request, _ httprouter.Params) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"publishableKey": os.Getenv("STRIPE_PUBLISHABLE_KEY"),
	})
}
