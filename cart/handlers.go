package cart

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"itinero/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Repo Repository
}

// GET /api/cart
func (h *Handler) Get(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	c, err := h.Repo.Load(ctx, userID)
	if err != nil {
		log.Println("cart load error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve cart")
		return
	}
	if c.Items == nil {
		c = Apply(c, Op{Kind: OpClear})
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"items": c.Items,
		"total": Total(c),
	})
}

// POST /api/cart applies one op (add/remove/clear) and saves the result.
func (h *Handler) Mutate(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	var op Op
	if err := json.NewDecoder(r.Body).Decode(&op); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if op.Kind == OpAdd && op.Item.ItineraryID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "item.itineraryId is required")
		return
	}
	if op.Kind == OpRemove && op.ItineraryID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "itineraryId is required")
		return
	}

	current, err := h.Repo.Load(ctx, userID)
	if err != nil {
		log.Println("cart load error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not retrieve cart")
		return
	}

	next := Apply(current, op)
	if err := h.Repo.Save(ctx, userID, next); err != nil {
		log.Println("cart save error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not save cart")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{
		"items": next.Items,
		"total": Total(next),
	})
}

// DELETE /api/cart
func (h *Handler) Clear(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.Repo.Save(ctx, userID, Apply(Cart{}, Op{Kind: OpClear})); err != nil {
		log.Println("cart clear error:", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not clear cart")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "cleared"})
}
