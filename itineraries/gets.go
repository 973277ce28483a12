package itineraries

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"itinero/models"
	"itinero/rdx"
	"itinero/utils"

	"github.com/julienschmidt/httprouter"
)

const detailCacheTTL = 10 * time.Minute

// GET /api/itineraries
func (h *Handler) Query(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	q := utils.ParseItineraryQuery(r)
	result, err := h.Store.Query(ctx, q)
	if err != nil {
		log.Printf("itinerary query: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch itineraries")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, result)
}

// GET /api/itineraries/:id
func (h *Handler) Get(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	id := ps.ByName("id")

	if cached := cacheGet(id); cached != nil {
		go func() {
			if err := h.Store.IncrementViews(context.Background(), id); err != nil {
				log.Printf("view count for %s: %v", id, err)
			}
		}()
		utils.RespondWithJSON(w, http.StatusOK, cached)
		return
	}

	it, err := h.Store.GetByID(ctx, id)
	if err != nil {
		http.Error(w, "Itinerary not found", http.StatusNotFound)
		return
	}

	if err := h.Store.IncrementViews(ctx, id); err != nil {
		log.Printf("view count for %s: %v", id, err)
	}
	cacheSet(id, it)

	utils.RespondWithJSON(w, http.StatusOK, it)
}

// GET /api/itineraries/mine
func (h *Handler) Mine(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	items, err := h.Store.GetByCreator(ctx, userID)
	if err != nil {
		log.Printf("itineraries by creator %s: %v", userID, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to fetch itineraries")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, items)
}

// --- detail cache ---

func cacheGet(id string) *models.Itinerary {
	if rdx.Conn == nil {
		return nil
	}
	raw, err := rdx.RdxGet("itinerary:" + id)
	if err != nil {
		return nil
	}
	var it models.Itinerary
	if err := json.Unmarshal([]byte(raw), &it); err != nil {
		return nil
	}
	return &it
}

func cacheSet(id string, it *models.Itinerary) {
	if rdx.Conn == nil {
		return
	}
	raw, err := json.Marshal(it)
	if err != nil {
		return
	}
	if err := rdx.RdxSet("itinerary:"+id, string(raw), detailCacheTTL); err != nil {
		log.Printf("caching itinerary %s: %v", id, err)
	}
}

func invalidateCache(id string) {
	if rdx.Conn == nil {
		return
	}
	if err := rdx.RdxDel("itinerary:" + id); err != nil {
		log.Printf("invalidating itinerary %s: %v", id, err)
	}
}
