package follows

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
	Follows store.FollowStore
	Users   store.UserStore
}

// POST /api/follows/:userid
func (h *Handler) Follow(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	followerID := utils.GetUserIDFromRequest(r)
	if followerID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	creatorID := ps.ByName("userid")
	if creatorID == followerID {
		utils.RespondWithError(w, http.StatusBadRequest, "Cannot follow yourself")
		return
	}
	if _, err := h.Users.GetByID(ctx, creatorID); err != nil {
		http.Error(w, "User not found", http.StatusNotFound)
		return
	}

	if err := h.Follows.Follow(ctx, followerID, creatorID); err != nil {
		log.Printf("follow %s -> %s: %v", followerID, creatorID, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not follow user")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]string{"status": "following"})
}

// DELETE /api/follows/:userid
func (h *Handler) Unfollow(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	followerID := utils.GetUserIDFromRequest(r)
	if followerID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	if err := h.Follows.Unfollow(ctx, followerID, ps.ByName("userid")); err != nil {
		log.Printf("unfollow: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not unfollow user")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "unfollowed"})
}

// GET /api/follows
func (h *Handler) Following(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	followerID := utils.GetUserIDFromRequest(r)
	if followerID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	creators, err := h.Follows.Following(ctx, followerID)
	if err != nil {
		log.Printf("listing follows for %s: %v", followerID, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not list follows")
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]any{"following": creators})
}
