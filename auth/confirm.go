package auth

import (
	"context"
	"log"
	"net/http"
	"time"

	"itinero/rdx"
	"itinero/utils"

	"github.com/julienschmidt/httprouter"
)

// GET /auth/confirm?token_hash=...&type=email
// Redeems a one-time confirmation token and redirects; no JSON body.
func (h *Handler) Confirm(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	token := r.URL.Query().Get("token_hash")
	if token == "" {
		token = r.URL.Query().Get("code")
	}
	if token == "" {
		http.Redirect(w, r, h.BaseURL+"/auth/error", http.StatusFound)
		return
	}

	userID, err := rdx.RdxGetDel("confirm:" + token)
	if err != nil || userID == "" {
		http.Redirect(w, r, h.BaseURL+"/auth/error", http.StatusFound)
		return
	}

	if err := h.markVerified(ctx, userID); err != nil {
		log.Printf("confirming user %s: %v", userID, err)
		http.Redirect(w, r, h.BaseURL+"/auth/error", http.StatusFound)
		return
	}

	next := r.URL.Query().Get("next")
	if next == "" {
		next = "/auth/confirmed"
	}
	http.Redirect(w, r, h.BaseURL+next, http.StatusFound)
}

func (h *Handler) markVerified(ctx context.Context, userID string) error {
	return h.Users.Update(ctx, userID, map[string]any{"verified": true})
}

// Resend issues a fresh confirmation token for a logged-in, unverified user.
func (h *Handler) Resend(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	user, err := h.Users.GetByID(ctx, userID)
	if err != nil {
		utils.RespondWithError(w, http.StatusNotFound, "User not found")
		return
	}
	if user.Verified {
		utils.RespondWithError(w, http.StatusBadRequest, "Already verified")
		return
	}

	confirmToken := utils.GenerateRandomString(32)
	if err := rdx.RdxSet("confirm:"+confirmToken, user.UserID, confirmTokenTTL); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to issue token")
		return
	}
	log.Printf("confirmation link for %s: %s/auth/confirm?token_hash=%s&type=email",
		user.Email, h.BaseURL, confirmToken)

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"status": "sent"})
}
