package newsletter

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"net/mail"
	"strings"
	"time"

	"itinero/store"
	"itinero/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Newsletter store.NewsletterStore
}

// POST /api/newsletter
func (h *Handler) Subscribe(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var input struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid input")
		return
	}

	email := strings.TrimSpace(strings.ToLower(input.Email))
	if _, err := mail.ParseAddress(email); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "A valid email is required")
		return
	}

	if err := h.Newsletter.Subscribe(ctx, email); err != nil {
		if err == store.ErrDuplicate {
			utils.RespondWithError(w, http.StatusConflict, "Email already subscribed")
			return
		}
		log.Printf("newsletter subscribe: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Could not subscribe")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]string{"status": "subscribed"})
}
