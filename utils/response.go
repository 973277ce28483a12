package utils

import (
	"encoding/json"
	"net/http"

	"itinero/apperr"
)

func RespondWithError(w http.ResponseWriter, code int, msg string) {
	RespondWithJSON(w, code, map[string]string{"error": msg})
}

// Sends a JSON response
func RespondWithJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

// RespondWithAppError converts a service error into the boundary JSON shape.
// Duplicate-purchase errors additionally carry the offending ids.
func RespondWithAppError(w http.ResponseWriter, err error) {
	code := apperr.Status(err)
	if dup, ok := err.(*apperr.DuplicatePurchaseError); ok {
		RespondWithJSON(w, code, map[string]any{
			"error":            "some items were already purchased",
			"alreadyPurchased": dup.ItineraryIDs,
		})
		return
	}
	RespondWithError(w, code, err.Error())
}
