// Package itineraries exposes the itinerary CRUD and discovery endpoints.
package itineraries

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"itinero/apperr"
	"itinero/models"
	"itinero/store"
	"itinero/utils"
	"itinero/validation"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Store     store.ItineraryStore
	Users     store.UserStore
	Purchases store.PurchaseStore
	// BaseURL is the public site origin embedded in exported PDFs.
	BaseURL string
}

// POST /api/itineraries
func (h *Handler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		utils.RespondWithAppError(w, &apperr.AuthorizationError{Reason: "login required"})
		return
	}

	var payload validation.ItineraryPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request payload")
		return
	}

	// Shape validation happens before any write.
	if err := validation.ValidateItinerary(&payload); err != nil {
		utils.RespondWithAppError(w, err)
		return
	}

	it := fromPayload(&payload)
	it.ItineraryID = utils.GenerateRandomString(13)
	it.CreatorID = userID
	if it.Status == "" {
		it.Status = models.StatusDraft
	}
	it.CreatedAt = time.Now()
	it.UpdatedAt = it.CreatedAt

	if user, err := h.Users.GetByID(ctx, userID); err == nil {
		it.CreatorName = user.Username
	}

	if err := h.Store.Create(ctx, it); err != nil {
		log.Printf("creating itinerary: %v", err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error inserting itinerary")
		return
	}

	utils.RespondWithJSON(w, http.StatusCreated, map[string]string{"itineraryid": it.ItineraryID})
}

// PUT /api/itineraries/:id
func (h *Handler) Update(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id := ps.ByName("id")
	existing, err := h.Store.GetByID(ctx, id)
	if err != nil {
		http.Error(w, "Itinerary not found", http.StatusNotFound)
		return
	}
	if existing.CreatorID != userID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	var patch updatePayload
	if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	fields, err := patch.fields()
	if err != nil {
		utils.RespondWithAppError(w, err)
		return
	}
	if len(fields) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "No fields to update")
		return
	}

	if err := h.Store.Update(ctx, id, fields); err != nil {
		log.Printf("updating itinerary %s: %v", id, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error updating itinerary")
		return
	}
	invalidateCache(id)

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Itinerary updated successfully"})
}

// DELETE /api/itineraries/:id
// Days and activities are embedded in the record, so removing the parent
// removes them with it. Purchase rows are kept for reconciliation.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id := ps.ByName("id")
	existing, err := h.Store.GetByID(ctx, id)
	if err != nil {
		http.Error(w, "Itinerary not found", http.StatusNotFound)
		return
	}
	if existing.CreatorID != userID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	if err := h.Store.Delete(ctx, id); err != nil {
		log.Printf("deleting itinerary %s: %v", id, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error deleting itinerary")
		return
	}
	invalidateCache(id)

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Itinerary deleted successfully"})
}

// PUT /api/itineraries/:id/publish
func (h *Handler) Publish(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id := ps.ByName("id")
	existing, err := h.Store.GetByID(ctx, id)
	if err != nil {
		http.Error(w, "Itinerary not found", http.StatusNotFound)
		return
	}
	if existing.CreatorID != userID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}
	// A published itinerary must have at least one day.
	if len(existing.Days) == 0 {
		utils.RespondWithError(w, http.StatusBadRequest, "Cannot publish an itinerary with no days")
		return
	}

	if err := h.Store.Update(ctx, id, map[string]any{"status": models.StatusPublished}); err != nil {
		log.Printf("publishing itinerary %s: %v", id, err)
		utils.RespondWithError(w, http.StatusInternalServerError, "Error publishing itinerary")
		return
	}
	invalidateCache(id)

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{"message": "Itinerary published"})
}

func fromPayload(p *validation.ItineraryPayload) *models.Itinerary {
	it := &models.Itinerary{
		Title:            p.Title,
		ShortDescription: p.ShortDescription,
		MainImage:        p.MainImage,
		Duration:         p.Duration,
		Countries:        p.Countries,
		Continents:       p.Continents,
		ActivityTags:     utils.NormalizeTags(p.ActivityTags),
		ItineraryTags:    utils.NormalizeTags(p.ItineraryTags),
		Price:            p.Price,
		Status:           p.Status,
	}
	for _, d := range p.Days {
		it.Days = append(it.Days, dayFromPayload(d))
	}
	for _, n := range p.Notes {
		it.Notes = append(it.Notes, models.Note{Title: n.Title, Body: n.Body})
	}
	return it
}

func dayFromPayload(d validation.DayPayload) models.Day {
	day := models.Day{
		Position:         d.Position,
		City:             d.City,
		Country:          d.Country,
		Title:            d.Title,
		Description:      d.Description,
		Notes:            d.Notes,
		HasAccommodation: d.HasAccommodation,
	}
	for _, a := range d.Activities {
		day.Activities = append(day.Activities, models.Activity{
			Title:       a.Title,
			Time:        a.Time,
			Duration:    a.Duration,
			Location:    a.Location,
			Description: a.Description,
			Link:        a.Link,
			Price:       a.Price,
			Photo:       a.Photo,
		})
	}
	if d.HasAccommodation && d.Accommodation != nil {
		day.Accommodation = &models.Accommodation{
			Name:        d.Accommodation.Name,
			Link:        d.Accommodation.Link,
			Description: d.Accommodation.Description,
			Price:       d.Accommodation.Price,
		}
	}
	return day
}
