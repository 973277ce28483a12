// Package uploads stores itinerary images under ./static and crops them
// to the sizes the front end renders.
package uploads

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"path/filepath"
	"time"

	"itinero/rdx"
	"itinero/store"
	"itinero/utils"

	"github.com/disintegration/imaging"
	"github.com/julienschmidt/httprouter"
)

const (
	picDir       = "./static/itinerarypic"
	maxUploadMem = 10 << 20
	bannerWidth  = 1200
	bannerHeight = 630
	thumbWidth   = 400
)

type Handler struct {
	Store store.ItineraryStore
	// BaseURL is the public origin the stored image URLs point at.
	BaseURL string
}

// POST /api/itineraries/:id/image
func (h *Handler) UploadMainImage(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	userID := utils.GetUserIDFromRequest(r)
	if userID == "" {
		http.Error(w, "Unauthorized", http.StatusUnauthorized)
		return
	}

	id := ps.ByName("id")
	it, err := h.Store.GetByID(ctx, id)
	if err != nil {
		http.Error(w, "Itinerary not found", http.StatusNotFound)
		return
	}
	if it.CreatorID != userID {
		http.Error(w, "Forbidden", http.StatusForbidden)
		return
	}

	if err := r.ParseMultipartForm(maxUploadMem); err != nil {
		http.Error(w, "Could not parse upload", http.StatusBadRequest)
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		http.Error(w, "image file is required", http.StatusBadRequest)
		return
	}
	defer file.Close()

	if !utils.ValidateImageFileType(w, header) {
		return
	}

	img, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		http.Error(w, "Could not decode image", http.StatusBadRequest)
		return
	}

	if err := utils.EnsureDir(picDir); err != nil {
		http.Error(w, "Storage unavailable", http.StatusInternalServerError)
		return
	}

	banner := imaging.Fill(img, bannerWidth, bannerHeight, imaging.Center, imaging.Lanczos)
	thumb := imaging.Resize(img, thumbWidth, 0, imaging.Lanczos) // maintain aspect ratio

	bannerPath := filepath.Join(picDir, id+".jpg")
	thumbPath := filepath.Join(picDir, id+"_thumb.jpg")
	if err := imaging.Save(banner, bannerPath, imaging.JPEGQuality(85)); err != nil {
		log.Printf("saving banner for %s: %v", id, err)
		http.Error(w, "Could not save image", http.StatusInternalServerError)
		return
	}
	if err := imaging.Save(thumb, thumbPath, imaging.JPEGQuality(85)); err != nil {
		log.Printf("saving thumb for %s: %v", id, err)
		http.Error(w, "Could not save image", http.StatusInternalServerError)
		return
	}

	imageURL := fmt.Sprintf("%s/static/itinerarypic/%s.jpg", h.BaseURL, id)
	if err := h.Store.Update(ctx, id, map[string]any{"mainimage": imageURL}); err != nil {
		log.Printf("updating main image for %s: %v", id, err)
		http.Error(w, "Could not update itinerary", http.StatusInternalServerError)
		return
	}
	if rdx.Conn != nil {
		if err := rdx.RdxDel("itinerary:" + id); err != nil {
			log.Printf("invalidating itinerary %s: %v", id, err)
		}
	}

	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"mainImage": imageURL,
		"thumb":     fmt.Sprintf("%s/static/itinerarypic/%s_thumb.jpg", h.BaseURL, id),
	})
}
