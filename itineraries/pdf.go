package itineraries

import (
	"bytes"
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"fmt"
	"net/http"
	"time"

	"itinero/globals"
	"itinero/models"
	"itinero/purchases"
	"itinero/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
)

// qrPayload signs itineraryID|userID|timestamp so the QR on an exported
// PDF can be traced back to the download.
func qrPayload(itineraryID, userID string) string {
	data := fmt.Sprintf("%s|%s|%d", itineraryID, userID, time.Now().Unix())
	h := hmac.New(sha256.New, globals.JwtSecret)
	h.Write([]byte(data))
	sig := base64.StdEncoding.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("%s|%s", data, sig)
}

// GET /api/itineraries/all/:id/pdf
// Only the owner or a purchaser may export the full schedule.
func (h *Handler) ExportPDF(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
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
		bought, err := purchases.HasPurchased(ctx, h.Purchases, userID, id)
		if err != nil || !bought {
			http.Error(w, "Purchase required", http.StatusForbidden)
			return
		}
	}

	qrPNG, err := qrcode.Encode(h.BaseURL+"/itineraries/"+id+"?sig="+qrPayload(id, userID), qrcode.Medium, 256)
	if err != nil {
		http.Error(w, "Failed to generate QR code", http.StatusInternalServerError)
		return
	}

	pdf := buildPDF(it, qrPNG)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		http.Error(w, "Failed to generate PDF", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%s.pdf", utils.SanitizeFilename(it.Title)))
	w.Write(buf.Bytes())
}

func buildPDF(it *models.Itinerary, qrPNG []byte) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(0, 10, it.Title)
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 11)
	pdf.MultiCell(0, 6, it.ShortDescription, "", "L", false)
	pdf.Ln(4)
	pdf.Cell(0, 8, fmt.Sprintf("Duration: %d days", it.Duration))
	pdf.Ln(10)

	for _, day := range it.Days {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 8, fmt.Sprintf("Day %d - %s, %s: %s", day.Position+1, day.City, day.Country, day.Title))
		pdf.Ln(8)

		pdf.SetFont("Arial", "", 10)
		if day.Description != "" {
			pdf.MultiCell(0, 5, day.Description, "", "L", false)
			pdf.Ln(2)
		}
		for _, act := range day.Activities {
			line := "- " + act.Title
			if act.Time != "" {
				line += " (" + act.Time + ")"
			}
			if act.Location != "" {
				line += " @ " + act.Location
			}
			pdf.MultiCell(0, 5, line, "", "L", false)
		}
		if day.HasAccommodation && day.Accommodation != nil {
			pdf.MultiCell(0, 5, "Stay: "+day.Accommodation.Name, "", "L", false)
		}
		pdf.Ln(4)
	}

	if len(it.Notes) > 0 {
		pdf.SetFont("Arial", "B", 13)
		pdf.Cell(0, 8, "Notes")
		pdf.Ln(8)
		pdf.SetFont("Arial", "", 10)
		for _, note := range it.Notes {
			pdf.MultiCell(0, 5, note.Title+": "+note.Body, "", "L", false)
			pdf.Ln(1)
		}
	}

	imageOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imageOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 160, 10, 35, 35, false, imageOpts, 0, "")

	return pdf
}
