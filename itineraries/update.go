package itineraries

import (
	"itinero/apperr"
	"itinero/models"
	"itinero/utils"
	"itinero/validation"
)

// updatePayload is a partial-field patch; nil means "leave unchanged".
type updatePayload struct {
	Title            *string                  `json:"title"`
	ShortDescription *string                  `json:"shortDescription"`
	MainImage        *string                  `json:"mainImage"`
	Duration         *int                     `json:"duration"`
	Countries        []string                 `json:"countries"`
	Continents       []string                 `json:"continents"`
	ActivityTags     []string                 `json:"activityTags"`
	ItineraryTags    []string                 `json:"itineraryTags"`
	Days             []validation.DayPayload  `json:"days"`
	Notes            []validation.NotePayload `json:"notes"`
	Price            *int64                   `json:"price"`
	Status           *string                  `json:"status"`
}

// fields converts the patch into the store's field map, rejecting values
// that would violate the record invariants.
func (p *updatePayload) fields() (map[string]any, error) {
	fields := map[string]any{}

	if p.Title != nil {
		if *p.Title == "" {
			return nil, &apperr.ValidationError{Field: "title", Message: "title is required"}
		}
		fields["title"] = *p.Title
	}
	if p.ShortDescription != nil {
		fields["shortdescription"] = *p.ShortDescription
	}
	if p.MainImage != nil {
		fields["mainimage"] = *p.MainImage
	}
	if p.Duration != nil {
		if *p.Duration < 1 {
			return nil, &apperr.ValidationError{Field: "duration", Message: "duration must be at least 1"}
		}
		fields["duration"] = *p.Duration
	}
	if p.Countries != nil {
		if len(p.Countries) == 0 {
			return nil, &apperr.ValidationError{Field: "countries", Message: "countries must contain at least 1 entries"}
		}
		fields["countries"] = p.Countries
	}
	if p.Continents != nil {
		fields["continents"] = p.Continents
	}
	if p.ActivityTags != nil {
		fields["activitytags"] = utils.NormalizeTags(p.ActivityTags)
	}
	if p.ItineraryTags != nil {
		tags := utils.NormalizeTags(p.ItineraryTags)
		if len(tags) > 5 {
			return nil, &apperr.ValidationError{Field: "itineraryTags", Message: "itineraryTags must contain at most 5 entries"}
		}
		fields["itinerarytags"] = tags
	}
	if p.Days != nil {
		days := make([]models.Day, 0, len(p.Days))
		for _, d := range p.Days {
			if d.Title == "" || d.City == "" || d.Country == "" {
				return nil, &apperr.ValidationError{Field: "days", Message: "each day needs a title, city and country"}
			}
			days = append(days, dayFromPayload(d))
		}
		fields["days"] = days
	}
	if p.Notes != nil {
		notes := make([]models.Note, 0, len(p.Notes))
		for _, n := range p.Notes {
			notes = append(notes, models.Note{Title: n.Title, Body: n.Body})
		}
		fields["notes"] = notes
	}
	if p.Price != nil {
		if *p.Price < 0 {
			return nil, &apperr.ValidationError{Field: "price", Message: "price must be at least 0"}
		}
		fields["price"] = *p.Price
	}
	if p.Status != nil {
		if !utils.Contains(models.ValidStatuses, *p.Status) {
			return nil, &apperr.ValidationError{Field: "status", Message: "status is invalid"}
		}
		fields["status"] = *p.Status
	}

	return fields, nil
}
