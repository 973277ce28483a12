// Package validation holds the declarative shape of an itinerary payload.
package validation

import (
	"fmt"
	"strings"

	"itinero/apperr"

	"github.com/go-playground/validator/v10"
)

// ItineraryPayload is the create/update body. Tags describe shape only;
// there is deliberately no cross-field business validation here.
type ItineraryPayload struct {
	Title            string           `json:"title" validate:"required,min=3,max=120"`
	ShortDescription string           `json:"shortDescription" validate:"required,min=10,max=500"`
	MainImage        string           `json:"mainImage" validate:"omitempty,url"`
	Duration         int              `json:"duration" validate:"required,min=1"`
	Countries        []string         `json:"countries" validate:"required,min=1,dive,min=2"`
	Continents       []string         `json:"continents" validate:"omitempty,dive,min=2"`
	ActivityTags     []string         `json:"activityTags" validate:"omitempty,dive,min=2"`
	ItineraryTags    []string         `json:"itineraryTags" validate:"omitempty,max=5,dive,min=2"`
	Price            int64            `json:"price" validate:"min=0"`
	Status           string           `json:"status" validate:"omitempty,oneof=pending draft published archived restricted deleted"`
	Days             []DayPayload     `json:"days" validate:"omitempty,dive"`
	Notes            []NotePayload    `json:"notes" validate:"omitempty,dive"`
}

type DayPayload struct {
	Position         int                   `json:"position" validate:"min=0"`
	City             string                `json:"city" validate:"required"`
	Country          string                `json:"country" validate:"required"`
	Title            string                `json:"title" validate:"required,max=120"`
	Description      string                `json:"description" validate:"omitempty,max=2000"`
	Notes            string                `json:"notes" validate:"omitempty,max=2000"`
	Activities       []ActivityPayload     `json:"activities" validate:"omitempty,dive"`
	HasAccommodation bool                  `json:"hasAccommodation"`
	Accommodation    *AccommodationPayload `json:"accommodation" validate:"omitempty"`
}

type ActivityPayload struct {
	Title       string `json:"title" validate:"required,max=120"`
	Time        string `json:"time" validate:"omitempty,max=40"`
	Duration    string `json:"duration" validate:"omitempty,max=40"`
	Location    string `json:"location" validate:"omitempty,max=200"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Link        string `json:"link" validate:"omitempty,url"`
	Price       int64  `json:"price" validate:"min=0"`
	Photo       string `json:"photo" validate:"omitempty,url"`
}

type AccommodationPayload struct {
	Name        string `json:"name" validate:"required,max=120"`
	Link        string `json:"link" validate:"omitempty,url"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Price       int64  `json:"price" validate:"min=0"`
}

type NotePayload struct {
	Title string `json:"title" validate:"required,max=120"`
	Body  string `json:"body" validate:"required,max=5000"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateItinerary checks the payload shape and returns a ValidationError
// carrying the first violated field's message.
func ValidateItinerary(p *ItineraryPayload) error {
	err := validate.Struct(p)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok || len(verrs) == 0 {
		return &apperr.ValidationError{Message: "invalid payload"}
	}

	first := verrs[0]
	field := fieldName(first)
	return &apperr.ValidationError{
		Field:   field,
		Message: messageFor(field, first),
	}
}

func fieldName(fe validator.FieldError) string {
	// Strip the payload type prefix from the namespace, lower-case the head.
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	if ns == "" {
		return fe.Field()
	}
	return strings.ToLower(ns[:1]) + ns[1:]
}

func messageFor(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "min":
		if fe.Kind().String() == "slice" {
			return fmt.Sprintf("%s must contain at least %s entries", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "max":
		if fe.Kind().String() == "slice" {
			return fmt.Sprintf("%s must contain at most %s entries", field, fe.Param())
		}
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a valid URL", field)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
