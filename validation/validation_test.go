package validation

import (
	"testing"

	"itinero/apperr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validPayload() ItineraryPayload {
	return ItineraryPayload{
		Title:            "Two Weeks in Portugal",
		ShortDescription: "Lisbon, Porto and the Algarve at a relaxed pace.",
		Duration:         14,
		Countries:        []string{"Portugal"},
		Price:            4900,
		Days: []DayPayload{
			{
				City:    "Lisbon",
				Country: "Portugal",
				Title:   "Arrival and Alfama",
				Activities: []ActivityPayload{
					{Title: "Tram 28 loop", Time: "10:00"},
				},
			},
		},
	}
}

func TestValidateItinerary_Valid(t *testing.T) {
	p := validPayload()
	assert.NoError(t, ValidateItinerary(&p))
}

func TestValidateItinerary_ZeroDuration(t *testing.T) {
	p := validPayload()
	p.Duration = 0

	err := ValidateItinerary(&p)

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "duration")
}

func TestValidateItinerary_MissingTitle(t *testing.T) {
	p := validPayload()
	p.Title = ""

	err := ValidateItinerary(&p)

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "title", verr.Field)
}

func TestValidateItinerary_NoCountries(t *testing.T) {
	p := validPayload()
	p.Countries = nil

	err := ValidateItinerary(&p)

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "countries")
}

func TestValidateItinerary_TooManyTags(t *testing.T) {
	p := validPayload()
	p.ItineraryTags = []string{"beach", "food", "hiking", "museums", "nightlife", "wine"}

	err := ValidateItinerary(&p)

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "itineraryTags")
	assert.Contains(t, verr.Message, "at most 5")
}

func TestValidateItinerary_BadImageURL(t *testing.T) {
	p := validPayload()
	p.MainImage = "not a url"

	err := ValidateItinerary(&p)

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "URL")
}

func TestValidateItinerary_ActivityTitleRequired(t *testing.T) {
	p := validPayload()
	p.Days[0].Activities[0].Title = ""

	err := ValidateItinerary(&p)

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Message, "required")
}

func TestValidateItinerary_DayNeedsCity(t *testing.T) {
	p := validPayload()
	p.Days[0].City = ""

	err := ValidateItinerary(&p)

	var verr *apperr.ValidationError
	require.ErrorAs(t, err, &verr)
}
