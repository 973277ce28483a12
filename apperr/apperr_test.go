package apperr

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatus(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want int
	}{
		{"authorization", &AuthorizationError{Reason: "login required"}, http.StatusUnauthorized},
		{"validation", &ValidationError{Field: "title", Message: "title is required"}, http.StatusBadRequest},
		{"empty cart", ErrEmptyCart, http.StatusBadRequest},
		{"verification", &VerificationError{Reason: "lookup failed"}, http.StatusBadRequest},
		{"duplicate purchase", &DuplicatePurchaseError{ItineraryIDs: []string{"it-1"}}, http.StatusBadRequest},
		{"upstream", &UpstreamError{Op: "create checkout session", Err: errors.New("boom")}, http.StatusInternalServerError},
		{"unknown", errors.New("anything else"), http.StatusInternalServerError},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Status(tc.err))
		})
	}
}

func TestUpstreamErrorUnwraps(t *testing.T) {
	inner := errors.New("connection refused")
	err := &UpstreamError{Op: "create checkout session", Err: inner}
	assert.True(t, errors.Is(err, inner))
}
