// Package apperr defines the error kinds surfaced at the request boundary.
package apperr

import (
	"errors"
	"fmt"
	"net/http"
)

var ErrEmptyCart = errors.New("cart is empty")

// AuthorizationError means the caller's identity is missing or wrong.
type AuthorizationError struct {
	Reason string
}

func (e *AuthorizationError) Error() string {
	if e.Reason == "" {
		return "unauthorized"
	}
	return e.Reason
}

// ValidationError carries the first violated field's message.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// VerificationError means the authoritative record lookup failed.
type VerificationError struct {
	Reason string
}

func (e *VerificationError) Error() string {
	return "could not verify cart items: " + e.Reason
}

// DuplicatePurchaseError lists itinerary ids the caller already owns.
type DuplicatePurchaseError struct {
	ItineraryIDs []string
}

func (e *DuplicatePurchaseError) Error() string {
	return fmt.Sprintf("already purchased: %v", e.ItineraryIDs)
}

// UpstreamError wraps a database or payment-processor failure.
type UpstreamError struct {
	Op  string
	Err error
}

func (e *UpstreamError) Error() string { return e.Op + ": " + e.Err.Error() }
func (e *UpstreamError) Unwrap() error { return e.Err }

// Status maps an error to the HTTP status written at the boundary.
func Status(err error) int {
	var authErr *AuthorizationError
	var valErr *ValidationError
	var dupErr *DuplicatePurchaseError
	var verErr *VerificationError
	switch {
	case errors.As(err, &authErr):
		return http.StatusUnauthorized
	case errors.Is(err, ErrEmptyCart), errors.As(err, &valErr),
		errors.As(err, &dupErr), errors.As(err, &verErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
