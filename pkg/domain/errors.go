package domain

import "errors"

var (
	// ErrMissingProductUID indicates the checkout route was called without
	// a product UID. Recovered locally as a 400.
	ErrMissingProductUID = errors.New("product uid is required")

	// ErrMissingSessionID indicates the confirmation page was opened
	// without a session_id query parameter. No upstream call is made.
	ErrMissingSessionID = errors.New("checkout session id is required")

	// ErrProductNotFound indicates the content store has no document for
	// the requested UID.
	ErrProductNotFound = errors.New("product not found")

	// ErrProductContentShape indicates the content store returned a
	// document missing required fields or with fields of the wrong type.
	ErrProductContentShape = errors.New("product content has unexpected shape")
)
