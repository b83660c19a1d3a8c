package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist in the database.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions and by the HOS engine when
// input fails business rule validation (e.g. missing required field, cycle
// hours outside the legal range).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")

// ErrUpstream is returned when an external collaborator (geocoding, routing)
// fails and no fallback result could be produced.
// Handlers should map this to HTTP 502 Bad Gateway.
var ErrUpstream = errors.New("upstream unavailable")
