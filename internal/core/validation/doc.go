// Package validation provides pure validation functions for API handlers.
//
// This package contains the functional core logic for validating API requests
// and checking business rules. All functions are pure (no I/O, no side effects)
// and comply with ADR-002 "Values as Boundaries".
//
// Field validators return (field, message) pairs: an empty field name means
// the input passed. Rule checks return (allowed, reason) pairs. The API
// handlers translate both into HTTP 400 responses.
package validation
