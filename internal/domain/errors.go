package domain

import "errors"

// ─── Sentinel Errors ────────────────────────────────────────────────────────

var (
	// Lookup errors
	ErrChildNotFound     = errors.New("child not found")
	ErrHouseholdNotFound = errors.New("household not found")

	// ErrAnalyticsUnavailable signals that an upstream store could not be
	// read. Callers must surface an explicit error/retry state, never an
	// all-zero result pretending to be real data. A child with zero
	// events is NOT this error — that is a normal all-zero snapshot.
	ErrAnalyticsUnavailable = errors.New("analytics unavailable")

	// ErrBadCatalog signals a catalog entry with a non-positive
	// requirement. Triggering it is a catalog-definition bug, not a
	// runtime condition to recover from.
	ErrBadCatalog = errors.New("achievement catalog entry has non-positive requirement")
)
