package repository

import "errors"

// Sentinel kinds for draft store errors.
var (
	ErrNotFound       = errors.New("player not found")
	ErrNoConfig       = errors.New("league config not found")
	ErrAlreadyDrafted = errors.New("player already drafted")
	ErrNotDrafted     = errors.New("player not drafted")
	ErrPickConflict   = errors.New("pick number conflict")
)
