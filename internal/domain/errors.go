package domain

import "errors"

var (
	// Ledger errors. Missing ids are ordinarily silent no-ops; this is
	// only surfaced where a caller explicitly asks whether anything
	// happened.
	ErrRecordNotFound = errors.New("transaction record not found")

	// Preset errors
	ErrPresetNotFound = errors.New("preset item not found")
	ErrInvalidPreset  = errors.New("preset item needs a name and a price")

	// Assistant errors
	ErrAssistantDisabled = errors.New("assistant is not configured")
)
