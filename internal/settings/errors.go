package settings

import "errors"

var (
	// ErrConfiguration means no usable settings source exists: the packaged
	// defaults are missing or malformed and there is no user override.
	ErrConfiguration = errors.New("no usable settings configuration")

	// ErrPersistence means writing or clearing user settings failed.
	ErrPersistence = errors.New("saving user settings failed")

	// ErrInvalidSettings means a settings record failed validation.
	ErrInvalidSettings = errors.New("invalid settings")
)
