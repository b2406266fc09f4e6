package launchcfg

import "errors"

var (
	// ErrAlreadyInitialized is returned by Init when the process-wide
	// configuration has already been constructed, by either Init or Instance.
	ErrAlreadyInitialized = errors.New("configuration already initialized")
	// ErrEmptyPath is returned by Init when the given path is empty.
	ErrEmptyPath = errors.New("config path is required")
)
