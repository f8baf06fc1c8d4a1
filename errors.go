package wardrobe

import "errors"

// Sentinel errors for common failure modes.
var (
	// ErrInvalidArgument indicates a bad or missing configuration value.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrNotFound indicates a missing directory or file.
	ErrNotFound = errors.New("not found")

	// ErrTransport indicates a failure talking to the image model service,
	// including a response with no candidates and a missing API key.
	ErrTransport = errors.New("transport error")

	// ErrPersistence indicates that a response carried no image data to save.
	ErrPersistence = errors.New("persistence error")
)
