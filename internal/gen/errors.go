package gen

import "errors"

var (
	// ErrInvalidManifest is returned when the kinds manifest is malformed.
	ErrInvalidManifest = errors.New("invalid kinds manifest")

	// ErrRender is returned when a kind cannot be rendered or formatted.
	ErrRender = errors.New("failed to render kind")
)
