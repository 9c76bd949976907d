package statusxml

import "errors"

var (
	ErrMalformed     = errors.New("malformed status document")
	ErrMissingHref   = errors.New("include is missing href")
	ErrInvalidOffset = errors.New("invalid offset literal")
)
