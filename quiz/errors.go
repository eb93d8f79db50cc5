package quiz

import (
	"emperror.dev/errors"
)

var (
	// ErrMalformed is returned when raw question data is structurally
	// invalid: not a JSON object, missing fields, wrong types or empty
	// strings where text is required.
	ErrMalformed = errors.New("malformed question")

	// ErrOutOfRange is returned when a structurally valid question
	// violates one of the configured bounds.
	ErrOutOfRange = errors.New("question parameter out of range")
)
