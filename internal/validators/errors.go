package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidNoteID   = errors.New("invalid note id")
	ErrTitleTooLong    = errors.New("title is too long")
	ErrContentTooLarge = errors.New("content is too large")
	ErrInvalidEncoding = errors.New("text must be valid UTF-8")
)
