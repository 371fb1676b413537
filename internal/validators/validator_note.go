package validators

import (
	"context"
	"unicode/utf8"

	"github.com/MKhiriev/go-notes-keeper/models"
)

const (
	FieldID      = "id"
	FieldTitle   = "title"
	FieldContent = "content"
)

const (
	// MaxTitleLength is counted in runes.
	MaxTitleLength = 1024
	// MaxContentSize is counted in bytes.
	MaxContentSize = 1 << 20
)

type NoteValidator struct {
}

func NewNoteValidator() Validator {
	return &NoteValidator{}
}

func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateNote(value, fields...)
	case *models.Note:
		return v.validateNote(*value, fields...)

	case models.NewNoteRequest:
		return v.validateNewNoteRequest(value, fields...)
	case *models.NewNoteRequest:
		return v.validateNewNoteRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateNote(note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldTitle, FieldContent}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldID:
			if id, ok := note.ID.Int64(); !ok || id <= 0 {
				err = ErrInvalidNoteID
			}
		case FieldTitle:
			err = validateTitle(note.Title)
		case FieldContent:
			err = validateContent(note.Content)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *NoteValidator) validateNewNoteRequest(req models.NewNoteRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldTitle:
			err = validateTitle(req.Title)
		case FieldContent:
			err = validateContent(req.Content)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func validateTitle(title string) error {
	if !utf8.ValidString(title) {
		return ErrInvalidEncoding
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

func validateContent(content string) error {
	if !utf8.ValidString(content) {
		return ErrInvalidEncoding
	}
	if len(content) > MaxContentSize {
		return ErrContentTooLarge
	}
	return nil
}
