package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-notes-keeper/models"
)

func TestNewNoteValidator(t *testing.T) {
	require.NotNil(t, NewNoteValidator())
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()
	note := models.Note{ID: models.IntID(1)}
	req := models.NewNoteRequest{}

	assert.NoError(t, v.Validate(ctx, note))
	assert.NoError(t, v.Validate(ctx, &note))
	assert.NoError(t, v.Validate(ctx, req))
	assert.NoError(t, v.Validate(ctx, &req))
	assert.ErrorIs(t, v.Validate(ctx, "note"), ErrUnsupportedType)
}

func TestValidate_Note(t *testing.T) {
	tests := []struct {
		name    string
		note    models.Note
		fields  []string
		wantErr error
	}{
		{name: "empty fields are valid", note: models.Note{ID: models.IntID(3)}},
		{name: "zero id", note: models.Note{}, wantErr: ErrInvalidNoteID},
		{name: "string id", note: models.Note{ID: models.StringID("abc")}, wantErr: ErrInvalidNoteID},
		{name: "negative id", note: models.Note{ID: models.IntID(-1)}, wantErr: ErrInvalidNoteID},
		{name: "zero id skipped when not requested", note: models.Note{}, fields: []string{FieldTitle}},
		{name: "long title", note: models.Note{ID: models.IntID(1), Title: strings.Repeat("a", MaxTitleLength+1)}, wantErr: ErrTitleTooLong},
		{name: "title limit counts runes", note: models.Note{ID: models.IntID(1), Title: strings.Repeat("ж", MaxTitleLength)}},
		{name: "large content", note: models.Note{ID: models.IntID(1), Content: strings.Repeat("a", MaxContentSize+1)}, wantErr: ErrContentTooLarge},
		{name: "invalid utf8", note: models.Note{ID: models.IntID(1), Content: "\xff"}, wantErr: ErrInvalidEncoding},
		{name: "unknown field", note: models.Note{ID: models.IntID(1)}, fields: []string{"color"}, wantErr: ErrUnknownField},
	}

	v := NewNoteValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), tt.note, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_NewNoteRequest(t *testing.T) {
	v := NewNoteValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.NewNoteRequest{Title: "t", Content: "c"}))
	assert.ErrorIs(t, v.Validate(ctx, models.NewNoteRequest{Title: "\xc3"}), ErrInvalidEncoding)
	assert.ErrorIs(t, v.Validate(ctx, models.NewNoteRequest{}, FieldID), ErrUnknownField)
}
