// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidNoteID is returned when a note identifier in a JSON document is
// neither a string nor a number.
var ErrInvalidNoteID = errors.New("note id must be a string or a number")

// NoteID is the opaque, server-assigned identity of a [Note].
//
// The Remote Notes Service may use numeric or string identifiers. NoteID keeps
// the original JSON kind so that an id read from a response is written back in
// exactly the same form. NoteID is comparable; the zero value means "no id".
type NoteID struct {
	value   string
	numeric bool
}

// IntID builds a numeric NoteID.
func IntID(id int64) NoteID {
	return NoteID{value: strconv.FormatInt(id, 10), numeric: true}
}

// StringID builds a string NoteID.
func StringID(id string) NoteID {
	return NoteID{value: id}
}

// IsZero reports whether the id is unset.
func (id NoteID) IsZero() bool {
	return id.value == ""
}

// String returns the id as it appears in a URL path segment.
func (id NoteID) String() string {
	return id.value
}

// Int64 returns the numeric value of the id. ok is false for string ids and
// for numeric ids that do not fit into int64.
func (id NoteID) Int64() (int64, bool) {
	if !id.numeric {
		return 0, false
	}
	v, err := strconv.ParseInt(id.value, 10, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// MarshalJSON writes the id back in the JSON kind it was read with.
func (id NoteID) MarshalJSON() ([]byte, error) {
	if id.IsZero() {
		return []byte("null"), nil
	}
	if id.numeric {
		return []byte(id.value), nil
	}
	return json.Marshal(id.value)
}

// UnmarshalJSON accepts a JSON string or a JSON number.
func (id *NoteID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*id = NoteID{}
		return nil
	}

	dec := json.NewDecoder(bytes.NewReader(b))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return fmt.Errorf("decode note id: %w", err)
	}

	switch value := v.(type) {
	case string:
		*id = NoteID{value: value}
	case json.Number:
		*id = NoteID{value: value.String(), numeric: true}
	default:
		return ErrInvalidNoteID
	}
	return nil
}

// Note is the persisted entity exchanged with the Remote Notes Service.
// No other fields are read or written.
type Note struct {
	ID      NoteID `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// NewNoteRequest is the body of a creation request: both fields are sent
// empty and the server assigns the id.
type NewNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}
