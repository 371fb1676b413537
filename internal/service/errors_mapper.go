// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"

	"github.com/MKhiriev/go-notes-keeper/internal/app"
)

var userMessages = []struct {
	err     error
	message string
}{
	{ErrFetchListFailed, app.MsgFailedToLoadNotes},
	{ErrCreateFailed, app.MsgFailedToCreateNote},
	{ErrSaveFailed, app.MsgFailedToSaveNote},
	{ErrDeleteFailed, app.MsgFailedToDeleteNote},
}

// UserMessage returns the fixed user-facing message for a controller error,
// or an empty string for nil and unknown errors.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	for _, m := range userMessages {
		if errors.Is(err, m.err) {
			return m.message
		}
	}
	return ""
}
