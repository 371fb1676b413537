// Package tui is the terminal view layer of the notes client.
//
// A single Bubble Tea [Model] renders the note state store (sidebar list with
// search box, note view or editor, error banner, delete confirmation) and
// turns key presses into controller intents. Network operations returned by
// the controller run as tea.Cmd values; their results come back as messages
// and are applied on the program goroutine, which is the only goroutine that
// touches the store.
package tui
