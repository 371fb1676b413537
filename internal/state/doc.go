// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package state holds the Note State Store: the client-side mirror of the
// remote note collection plus the transient UI state derived from it.
//
// The store is owned by a single goroutine (the UI event loop). It is not
// safe for concurrent use; every mutation goes through a named method so the
// Viewing/Editing state machine stays enforceable. A serializable copy of the
// whole state is available through [Store.Snapshot].
package state
