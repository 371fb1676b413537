// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the terminal notes client runtime.
//
// It ties the view layer to the process lifecycle: the UI runs until the user
// quits or the process receives SIGTERM.
package client
