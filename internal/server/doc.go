// Package server runs the reference notes server.
//
// It owns the HTTP listener lifecycle: startup, signal handling and graceful
// shutdown.
package server
