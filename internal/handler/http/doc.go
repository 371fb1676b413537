// Package http implements the reference Remote Notes Service over HTTP.
//
// It exposes the four note operations under a configurable base path
// (GET/POST {base}, PUT/DELETE {base}/{id}) plus GET /version. Request
// tracing, access logging, panic recovery and response compression are
// handled by middleware before requests reach the [store.NoteRepository].
package http
