package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrNoteNotFound is returned when an update or delete targets an id
	// that does not exist.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrInvalidNoteID is returned when a note id is not an integer.
	ErrInvalidNoteID = errors.New("note id must be an integer")

	// ErrStorageUnavailable wraps driver errors classified as connection
	// failures. The request may succeed later.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrUnsupportedDSN is returned when no driver matches the DSN.
	ErrUnsupportedDSN = errors.New("unsupported storage dsn")
)

// Low-level database operation errors.
var (
	// ErrBuildingSQLQuery is returned when squirrel cannot render a query.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT (or RETURNING) query fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when a DML statement without a
	// result set fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when a single result row cannot be scanned.
	ErrScanningRow = errors.New("failed to scan note row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan note rows")
)
