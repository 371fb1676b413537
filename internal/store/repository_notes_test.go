package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/migrations"
	"github.com/MKhiriev/go-notes-keeper/models"
	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db, mock
}

// newDBFromSQL wraps a sqlmock connection as a PostgreSQL DB.
func newDBFromSQL(db *sql.DB) *DB {
	return newDB(db, migrations.DialectPostgres, sq.Dollar, NewPostgresErrorClassifier(), logger.Nop())
}

func newTestRepo(t *testing.T) (NoteRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newTestDB(t)
	return NewNoteRepository(newDBFromSQL(db)), mock
}

func testContext() context.Context {
	l := zerolog.Nop()
	return l.WithContext(context.Background())
}

var noteRowColumns = []string{"id", "title", "content"}

// ── ListNotes ───────────────────────────────────────────────────────────────

func TestListNotes_Success(t *testing.T) {
	repo, mock := newTestRepo(t)

	mock.ExpectQuery(`SELECT id, title, content FROM notes ORDER BY id`).
		WillReturnRows(sqlmock.NewRows(noteRowColumns).
			AddRow(int64(1), "A", "x").
			AddRow(int64(2), "B", "y"))

	notes, err := repo.ListNotes(testContext())

	require.NoError(t, err)
	assert.Equal(t, []models.Note{
		{ID: models.IntID(1), Title: "A", Content: "x"},
		{ID: models.IntID(2), Title: "B", Content: "y"},
	}, notes)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListNotes_Empty(t *testing.T) {
	repo, mock := newTestRepo(t)
	mock.ExpectQuery(`SELECT id, title, content FROM notes`).
		WillReturnRows(sqlmock.NewRows(noteRowColumns))

	notes, err := repo.ListNotes(testContext())

	require.NoError(t, err)
	assert.NotNil(t, notes)
	assert.Empty(t, notes)
}

func TestListNotes_QueryError(t *testing.T) {
	repo, mock := newTestRepo(t)
	mock.ExpectQuery(`SELECT`).WillReturnError(errors.New("boom"))

	_, err := repo.ListNotes(testContext())

	assert.ErrorIs(t, err, ErrExecutingQuery)
	assert.NotErrorIs(t, err, ErrStorageUnavailable)
}

func TestListNotes_ConnectionFailureIsUnavailable(t *testing.T) {
	repo, mock := newTestRepo(t)
	mock.ExpectQuery(`SELECT`).WillReturnError(&pgconn.PgError{Code: pgerrcode.ConnectionFailure})

	_, err := repo.ListNotes(testContext())

	assert.ErrorIs(t, err, ErrStorageUnavailable)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestListNotes_ScanError(t *testing.T) {
	repo, mock := newTestRepo(t)
	mock.ExpectQuery(`SELECT`).
		WillReturnRows(sqlmock.NewRows(noteRowColumns).AddRow("not-a-number", "A", "x"))

	_, err := repo.ListNotes(testContext())

	assert.ErrorIs(t, err, ErrScanningRow)
}

// ── CreateNote ──────────────────────────────────────────────────────────────

func TestCreateNote_Success(t *testing.T) {
	repo, mock := newTestRepo(t)
	mock.ExpectQuery(`INSERT INTO notes \(title,content\) VALUES \(\$1,\$2\) RETURNING id, title, content`).
		WithArgs("", "").
		WillReturnRows(sqlmock.NewRows(noteRowColumns).AddRow(int64(3), "", ""))

	note, err := repo.CreateNote(testContext(), models.NewNoteRequest{})

	require.NoError(t, err)
	assert.Equal(t, models.Note{ID: models.IntID(3)}, note)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateNote_Error(t *testing.T) {
	repo, mock := newTestRepo(t)
	mock.ExpectQuery(`INSERT INTO notes`).WillReturnError(errors.New("disk full"))

	_, err := repo.CreateNote(testContext(), models.NewNoteRequest{})

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

// ── UpdateNote ──────────────────────────────────────────────────────────────

func TestUpdateNote_Success(t *testing.T) {
	repo, mock := newTestRepo(t)
	mock.ExpectQuery(`UPDATE notes SET title = \$1, content = \$2, updated_at = CURRENT_TIMESTAMP WHERE id = \$3 RETURNING id, title, content`).
		WithArgs("A2", "x", int64(1)).
		WillReturnRows(sqlmock.NewRows(noteRowColumns).AddRow(int64(1), "A2", "x"))

	note, err := repo.UpdateNote(testContext(), models.Note{ID: models.IntID(1), Title: "A2", Content: "x"})

	require.NoError(t, err)
	assert.Equal(t, "A2", note.Title)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateNote_NotFound(t *testing.T) {
	repo, mock := newTestRepo(t)
	mock.ExpectQuery(`UPDATE notes`).WillReturnRows(sqlmock.NewRows(noteRowColumns))

	_, err := repo.UpdateNote(testContext(), models.Note{ID: models.IntID(9)})

	assert.ErrorIs(t, err, ErrNoteNotFound)
}

func TestUpdateNote_StringID(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, err := repo.UpdateNote(testContext(), models.Note{ID: models.StringID("abc")})

	assert.ErrorIs(t, err, ErrInvalidNoteID)
}

// ── DeleteNote ──────────────────────────────────────────────────────────────

func TestDeleteNote_Success(t *testing.T) {
	repo, mock := newTestRepo(t)
	mock.ExpectExec(`DELETE FROM notes WHERE id = \$1`).
		WithArgs(int64(4)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.DeleteNote(testContext(), 4))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestDeleteNote_NotFound(t *testing.T) {
	repo, mock := newTestRepo(t)
	mock.ExpectExec(`DELETE FROM notes`).WillReturnResult(sqlmock.NewResult(0, 0))

	assert.ErrorIs(t, repo.DeleteNote(testContext(), 4), ErrNoteNotFound)
}

func TestDeleteNote_ExecError(t *testing.T) {
	repo, mock := newTestRepo(t)
	mock.ExpectExec(`DELETE FROM notes`).WillReturnError(&pgconn.PgError{Code: pgerrcode.CannotConnectNow})

	err := repo.DeleteNote(testContext(), 4)

	assert.ErrorIs(t, err, ErrExecutingStatement)
	assert.ErrorIs(t, err, ErrStorageUnavailable)
}

// ── dialects & classifiers ──────────────────────────────────────────────────

func TestBuildQueries_SQLitePlaceholders(t *testing.T) {
	db := newDB(nil, migrations.DialectSQLite, sq.Question, NewSQLiteErrorClassifier(), logger.Nop())

	query, args, err := db.buildDeleteNoteQuery(7)

	require.NoError(t, err)
	assert.Equal(t, "DELETE FROM notes WHERE id = ?", query)
	assert.Equal(t, []any{int64(7)}, args)
}

func TestClassifyPgError(t *testing.T) {
	tests := []struct {
		code string
		want ErrorClassification
	}{
		{code: pgerrcode.ConnectionFailure, want: Retryable},
		{code: pgerrcode.SerializationFailure, want: Retryable},
		{code: pgerrcode.CannotConnectNow, want: Retryable},
		{code: pgerrcode.UniqueViolation, want: NonRetryable},
		{code: pgerrcode.SyntaxError, want: NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyPgError(&pgconn.PgError{Code: tt.code}))
		})
	}
}

func TestPostgresErrorClassifier_NonPgError(t *testing.T) {
	c := NewPostgresErrorClassifier()
	assert.Equal(t, NonRetryable, c.Classify(nil))
	assert.Equal(t, NonRetryable, c.Classify(errors.New("plain")))
}

func TestNewConnect_UnsupportedDSN(t *testing.T) {
	_, err := NewConnect(context.Background(), "mysql://localhost/notes", logger.Nop())
	assert.ErrorIs(t, err, ErrUnsupportedDSN)
}
