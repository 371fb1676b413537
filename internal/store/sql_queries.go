package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
)

const notesTable = "notes"

var noteColumns = []string{"id", "title", "content"}

func (db *DB) buildListNotesQuery() (string, []any, error) {
	query, args, err := db.builder.
		Select(noteColumns...).
		From(notesTable).
		OrderBy("id").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildCreateNoteQuery(title, content string) (string, []any, error) {
	query, args, err := db.builder.
		Insert(notesTable).
		Columns("title", "content").
		Values(title, content).
		Suffix("RETURNING id, title, content").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildUpdateNoteQuery(id int64, title, content string) (string, []any, error) {
	query, args, err := db.builder.
		Update(notesTable).
		Set("title", title).
		Set("content", content).
		Set("updated_at", sq.Expr("CURRENT_TIMESTAMP")).
		Where(sq.Eq{"id": id}).
		Suffix("RETURNING id, title, content").
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}

func (db *DB) buildDeleteNoteQuery(id int64) (string, []any, error) {
	query, args, err := db.builder.
		Delete(notesTable).
		Where(sq.Eq{"id": id}).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return query, args, nil
}
