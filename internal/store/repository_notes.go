// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// noteRepository is the SQL implementation of [NoteRepository].
//
// Every method obtains a context-scoped logger via [logger.FromContext] so
// that database failures carry the request trace id.
type noteRepository struct {
	*DB
}

func NewNoteRepository(db *DB) NoteRepository {
	return &noteRepository{DB: db}
}

func (r *noteRepository) ListNotes(ctx context.Context) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildListNotesQuery()
	if err != nil {
		log.Err(err).Str("func", "noteRepository.ListNotes").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.ListNotes").Msg("failed to execute query for listing notes")
		return nil, r.classify(fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 16)
	for rows.Next() {
		var (
			id   int64
			note models.Note
		)
		if scanErr := rows.Scan(&id, &note.Title, &note.Content); scanErr != nil {
			log.Err(scanErr).Str("func", "noteRepository.ListNotes").Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		note.ID = models.IntID(id)
		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "noteRepository.ListNotes").Msg("error occurred during rows iteration")
		return nil, r.classify(fmt.Errorf("%w: %w", ErrScanningRows, rowsErr))
	}

	return notes, nil
}

func (r *noteRepository) CreateNote(ctx context.Context, req models.NewNoteRequest) (models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.buildCreateNoteQuery(req.Title, req.Content)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.CreateNote").Msg("failed to create query")
		return models.Note{}, err
	}

	note, err := r.scanNote(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "noteRepository.CreateNote").Msg("failed to insert note")
		return models.Note{}, r.classify(fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}

	return note, nil
}

func (r *noteRepository) UpdateNote(ctx context.Context, note models.Note) (models.Note, error) {
	log := logger.FromContext(ctx)

	id, ok := note.ID.Int64()
	if !ok {
		return models.Note{}, ErrInvalidNoteID
	}

	query, args, err := r.buildUpdateNoteQuery(id, note.Title, note.Content)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.UpdateNote").Msg("failed to create query")
		return models.Note{}, err
	}

	updated, err := r.scanNote(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Note{}, fmt.Errorf("%w: id %d", ErrNoteNotFound, id)
	}
	if err != nil {
		log.Err(err).Str("func", "noteRepository.UpdateNote").Int64("note_id", id).Msg("failed to update note")
		return models.Note{}, r.classify(fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}

	return updated, nil
}

func (r *noteRepository) DeleteNote(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := r.buildDeleteNoteQuery(id)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.DeleteNote").Msg("failed to create query")
		return err
	}

	res, err := r.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "noteRepository.DeleteNote").Int64("note_id", id).Msg("failed to delete note")
		return r.classify(fmt.Errorf("%w: %w", ErrExecutingStatement, err))
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: id %d", ErrNoteNotFound, id)
	}

	return nil
}

func (r *noteRepository) scanNote(row *sql.Row) (models.Note, error) {
	var (
		id   int64
		note models.Note
	)
	if err := row.Scan(&id, &note.Title, &note.Content); err != nil {
		return models.Note{}, err
	}
	note.ID = models.IntID(id)
	return note, nil
}
