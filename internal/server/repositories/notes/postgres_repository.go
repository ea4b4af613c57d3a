// Package notes provides the PostgreSQL-backed repository for per-user
// notes. Every statement is scoped by user_id, so one user's requests can
// never touch another user's rows.
package notes

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/arolabs/aronotes/internal/common"
	"github.com/arolabs/aronotes/internal/dbx"
	"github.com/arolabs/aronotes/internal/server/models"
)

// PostgresRepository implements note storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// List returns all notes owned by userID in insertion order. A user with no
// notes yields an empty slice, not an error.
func (r *PostgresRepository) List(ctx context.Context, userID string) ([]*models.Note, error) {
	query := `
		SELECT note_id, user_id, title, content, created_at FROM notes
		WHERE user_id = $1
		ORDER BY created_at, note_id;
	`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to select notes: %w", err)
	}
	defer rows.Close()

	result := []*models.Note{}
	for rows.Next() {
		var item models.Note
		if err := rows.Scan(
			&item.NoteID, &item.UserID, &item.Title, &item.Content, &item.CreatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// Create inserts the note and fills in the generated note_id and the
// server-assigned created_at.
func (r *PostgresRepository) Create(ctx context.Context, note *models.Note) (*models.Note, error) {
	query := `
		INSERT INTO notes (user_id, title, content)
		VALUES ($1, $2, $3)
		RETURNING note_id, created_at;
	`

	err := r.db.QueryRowContext(ctx, query,
		note.UserID, note.Title, note.Content).Scan(&note.NoteID, &note.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return note, nil
}

// Update rewrites title and content of the note owned by userID. A note id
// outside that user's rows affects nothing and returns common.ErrorNotFound.
func (r *PostgresRepository) Update(ctx context.Context, userID string, noteID int64, title, content string) error {
	query := `
		UPDATE notes SET title = $1, content = $2
		WHERE user_id = $3 AND note_id = $4;
	`
	res, err := r.db.ExecContext(ctx, query, title, content, userID, noteID)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// Delete removes the note owned by userID and returns the removed row, or
// common.ErrorNotFound when no such note exists for that user.
func (r *PostgresRepository) Delete(ctx context.Context, userID string, noteID int64) (*models.Note, error) {
	query := `
		DELETE FROM notes
		WHERE user_id = $1 AND note_id = $2
		RETURNING note_id, user_id, title, content, created_at;
	`

	note := &models.Note{}
	err := r.db.QueryRowContext(ctx, query, userID, noteID).Scan(
		&note.NoteID, &note.UserID, &note.Title, &note.Content, &note.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return note, nil
}

// RecordDeletion appends the audit row for a deleted note.
func (r *PostgresRepository) RecordDeletion(ctx context.Context, note *models.Note) error {
	query := `
		INSERT INTO note_audit (user_id, note_id, title)
		VALUES ($1, $2, $3);
	`
	if _, err := r.db.ExecContext(ctx, query, note.UserID, note.NoteID, note.Title); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}
