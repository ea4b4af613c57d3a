package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/arolabs/aronotes/internal/common"
	"github.com/arolabs/aronotes/internal/dbx"
	"github.com/arolabs/aronotes/internal/server/models"
	"github.com/arolabs/aronotes/internal/server/repositories/repomanager"
)

// NoteService performs note CRUD for an already-authenticated user. It
// trusts the userID handed to it by the transport layer and scopes every
// repository call to that user.
type NoteService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
}

// NewNoteService constructs a NoteService over db and the repository manager.
func NewNoteService(db *sql.DB, m repomanager.RepositoryManager) *NoteService {
	return &NoteService{
		db:          db,
		repomanager: m,
	}
}

// List returns all notes owned by userID, oldest first.
func (s *NoteService) List(ctx context.Context, userID string) ([]*models.Note, error) {
	repo := s.repomanager.Notes(s.db)
	notes, err := repo.List(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing notes: %w", err)
	}
	return notes, nil
}

// Create inserts a note with a server-assigned id and timestamp. A note with
// both title and content blank is rejected with common.ErrorValidation.
func (s *NoteService) Create(ctx context.Context, userID, title, content string) (*models.Note, error) {
	if strings.TrimSpace(title) == "" && strings.TrimSpace(content) == "" {
		return nil, common.ErrorValidation
	}

	repo := s.repomanager.Notes(s.db)
	note, err := repo.Create(ctx, &models.Note{UserID: userID, Title: title, Content: content})
	if err != nil {
		return nil, fmt.Errorf("error creating note: %w", err)
	}
	return note, nil
}

// Update rewrites the note identified by noteID within the caller's own
// notes. A noteID belonging to another user is indistinguishable from a
// missing one; both yield common.ErrorNotFound.
func (s *NoteService) Update(ctx context.Context, userID string, noteID int64, title, content string) error {
	if strings.TrimSpace(title) == "" && strings.TrimSpace(content) == "" {
		return common.ErrorValidation
	}

	repo := s.repomanager.Notes(s.db)
	if err := repo.Update(ctx, userID, noteID, title, content); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorNotFound
		}
		return fmt.Errorf("error updating note: %w", err)
	}
	return nil
}

// Delete removes the note and records the deletion in the audit trail, both
// inside one transaction so the audit row never survives a failed delete.
func (s *NoteService) Delete(ctx context.Context, userID string, noteID int64) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repoTx := s.repomanager.Notes(tx)

		note, err := repoTx.Delete(ctx, userID, noteID)
		if err != nil {
			if errors.Is(err, common.ErrorNotFound) {
				return common.ErrorNotFound
			}
			return fmt.Errorf("error deleting note: %w", err)
		}

		if err := repoTx.RecordDeletion(ctx, note); err != nil {
			return fmt.Errorf("error recording deletion: %w", err)
		}
		return nil
	})
}
