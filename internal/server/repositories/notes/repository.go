package notes

import (
	"context"

	"github.com/arolabs/aronotes/internal/server/models"
)

type Repository interface {
	List(ctx context.Context, userID string) ([]*models.Note, error)
	Create(ctx context.Context, note *models.Note) (*models.Note, error)
	Update(ctx context.Context, userID string, noteID int64, title, content string) error
	Delete(ctx context.Context, userID string, noteID int64) (*models.Note, error)
	RecordDeletion(ctx context.Context, note *models.Note) error
}
