package repomanager

import (
	"context"
	"database/sql"

	"github.com/arolabs/aronotes/internal/dbx"
	"github.com/arolabs/aronotes/internal/server/repositories/notes"
	"github.com/arolabs/aronotes/internal/server/repositories/users"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	Notes(db dbx.DBTX) notes.Repository
}
