package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/jobtracker/internal/dbx"
	"github.com/dmitrijs2005/jobtracker/internal/server/repositories/applications"
	"github.com/dmitrijs2005/jobtracker/internal/server/repositories/refreshtokens"
	"github.com/dmitrijs2005/jobtracker/internal/server/repositories/users"
)

// RepositoryManager vends repositories bound to a DBTX, so the same
// repository can run on the pool or inside a transaction.
type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Users(db dbx.DBTX) users.Repository
	RefreshTokens(db dbx.DBTX) refreshtokens.Repository
	Applications(db dbx.DBTX) applications.Repository
}
