package repomanager

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/duetdiary/internal/dbx"
	"github.com/dmitrijs2005/duetdiary/internal/server/repositories/checkpointconfigs"
	"github.com/dmitrijs2005/duetdiary/internal/server/repositories/checkpointreveals"
	"github.com/dmitrijs2005/duetdiary/internal/server/repositories/couples"
	"github.com/dmitrijs2005/duetdiary/internal/server/repositories/entries"
	"github.com/dmitrijs2005/duetdiary/internal/server/repositories/media"
	"github.com/dmitrijs2005/duetdiary/internal/server/repositories/snapshots"
)

type RepositoryManager interface {
	RunMigrations(context.Context, *sql.DB) error
	Couples(db dbx.DBTX) couples.Repository
	Entries(db dbx.DBTX) entries.Repository
	Media(db dbx.DBTX) media.Repository
	CheckpointConfigs(db dbx.DBTX) checkpointconfigs.Repository
	CheckpointReveals(db dbx.DBTX) checkpointreveals.Repository
	Snapshots(db dbx.DBTX) snapshots.Repository
}
