// Package checkpointreveals persists disclosure receipts: proof that an
// entry was shown to a viewer on a given day. Rows are append-only.
package checkpointreveals

import (
	"context"

	"github.com/dmitrijs2005/duetdiary/internal/server/models"
	"github.com/dmitrijs2005/duetdiary/internal/timex"
)

type Repository interface {
	// FindForDay returns the viewer's receipt for day or common.ErrorNotFound.
	FindForDay(ctx context.Context, coupleID, viewerID string, day timex.Date) (*models.CheckpointReveal, error)

	// ListEligibleEntryIDs lists published entries written by authorID that
	// were never disclosed to viewerID, ordered by id.
	ListEligibleEntryIDs(ctx context.Context, coupleID, authorID, viewerID string) ([]string, error)

	// Insert stores a receipt. A receipt that collides with an existing
	// (entry, viewer) or (viewer, day) pair yields common.ErrConflict.
	Insert(ctx context.Context, r *models.CheckpointReveal) error

	ListHistory(ctx context.Context, coupleID, viewerID string) ([]models.CheckpointHistoryItem, error)

	CountUnrevealed(ctx context.Context, coupleID, authorID, viewerID string) (int, error)
}
