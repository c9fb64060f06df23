// Package couples declares the repository contract for couple rows. Couples
// are created elsewhere; the disclosure engine only reads them and records
// reveals.
package couples

import (
	"context"

	"github.com/dmitrijs2005/duetdiary/internal/server/models"
)

type Repository interface {
	// Get returns the couple or common.ErrorNotFound.
	Get(ctx context.Context, id string) (*models.Couple, error)

	// GetForUpdate is Get taking a row lock held until the surrounding
	// transaction ends.
	GetForUpdate(ctx context.Context, id string) (*models.Couple, error)

	// MarkRevealed sets the reveal flag and year. It never lowers
	// last_reveal_year; a stale write returns common.ErrStaleState.
	MarkRevealed(ctx context.Context, id string, year int) error
}
