package snapshots

import (
	"context"

	"github.com/dmitrijs2005/duetdiary/internal/server/models"
)

// Repository keeps one frozen statistics snapshot per couple and year.
type Repository interface {
	// Upsert writes the snapshot, replacing stats and revealed_at of an
	// existing row for the same year. s.ID is set to the stored row id.
	Upsert(ctx context.Context, s *models.RevealSnapshot) error
	Get(ctx context.Context, coupleID string, year int) (*models.RevealSnapshot, error)
	ListYears(ctx context.Context, coupleID string) ([]models.RevealedYear, error)
}
