// Package media reads entry attachments. Uploading and compression are
// handled by another service; here we only count and locate them.
package media

import (
	"context"

	"github.com/dmitrijs2005/duetdiary/internal/server/models"
)

type Repository interface {
	// CountByType counts images and videos attached to published entries
	// matching filter. AuthorID in the filter is ignored.
	CountByType(ctx context.Context, filter models.EntryFilter) (models.MediaCounts, error)

	ListByEntry(ctx context.Context, entryID string) ([]models.Media, error)
}
