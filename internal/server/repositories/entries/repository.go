// Package entries is the read side of the entries contract consumed by the
// disclosure engine. Authoring lives outside this server.
package entries

import (
	"context"

	"github.com/dmitrijs2005/duetdiary/internal/server/models"
)

type Repository interface {
	// ListPublished returns published entries matching filter ordered by
	// entry date, creation time and id.
	ListPublished(ctx context.Context, filter models.EntryFilter) ([]models.Entry, error)

	// GetByID returns an entry regardless of its status, or common.ErrorNotFound.
	GetByID(ctx context.Context, id string) (*models.Entry, error)
}
