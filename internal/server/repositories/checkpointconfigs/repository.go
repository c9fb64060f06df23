package checkpointconfigs

import (
	"context"

	"github.com/dmitrijs2005/duetdiary/internal/server/models"
)

// Repository stores couple-defined checkpoint schedules.
type Repository interface {
	ListByCouple(ctx context.Context, coupleID string) ([]models.CheckpointConfig, error)
	Get(ctx context.Context, coupleID, id string) (*models.CheckpointConfig, error)
	Create(ctx context.Context, cfg *models.CheckpointConfig) error
	Update(ctx context.Context, cfg *models.CheckpointConfig) error
	Delete(ctx context.Context, coupleID, id string) error
}
