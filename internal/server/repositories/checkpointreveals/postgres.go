package checkpointreveals

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/duetdiary/internal/common"
	"github.com/dmitrijs2005/duetdiary/internal/dbx"
	"github.com/dmitrijs2005/duetdiary/internal/server/models"
	"github.com/dmitrijs2005/duetdiary/internal/timex"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) FindForDay(ctx context.Context, coupleID, viewerID string, day timex.Date) (*models.CheckpointReveal, error) {
	query := `
		SELECT id, couple_id, config_id, entry_id, viewer_id, reveal_date, revealed_at
		FROM checkpoint_reveals
		WHERE couple_id = $1 AND viewer_id = $2 AND reveal_date = $3
		ORDER BY revealed_at, id
		LIMIT 1`

	var (
		rev      models.CheckpointReveal
		configID sql.NullString
	)
	err := r.db.QueryRowContext(ctx, query, coupleID, viewerID, day.Time()).
		Scan(&rev.ID, &rev.CoupleID, &configID, &rev.EntryID, &rev.ViewerID, &rev.RevealDate, &rev.RevealedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if configID.Valid {
		rev.ConfigID = &configID.String
	}
	return &rev, nil
}

const eligibleCondition = `
		e.couple_id = $1 AND e.author_id = $2 AND e.status = 'published'
			AND NOT EXISTS (
				SELECT 1 FROM checkpoint_reveals r
				WHERE r.entry_id = e.id AND r.viewer_id = $3
			)`

func (r *PostgresRepository) ListEligibleEntryIDs(ctx context.Context, coupleID, authorID, viewerID string) ([]string, error) {
	query := `SELECT e.id FROM entries e WHERE` + eligibleCondition + `
		ORDER BY e.id`

	rows, err := r.db.QueryContext(ctx, query, coupleID, authorID, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to select eligible entries: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *PostgresRepository) Insert(ctx context.Context, rev *models.CheckpointReveal) error {
	query := `
		INSERT INTO checkpoint_reveals (id, couple_id, config_id, entry_id, viewer_id, reveal_date)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT DO NOTHING
		RETURNING revealed_at`

	var configID any
	if rev.ConfigID != nil {
		configID = *rev.ConfigID
	}

	err := r.db.QueryRowContext(ctx, query,
		rev.ID, rev.CoupleID, configID, rev.EntryID, rev.ViewerID, rev.RevealDate.Time(),
	).Scan(&rev.RevealedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrConflict
		}
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) ListHistory(ctx context.Context, coupleID, viewerID string) ([]models.CheckpointHistoryItem, error) {
	query := `
		SELECT r.id, r.couple_id, r.config_id, r.entry_id, r.viewer_id, r.reveal_date, r.revealed_at,
			e.title, e.entry_date, e.author_id, COALESCE(c.label, '')
		FROM checkpoint_reveals r
		JOIN entries e ON e.id = r.entry_id
		LEFT JOIN checkpoint_configs c ON c.id = r.config_id
		WHERE r.couple_id = $1 AND r.viewer_id = $2
		ORDER BY r.reveal_date DESC, r.revealed_at DESC, r.id`

	rows, err := r.db.QueryContext(ctx, query, coupleID, viewerID)
	if err != nil {
		return nil, fmt.Errorf("failed to select checkpoint history: %w", err)
	}
	defer rows.Close()

	var result []models.CheckpointHistoryItem
	for rows.Next() {
		var (
			item     models.CheckpointHistoryItem
			configID sql.NullString
		)
		if err := rows.Scan(
			&item.ID, &item.CoupleID, &configID, &item.EntryID, &item.ViewerID, &item.RevealDate, &item.RevealedAt,
			&item.EntryTitle, &item.EntryDate, &item.AuthorID, &item.ConfigLabel,
		); err != nil {
			return nil, err
		}
		if configID.Valid {
			item.ConfigID = &configID.String
		}
		result = append(result, item)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) CountUnrevealed(ctx context.Context, coupleID, authorID, viewerID string) (int, error) {
	query := `SELECT COUNT(*) FROM entries e WHERE` + eligibleCondition

	var n int
	if err := r.db.QueryRowContext(ctx, query, coupleID, authorID, viewerID).Scan(&n); err != nil {
		return 0, fmt.Errorf("db error: %w", err)
	}
	return n, nil
}
