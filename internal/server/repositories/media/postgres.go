package media

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/duetdiary/internal/dbx"
	"github.com/dmitrijs2005/duetdiary/internal/server/models"
	"github.com/dmitrijs2005/duetdiary/internal/server/repositories/entries"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) CountByType(ctx context.Context, filter models.EntryFilter) (models.MediaCounts, error) {
	query := `
		SELECT m.kind, COUNT(*)
		FROM entry_media m
		JOIN entries e ON e.id = m.entry_id
		WHERE e.couple_id = $1 AND e.status = 'published'
			AND ($2::date IS NULL OR e.entry_date >= $2)
			AND ($3::date IS NULL OR e.entry_date <= $3)
		GROUP BY m.kind`

	var counts models.MediaCounts

	rows, err := r.db.QueryContext(ctx, query, filter.CoupleID, entries.DateArg(filter.From), entries.DateArg(filter.To))
	if err != nil {
		return counts, fmt.Errorf("failed to count media: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var (
			kind string
			n    int
		)
		if err := rows.Scan(&kind, &n); err != nil {
			return counts, err
		}
		switch models.MediaKind(kind) {
		case models.MediaImage:
			counts.Images += n
		case models.MediaVideo:
			counts.Videos += n
		}
	}
	if err := rows.Err(); err != nil {
		return models.MediaCounts{}, err
	}
	return counts, nil
}

func (r *PostgresRepository) ListByEntry(ctx context.Context, entryID string) ([]models.Media, error) {
	query := `
		SELECT id, entry_id, kind, storage_key
		FROM entry_media
		WHERE entry_id = $1
		ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, entryID)
	if err != nil {
		return nil, fmt.Errorf("failed to select media: %w", err)
	}
	defer rows.Close()

	var result []models.Media
	for rows.Next() {
		var (
			m    models.Media
			kind string
		)
		if err := rows.Scan(&m.ID, &m.EntryID, &kind, &m.StorageKey); err != nil {
			return nil, err
		}
		m.Kind = models.MediaKind(kind)
		result = append(result, m)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
