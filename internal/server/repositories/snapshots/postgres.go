package snapshots

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/duetdiary/internal/common"
	"github.com/dmitrijs2005/duetdiary/internal/dbx"
	"github.com/dmitrijs2005/duetdiary/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Upsert(ctx context.Context, s *models.RevealSnapshot) error {
	stats, err := json.Marshal(s.Stats)
	if err != nil {
		return fmt.Errorf("failed to encode stats: %w", err)
	}

	query := `
		INSERT INTO reveal_snapshots (id, couple_id, year, stats, revealed_at)
		VALUES ($1, $2, $3, $4::jsonb, $5)
		ON CONFLICT (couple_id, year) DO UPDATE
		SET stats = EXCLUDED.stats, revealed_at = EXCLUDED.revealed_at
		RETURNING id`

	if err := r.db.QueryRowContext(ctx, query, s.ID, s.CoupleID, s.Year, string(stats), s.RevealedAt).Scan(&s.ID); err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Get(ctx context.Context, coupleID string, year int) (*models.RevealSnapshot, error) {
	query := `
		SELECT id, couple_id, year, stats, revealed_at
		FROM reveal_snapshots
		WHERE couple_id = $1 AND year = $2`

	var (
		s     models.RevealSnapshot
		stats []byte
	)
	err := r.db.QueryRowContext(ctx, query, coupleID, year).Scan(&s.ID, &s.CoupleID, &s.Year, &stats, &s.RevealedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if err := json.Unmarshal(stats, &s.Stats); err != nil {
		return nil, fmt.Errorf("failed to decode stats: %w", err)
	}
	return &s, nil
}

func (r *PostgresRepository) ListYears(ctx context.Context, coupleID string) ([]models.RevealedYear, error) {
	query := `
		SELECT year, revealed_at
		FROM reveal_snapshots
		WHERE couple_id = $1
		ORDER BY year DESC`

	rows, err := r.db.QueryContext(ctx, query, coupleID)
	if err != nil {
		return nil, fmt.Errorf("failed to select revealed years: %w", err)
	}
	defer rows.Close()

	var result []models.RevealedYear
	for rows.Next() {
		var y models.RevealedYear
		if err := rows.Scan(&y.Year, &y.RevealedAt); err != nil {
			return nil, err
		}
		result = append(result, y)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}
