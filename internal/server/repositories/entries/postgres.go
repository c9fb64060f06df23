package entries

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

const entryColumns = `id, couple_id, author_id, status, entry_date, title, body, word_count,
	COALESCE(mood, ''), latitude, longitude, COALESCE(location_name, ''), created_at`

// PostgresRepository implements entry reads over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListPublished(ctx context.Context, filter models.EntryFilter) ([]models.Entry, error) {
	query := `SELECT ` + entryColumns + `
		FROM entries
		WHERE couple_id = $1 AND status = 'published'
			AND ($2::text = '' OR author_id = $2)
			AND ($3::date IS NULL OR entry_date >= $3)
			AND ($4::date IS NULL OR entry_date <= $4)
		ORDER BY entry_date, created_at, id`

	rows, err := r.db.QueryContext(ctx, query, filter.CoupleID, filter.AuthorID, DateArg(filter.From), DateArg(filter.To))
	if err != nil {
		return nil, fmt.Errorf("failed to select entries: %w", err)
	}
	defer rows.Close()

	var result []models.Entry
	for rows.Next() {
		e, err := scanEntry(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*models.Entry, error) {
	query := `SELECT ` + entryColumns + ` FROM entries WHERE id = $1`

	e, err := scanEntry(r.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return e, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanEntry(s scanner) (*models.Entry, error) {
	var (
		e        models.Entry
		status   string
		lat, lon sql.NullFloat64
	)
	if err := s.Scan(
		&e.ID, &e.CoupleID, &e.AuthorID, &status, &e.Date, &e.Title, &e.Body, &e.WordCount,
		&e.Mood, &lat, &lon, &e.LocationName, &e.CreatedAt,
	); err != nil {
		return nil, err
	}
	e.Status = models.EntryStatus(status)
	if lat.Valid {
		e.Latitude = &lat.Float64
	}
	if lon.Valid {
		e.Longitude = &lon.Float64
	}
	return &e, nil
}

// DateArg converts an optional date into a query argument, nil meaning NULL.
func DateArg(d *timex.Date) any {
	if d == nil {
		return nil
	}
	return d.Time()
}
