package checkpointconfigs

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrijs2005/duetdiary/internal/common"
	"github.com/dmitrijs2005/duetdiary/internal/dbx"
	"github.com/dmitrijs2005/duetdiary/internal/server/models"
	"github.com/dmitrijs2005/duetdiary/internal/timex"
)

// Months travel as a comma separated string so the query stays driver
// agnostic; the SQL converts to and from SMALLINT[].
const configColumns = `id, couple_id, frequency, day_of_month,
	COALESCE(array_to_string(months, ','), ''), specific_date, label, is_active, created_at`

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) ListByCouple(ctx context.Context, coupleID string) ([]models.CheckpointConfig, error) {
	query := `SELECT ` + configColumns + `
		FROM checkpoint_configs
		WHERE couple_id = $1
		ORDER BY created_at, id`

	rows, err := r.db.QueryContext(ctx, query, coupleID)
	if err != nil {
		return nil, fmt.Errorf("failed to select checkpoint configs: %w", err)
	}
	defer rows.Close()

	var result []models.CheckpointConfig
	for rows.Next() {
		cfg, err := scanConfig(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *cfg)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *PostgresRepository) Get(ctx context.Context, coupleID, id string) (*models.CheckpointConfig, error) {
	query := `SELECT ` + configColumns + ` FROM checkpoint_configs WHERE couple_id = $1 AND id = $2`

	cfg, err := scanConfig(r.db.QueryRowContext(ctx, query, coupleID, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	return cfg, nil
}

func (r *PostgresRepository) Create(ctx context.Context, cfg *models.CheckpointConfig) error {
	query := `
		INSERT INTO checkpoint_configs (id, couple_id, frequency, day_of_month, months, specific_date, label, is_active)
		VALUES ($1, $2, $3, $4, string_to_array(NULLIF($5, ''), ',')::smallint[], $6, $7, $8)
		RETURNING created_at`

	err := r.db.QueryRowContext(ctx, query, configArgs(cfg)...).Scan(&cfg.CreatedAt)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	return nil
}

func (r *PostgresRepository) Update(ctx context.Context, cfg *models.CheckpointConfig) error {
	query := `
		UPDATE checkpoint_configs
		SET frequency = $3, day_of_month = $4, months = string_to_array(NULLIF($5, ''), ',')::smallint[],
			specific_date = $6, label = $7, is_active = $8
		WHERE id = $1 AND couple_id = $2`

	res, err := r.db.ExecContext(ctx, query, configArgs(cfg)...)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func (r *PostgresRepository) Delete(ctx context.Context, coupleID, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM checkpoint_configs WHERE couple_id = $1 AND id = $2`, coupleID, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

func configArgs(cfg *models.CheckpointConfig) []any {
	var day any
	if cfg.DayOfMonth != nil {
		day = int64(*cfg.DayOfMonth)
	}
	var specific any
	if cfg.SpecificDate != nil {
		specific = cfg.SpecificDate.Time()
	}
	return []any{cfg.ID, cfg.CoupleID, string(cfg.Frequency), day, FormatMonths(cfg.Months), specific, cfg.Label, cfg.IsActive}
}

type scanner interface {
	Scan(dest ...any) error
}

func scanConfig(s scanner) (*models.CheckpointConfig, error) {
	var (
		cfg       models.CheckpointConfig
		frequency string
		day       sql.NullInt64
		months    string
		specific  sql.Null[timex.Date]
		createdAt time.Time
	)
	if err := s.Scan(&cfg.ID, &cfg.CoupleID, &frequency, &day, &months, &specific, &cfg.Label, &cfg.IsActive, &createdAt); err != nil {
		return nil, err
	}
	cfg.Frequency = models.Frequency(frequency)
	if day.Valid {
		d := int(day.Int64)
		cfg.DayOfMonth = &d
	}
	parsed, err := ParseMonths(months)
	if err != nil {
		return nil, err
	}
	cfg.Months = parsed
	if specific.Valid {
		d := specific.V
		cfg.SpecificDate = &d
	}
	cfg.CreatedAt = createdAt
	return &cfg, nil
}

// FormatMonths renders months as "1,4,7,10"; nil or empty gives "".
func FormatMonths(months []time.Month) string {
	parts := make([]string, len(months))
	for i, m := range months {
		parts[i] = strconv.Itoa(int(m))
	}
	return strings.Join(parts, ",")
}

// ParseMonths is the inverse of FormatMonths.
func ParseMonths(s string) ([]time.Month, error) {
	if s == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	months := make([]time.Month, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 1 || n > 12 {
			return nil, fmt.Errorf("invalid month %q", p)
		}
		months = append(months, time.Month(n))
	}
	return months, nil
}
