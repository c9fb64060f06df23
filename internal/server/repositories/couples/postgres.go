package couples

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

const selectCouple = `
	SELECT id, partner_a, partner_b, anniversary_date, is_revealed, last_reveal_year
	FROM couples
	WHERE id = $1`

// PostgresRepository implements couple storage over a dbx.DBTX (*sql.DB or *sql.Tx).
type PostgresRepository struct {
	db dbx.DBTX
}

// NewPostgresRepository constructs a repository bound to the given DBTX.
func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Get(ctx context.Context, id string) (*models.Couple, error) {
	return r.get(ctx, selectCouple, id)
}

func (r *PostgresRepository) GetForUpdate(ctx context.Context, id string) (*models.Couple, error) {
	return r.get(ctx, selectCouple+" FOR UPDATE", id)
}

func (r *PostgresRepository) get(ctx context.Context, query string, id string) (*models.Couple, error) {
	var (
		c           models.Couple
		anniversary sql.Null[timex.Date]
		lastYear    sql.NullInt32
	)
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&c.ID, &c.PartnerA, &c.PartnerB, &anniversary, &c.IsRevealed, &lastYear,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}
	if anniversary.Valid {
		c.AnniversaryDate = &anniversary.V
	}
	if lastYear.Valid {
		y := int(lastYear.Int32)
		c.LastRevealYear = &y
	}
	return &c, nil
}

func (r *PostgresRepository) MarkRevealed(ctx context.Context, id string, year int) error {
	query := `
		UPDATE couples
		SET is_revealed = TRUE, last_reveal_year = $2
		WHERE id = $1 AND (last_reveal_year IS NULL OR last_reveal_year <= $2)`

	res, err := r.db.ExecContext(ctx, query, id, year)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected error: %w", err)
	}
	switch n {
	case 1:
		return nil
	case 0:
		return common.ErrStaleState
	default:
		return fmt.Errorf("unexpected rows affected: %d", n)
	}
}
