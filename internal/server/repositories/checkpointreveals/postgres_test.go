package checkpointreveals

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/duetdiary/internal/common"
	"github.com/dmitrijs2005/duetdiary/internal/server/models"
	"github.com/dmitrijs2005/duetdiary/internal/timex"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	return NewPostgresRepository(db), mock, db
}

var (
	today      = timex.Date{Year: 2024, Month: time.June, Day: 15}
	revealedAt = time.Date(2024, time.June, 15, 9, 30, 0, 0, time.UTC)
)

func TestFindForDay(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM checkpoint_reveals WHERE couple_id = \$1 AND viewer_id = \$2 AND reveal_date = \$3`).
		WithArgs("c1", "b", today.Time()).
		WillReturnRows(sqlmock.NewRows([]string{"id", "couple_id", "config_id", "entry_id", "viewer_id", "reveal_date", "revealed_at"}).
			AddRow("r1", "c1", "k1", "e1", "b", today.Time(), revealedAt))

	got, err := repo.FindForDay(context.Background(), "c1", "b", today)
	require.NoError(t, err)
	assert.Equal(t, "e1", got.EntryID)
	require.NotNil(t, got.ConfigID)
	assert.Equal(t, "k1", *got.ConfigID)
	assert.Equal(t, today, got.RevealDate)
}

func TestFindForDay_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`FROM checkpoint_reveals`).WillReturnError(sql.ErrNoRows)

	_, err := repo.FindForDay(context.Background(), "c1", "b", today)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestListEligibleEntryIDs(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT e.id FROM entries e WHERE e.couple_id = \$1 AND e.author_id = \$2 AND e.status = 'published' AND NOT EXISTS .* ORDER BY e.id`).
		WithArgs("c1", "a", "b").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("e1").AddRow("e3"))

	ids, err := repo.ListEligibleEntryIDs(context.Background(), "c1", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, []string{"e1", "e3"}, ids)
}

func TestListEligibleEntryIDs_Empty(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT e.id FROM entries e`).WillReturnRows(sqlmock.NewRows([]string{"id"}))

	ids, err := repo.ListEligibleEntryIDs(context.Background(), "c1", "a", "b")
	require.NoError(t, err)
	assert.Empty(t, ids)
}

func TestInsert(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rev := &models.CheckpointReveal{ID: "r1", CoupleID: "c1", EntryID: "e1", ViewerID: "b", RevealDate: today}
	mock.ExpectQuery(`INSERT INTO checkpoint_reveals .* ON CONFLICT DO NOTHING RETURNING revealed_at`).
		WithArgs("r1", "c1", nil, "e1", "b", today.Time()).
		WillReturnRows(sqlmock.NewRows([]string{"revealed_at"}).AddRow(revealedAt))

	require.NoError(t, repo.Insert(context.Background(), rev))
	assert.Equal(t, revealedAt, rev.RevealedAt)
}

func TestInsert_Conflict(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	configID := "k1"
	rev := &models.CheckpointReveal{ID: "r1", CoupleID: "c1", ConfigID: &configID, EntryID: "e1", ViewerID: "b", RevealDate: today}
	mock.ExpectQuery(`INSERT INTO checkpoint_reveals`).
		WithArgs("r1", "c1", "k1", "e1", "b", today.Time()).
		WillReturnRows(sqlmock.NewRows([]string{"revealed_at"}))

	assert.ErrorIs(t, repo.Insert(context.Background(), rev), common.ErrConflict)
}

func TestInsert_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`INSERT INTO checkpoint_reveals`).WillReturnError(errors.New("boom"))

	err := repo.Insert(context.Background(), &models.CheckpointReveal{RevealDate: today})
	assert.ErrorContains(t, err, "db error")
	assert.NotErrorIs(t, err, common.ErrConflict)
}

func TestListHistory(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	entryDate := time.Date(2024, time.March, 2, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`FROM checkpoint_reveals r JOIN entries e ON e.id = r.entry_id LEFT JOIN checkpoint_configs c .* ORDER BY r.reveal_date DESC`).
		WithArgs("c1", "b").
		WillReturnRows(sqlmock.NewRows([]string{"id", "couple_id", "config_id", "entry_id", "viewer_id", "reveal_date", "revealed_at", "title", "entry_date", "author_id", "label"}).
			AddRow("r2", "c1", nil, "e2", "b", today.Time(), revealedAt, "Rain", entryDate, "a", "").
			AddRow("r1", "c1", "k1", "e1", "b", today.AddDays(-30).Time(), revealedAt, "Sun", entryDate, "a", "Monthly"))

	items, err := repo.ListHistory(context.Background(), "c1", "b")
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Nil(t, items[0].ConfigID)
	assert.Equal(t, "Rain", items[0].EntryTitle)
	assert.Equal(t, "Monthly", items[1].ConfigLabel)
	assert.Equal(t, timex.Date{Year: 2024, Month: time.March, Day: 2}, items[1].EntryDate)
}

func TestCountUnrevealed(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT COUNT\(\*\) FROM entries e WHERE`).
		WithArgs("c1", "a", "b").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(7)))

	n, err := repo.CountUnrevealed(context.Background(), "c1", "a", "b")
	require.NoError(t, err)
	assert.Equal(t, 7, n)
}
