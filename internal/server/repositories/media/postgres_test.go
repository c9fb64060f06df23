package media

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/duetdiary/internal/server/models"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const countQuery = `SELECT m.kind, COUNT\(\*\) FROM entry_media m JOIN entries e ON e.id = m.entry_id WHERE e.couple_id = \$1 AND e.status = 'published'`

func TestCountByType(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	year := 2024
	mock.ExpectQuery(countQuery).
		WithArgs("c1", time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)).
		WillReturnRows(sqlmock.NewRows([]string{"kind", "count"}).
			AddRow("image", int64(4)).
			AddRow("video", int64(2)).
			AddRow("audio", int64(9)))

	got, err := repo.CountByType(context.Background(), models.YearFilter("c1", &year))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != (models.MediaCounts{Images: 4, Videos: 2}) {
		t.Fatalf("unexpected counts: %+v", got)
	}
}

func TestCountByType_AllTimeAndError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(countQuery).WithArgs("c1", nil, nil).WillReturnError(errors.New("boom"))

	_, err := repo.CountByType(context.Background(), models.EntryFilter{CoupleID: "c1"})
	if err == nil || !regexp.MustCompile(`failed to count media: .*boom`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestListByEntry(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(`SELECT id, entry_id, kind, storage_key FROM entry_media WHERE entry_id = \$1 ORDER BY created_at, id`).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "entry_id", "kind", "storage_key"}).
			AddRow("m1", "e1", "image", "couples/c1/m1.jpg").
			AddRow("m2", "e1", "video", "couples/c1/m2.mp4"))

	got, err := repo.ListByEntry(context.Background(), "e1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0].Kind != models.MediaImage || got[1].StorageKey != "couples/c1/m2.mp4" {
		t.Fatalf("unexpected media: %+v", got)
	}
}
