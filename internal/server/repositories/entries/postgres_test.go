package entries

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/duetdiary/internal/common"
	"github.com/dmitrijs2005/duetdiary/internal/server/models"
	"github.com/dmitrijs2005/duetdiary/internal/timex"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

var columns = []string{
	"id", "couple_id", "author_id", "status", "entry_date", "title", "body", "word_count",
	"mood", "latitude", "longitude", "location_name", "created_at",
}

const listQuery = `FROM entries WHERE couple_id = \$1 AND status = 'published' AND \(\$2::text = '' OR author_id = \$2\)`

func TestListPublished_YearFilter(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	day := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	created := time.Date(2024, time.June, 1, 21, 30, 0, 0, time.UTC)
	rows := sqlmock.NewRows(columns).
		AddRow("e1", "c1", "alice", "published", day, "t1", "b1", int64(42), "happy", 56.95, 24.1, "Riga", created).
		AddRow("e2", "c1", "bob", "published", day, "t2", "b2", int64(3), "", nil, nil, "", created)

	year := 2024
	mock.ExpectQuery(listQuery).
		WithArgs("c1", "", time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, time.December, 31, 0, 0, 0, 0, time.UTC)).
		WillReturnRows(rows)

	got, err := repo.ListPublished(context.Background(), models.YearFilter("c1", &year))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 rows, got %d", len(got))
	}
	first := got[0]
	if first.Date != (timex.Date{Year: 2024, Month: time.June, Day: 1}) || first.WordCount != 42 || first.Mood != "happy" {
		t.Fatalf("unexpected first entry: %+v", first)
	}
	if !first.HasLocation() || *first.Latitude != 56.95 || first.LocationName != "Riga" {
		t.Fatalf("unexpected location: %+v", first)
	}
	if got[1].HasLocation() {
		t.Fatalf("second entry must not have a location: %+v", got[1])
	}
	if first.Status != models.EntryPublished {
		t.Fatalf("unexpected status %q", first.Status)
	}
}

func TestListPublished_AuthorAllTime(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(listQuery).
		WithArgs("c1", "bob", nil, nil).
		WillReturnRows(sqlmock.NewRows(columns))

	got, err := repo.ListPublished(context.Background(), models.EntryFilter{CoupleID: "c1", AuthorID: "bob"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("want empty result, got %d", len(got))
	}
}

func TestListPublished_QueryError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(listQuery).WillReturnError(errors.New("db err"))

	_, err := repo.ListPublished(context.Background(), models.EntryFilter{CoupleID: "c1"})
	if err == nil || !regexp.MustCompile(`failed to select entries: .*db err`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped select error, got %v", err)
	}
}

func TestListPublished_RowsErr(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	day := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(columns).
		AddRow("e1", "c1", "alice", "published", day, "", "", int64(1), "", nil, nil, "", day).
		AddRow("e2", "c1", "alice", "published", day, "", "", int64(1), "", nil, nil, "", day).
		RowError(1, errors.New("row-err"))
	mock.ExpectQuery(listQuery).WillReturnRows(rows)

	_, err := repo.ListPublished(context.Background(), models.EntryFilter{CoupleID: "c1"})
	if err == nil || err.Error() != "row-err" {
		t.Fatalf("expected rows.Err 'row-err', got %v", err)
	}
}

func TestGetByID(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	day := time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`FROM entries WHERE id = \$1$`).
		WithArgs("e1").
		WillReturnRows(sqlmock.NewRows(columns).AddRow("e1", "c1", "alice", "draft", day, "t", "b", int64(2), "", nil, nil, "", day))

	e, err := repo.GetByID(context.Background(), "e1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if e.ID != "e1" || e.Status != models.EntryDraft {
		t.Fatalf("unexpected entry: %+v", e)
	}

	mock.ExpectQuery(`FROM entries WHERE id = \$1$`).WithArgs("nope").WillReturnError(sql.ErrNoRows)
	if _, err := repo.GetByID(context.Background(), "nope"); !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("want ErrorNotFound, got %v", err)
	}
}
