package services

import (
	"context"
	"database/sql"
	"io"
	"slices"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/duetdiary/internal/common"
	"github.com/dmitrijs2005/duetdiary/internal/dbx"
	"github.com/dmitrijs2005/duetdiary/internal/logging"
	"github.com/dmitrijs2005/duetdiary/internal/server/models"
	"github.com/dmitrijs2005/duetdiary/internal/server/repositories/checkpointconfigs"
	"github.com/dmitrijs2005/duetdiary/internal/server/repositories/checkpointreveals"
	"github.com/dmitrijs2005/duetdiary/internal/server/repositories/couples"
	"github.com/dmitrijs2005/duetdiary/internal/server/repositories/entries"
	"github.com/dmitrijs2005/duetdiary/internal/server/repositories/media"
	"github.com/dmitrijs2005/duetdiary/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/duetdiary/internal/server/repositories/snapshots"
	"github.com/dmitrijs2005/duetdiary/internal/timex"
)

// -------- in-memory store --------

// store backs every fake repository. Writes go straight in, so tests that
// need rollback behaviour assert on the sqlmock expectations instead.
type store struct {
	couples   map[string]*models.Couple
	entries   []models.Entry
	media     []models.Media
	configs   []models.CheckpointConfig
	reveals   []models.CheckpointReveal
	snapshots map[int]models.RevealSnapshot

	markErr   error
	upsertErr error

	// beforeInsert runs ahead of every reveal insert; tests use it to
	// simulate a concurrent request committing first.
	beforeInsert func(r *models.CheckpointReveal)
	inserts      int
}

func newStore() *store {
	return &store{couples: map[string]*models.Couple{}, snapshots: map[int]models.RevealSnapshot{}}
}

type fakeCouples struct {
	couples.Repository
	s *store
}

func (f *fakeCouples) Get(ctx context.Context, id string) (*models.Couple, error) {
	c, ok := f.s.couples[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *c
	return &cp, nil
}

func (f *fakeCouples) GetForUpdate(ctx context.Context, id string) (*models.Couple, error) {
	return f.Get(ctx, id)
}

func (f *fakeCouples) MarkRevealed(ctx context.Context, id string, year int) error {
	if f.s.markErr != nil {
		return f.s.markErr
	}
	c := f.s.couples[id]
	if c.LastRevealYear != nil && *c.LastRevealYear > year {
		return common.ErrStaleState
	}
	c.IsRevealed = true
	c.LastRevealYear = &year
	return nil
}

type fakeEntries struct {
	entries.Repository
	s *store
}

func (f *fakeEntries) ListPublished(ctx context.Context, filter models.EntryFilter) ([]models.Entry, error) {
	var out []models.Entry
	for _, e := range f.s.entries {
		if e.CoupleID != filter.CoupleID || e.Status != models.EntryPublished {
			continue
		}
		if filter.AuthorID != "" && e.AuthorID != filter.AuthorID {
			continue
		}
		if filter.From != nil && e.Date.Before(*filter.From) {
			continue
		}
		if filter.To != nil && e.Date.After(*filter.To) {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

func (f *fakeEntries) GetByID(ctx context.Context, id string) (*models.Entry, error) {
	for _, e := range f.s.entries {
		if e.ID == id {
			cp := e
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

type fakeMedia struct {
	media.Repository
	s *store
}

func (f *fakeMedia) CountByType(ctx context.Context, filter models.EntryFilter) (models.MediaCounts, error) {
	published, _ := (&fakeEntries{s: f.s}).ListPublished(ctx, filter)
	var counts models.MediaCounts
	for _, m := range f.s.media {
		if !slices.ContainsFunc(published, func(e models.Entry) bool { return e.ID == m.EntryID }) {
			continue
		}
		switch m.Kind {
		case models.MediaImage:
			counts.Images++
		case models.MediaVideo:
			counts.Videos++
		}
	}
	return counts, nil
}

func (f *fakeMedia) ListByEntry(ctx context.Context, entryID string) ([]models.Media, error) {
	var out []models.Media
	for _, m := range f.s.media {
		if m.EntryID == entryID {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeConfigs struct {
	checkpointconfigs.Repository
	s *store
}

func (f *fakeConfigs) ListByCouple(ctx context.Context, coupleID string) ([]models.CheckpointConfig, error) {
	var out []models.CheckpointConfig
	for _, c := range f.s.configs {
		if c.CoupleID == coupleID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (f *fakeConfigs) Get(ctx context.Context, coupleID, id string) (*models.CheckpointConfig, error) {
	for _, c := range f.s.configs {
		if c.CoupleID == coupleID && c.ID == id {
			cp := c
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeConfigs) Create(ctx context.Context, cfg *models.CheckpointConfig) error {
	f.s.configs = append(f.s.configs, *cfg)
	return nil
}

func (f *fakeConfigs) Update(ctx context.Context, cfg *models.CheckpointConfig) error {
	for i, c := range f.s.configs {
		if c.CoupleID == cfg.CoupleID && c.ID == cfg.ID {
			f.s.configs[i] = *cfg
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeConfigs) Delete(ctx context.Context, coupleID, id string) error {
	n := len(f.s.configs)
	f.s.configs = slices.DeleteFunc(f.s.configs, func(c models.CheckpointConfig) bool {
		return c.CoupleID == coupleID && c.ID == id
	})
	if len(f.s.configs) == n {
		return common.ErrorNotFound
	}
	return nil
}

type fakeReveals struct {
	checkpointreveals.Repository
	s *store
}

func (f *fakeReveals) FindForDay(ctx context.Context, coupleID, viewerID string, day timex.Date) (*models.CheckpointReveal, error) {
	for _, r := range f.s.reveals {
		if r.CoupleID == coupleID && r.ViewerID == viewerID && r.RevealDate == day {
			cp := r
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeReveals) seen(entryID, viewerID string) bool {
	return slices.ContainsFunc(f.s.reveals, func(r models.CheckpointReveal) bool {
		return r.EntryID == entryID && r.ViewerID == viewerID
	})
}

func (f *fakeReveals) ListEligibleEntryIDs(ctx context.Context, coupleID, authorID, viewerID string) ([]string, error) {
	var ids []string
	for _, e := range f.s.entries {
		if e.CoupleID == coupleID && e.AuthorID == authorID && e.Status == models.EntryPublished && !f.seen(e.ID, viewerID) {
			ids = append(ids, e.ID)
		}
	}
	slices.Sort(ids)
	return ids, nil
}

func (f *fakeReveals) Insert(ctx context.Context, r *models.CheckpointReveal) error {
	if f.s.beforeInsert != nil {
		f.s.beforeInsert(r)
	}
	f.s.inserts++
	if f.seen(r.EntryID, r.ViewerID) {
		return common.ErrConflict
	}
	if existing, _ := f.FindForDay(ctx, r.CoupleID, r.ViewerID, r.RevealDate); existing != nil {
		return common.ErrConflict
	}
	r.RevealedAt = time.Date(2024, 6, 15, 9, 0, 0, 0, time.UTC)
	f.s.reveals = append(f.s.reveals, *r)
	return nil
}

func (f *fakeReveals) ListHistory(ctx context.Context, coupleID, viewerID string) ([]models.CheckpointHistoryItem, error) {
	var out []models.CheckpointHistoryItem
	for _, r := range f.s.reveals {
		if r.CoupleID == coupleID && r.ViewerID == viewerID {
			out = append(out, models.CheckpointHistoryItem{CheckpointReveal: r})
		}
	}
	return out, nil
}

func (f *fakeReveals) CountUnrevealed(ctx context.Context, coupleID, authorID, viewerID string) (int, error) {
	ids, _ := f.ListEligibleEntryIDs(ctx, coupleID, authorID, viewerID)
	return len(ids), nil
}

type fakeSnapshots struct {
	snapshots.Repository
	s *store
}

func (f *fakeSnapshots) Upsert(ctx context.Context, snap *models.RevealSnapshot) error {
	if f.s.upsertErr != nil {
		return f.s.upsertErr
	}
	if existing, ok := f.s.snapshots[snap.Year]; ok {
		snap.ID = existing.ID
	}
	f.s.snapshots[snap.Year] = *snap
	return nil
}

func (f *fakeSnapshots) Get(ctx context.Context, coupleID string, year int) (*models.RevealSnapshot, error) {
	snap, ok := f.s.snapshots[year]
	if !ok || snap.CoupleID != coupleID {
		return nil, common.ErrorNotFound
	}
	return &snap, nil
}

func (f *fakeSnapshots) ListYears(ctx context.Context, coupleID string) ([]models.RevealedYear, error) {
	var out []models.RevealedYear
	for _, snap := range f.s.snapshots {
		if snap.CoupleID == coupleID {
			out = append(out, models.RevealedYear{Year: snap.Year, RevealedAt: snap.RevealedAt})
		}
	}
	slices.SortFunc(out, func(a, b models.RevealedYear) int { return b.Year - a.Year })
	return out, nil
}

type fakeRepoManager struct {
	repomanager.RepositoryManager
	s *store
}

func (m *fakeRepoManager) Couples(dbx.DBTX) couples.Repository { return &fakeCouples{s: m.s} }
func (m *fakeRepoManager) Entries(dbx.DBTX) entries.Repository { return &fakeEntries{s: m.s} }
func (m *fakeRepoManager) Media(dbx.DBTX) media.Repository     { return &fakeMedia{s: m.s} }
func (m *fakeRepoManager) CheckpointConfigs(dbx.DBTX) checkpointconfigs.Repository {
	return &fakeConfigs{s: m.s}
}
func (m *fakeRepoManager) CheckpointReveals(dbx.DBTX) checkpointreveals.Repository {
	return &fakeReveals{s: m.s}
}
func (m *fakeRepoManager) Snapshots(dbx.DBTX) snapshots.Repository { return &fakeSnapshots{s: m.s} }

// -------- helpers --------

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db, mock
}

func discardLogger() logging.Logger {
	return logging.NewJSONLogger(io.Discard, "debug")
}

func fixedNow(s string) func() time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t }
}

func date(s string) timex.Date {
	d, err := timex.ParseDate(s)
	if err != nil {
		panic(err)
	}
	return d
}

func datePtr(s string) *timex.Date {
	d := date(s)
	return &d
}

func intPtr(n int) *int { return &n }

func publishedEntry(id, author, day string, words int) models.Entry {
	return models.Entry{
		ID:        id,
		CoupleID:  "c1",
		AuthorID:  author,
		Status:    models.EntryPublished,
		Date:      date(day),
		WordCount: words,
		CreatedAt: date(day).Time().Add(10 * time.Hour),
	}
}
