package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/duetdiary/internal/common"
	"github.com/dmitrijs2005/duetdiary/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePresigner struct {
	err error
}

func (p *fakePresigner) PresignGet(ctx context.Context, key string) (string, error) {
	if p.err != nil {
		return "", p.err
	}
	return "https://media.example/" + key + "?sig=1", nil
}

func newCheckpointFixture(t *testing.T, now string) (*CheckpointService, *store, sqlmock.Sqlmock) {
	t.Helper()
	db, mock := newSQLMockDB(t)
	s := newStore()
	s.couples["c1"] = &models.Couple{ID: "c1", PartnerA: "a", PartnerB: "b", AnniversaryDate: datePtr("2020-06-15")}
	s.entries = []models.Entry{
		publishedEntry("a1", "a", "2024-01-10", 100),
		publishedEntry("a2", "a", "2024-02-11", 200),
		publishedEntry("a3", "a", "2024-03-12", 300),
		{ID: "a4", CoupleID: "c1", AuthorID: "a", Status: models.EntryDraft, Date: date("2024-04-01")},
		publishedEntry("b1", "b", "2024-01-15", 50),
	}

	svc := NewCheckpointService(db, &fakeRepoManager{s: s}, nil, time.UTC, discardLogger())
	svc.now = fixedNow(now)
	svc.pick = func(n int) int { return 0 }
	return svc, s, mock
}

func TestGetCheckpointEntry_IdempotentWithinDay(t *testing.T) {
	svc, s, mock := newCheckpointFixture(t, "2024-06-15T08:00:00Z")
	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectCommit()

	first, err := svc.GetCheckpointEntry(context.Background(), "c1", "b", nil)
	require.NoError(t, err)
	require.NotNil(t, first.Entry)
	assert.False(t, first.AlreadyRevealed)
	assert.Equal(t, "a", first.Entry.AuthorID)

	svc.pick = func(n int) int { return n - 1 }
	second, err := svc.GetCheckpointEntry(context.Background(), "c1", "b", nil)
	require.NoError(t, err)
	assert.True(t, second.AlreadyRevealed)
	assert.Equal(t, first.Entry.ID, second.Entry.ID)

	assert.Len(t, s.reveals, 1)
	assert.Equal(t, date("2024-06-15"), s.reveals[0].RevealDate)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCheckpointEntry_NeverRepeatsThenExhausts(t *testing.T) {
	svc, s, mock := newCheckpointFixture(t, "2024-06-01T08:00:00Z")

	seen := map[string]bool{}
	for day := 1; day <= 3; day++ {
		svc.now = fixedNow(time.Date(2024, time.June, day, 8, 0, 0, 0, time.UTC).Format(time.RFC3339))
		mock.ExpectBegin()
		mock.ExpectCommit()

		res, err := svc.GetCheckpointEntry(context.Background(), "c1", "b", nil)
		require.NoError(t, err)
		require.NotNil(t, res.Entry, "day %d", day)
		assert.False(t, seen[res.Entry.ID], "entry %s repeated", res.Entry.ID)
		seen[res.Entry.ID] = true

		left, err := svc.GetUnrevealedCount(context.Background(), "c1", "b")
		require.NoError(t, err)
		assert.Equal(t, 3-day, left)
	}

	svc.now = fixedNow("2024-06-04T08:00:00Z")
	mock.ExpectBegin()
	mock.ExpectCommit()

	res, err := svc.GetCheckpointEntry(context.Background(), "c1", "b", nil)
	require.NoError(t, err)
	assert.True(t, res.NoEntriesRemaining)
	assert.Nil(t, res.Entry)
	assert.Len(t, s.reveals, 3)
	assert.Equal(t, map[string]bool{"a1": true, "a2": true, "a3": true}, seen)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCheckpointEntry_ViewersAreIndependent(t *testing.T) {
	svc, s, mock := newCheckpointFixture(t, "2024-06-15T08:00:00Z")
	mock.ExpectBegin()
	mock.ExpectCommit()
	mock.ExpectBegin()
	mock.ExpectCommit()

	forB, err := svc.GetCheckpointEntry(context.Background(), "c1", "b", nil)
	require.NoError(t, err)
	forA, err := svc.GetCheckpointEntry(context.Background(), "c1", "a", nil)
	require.NoError(t, err)

	assert.Equal(t, "a", forB.Entry.AuthorID)
	assert.Equal(t, "b1", forA.Entry.ID)
	assert.Len(t, s.reveals, 2)
}

func TestGetCheckpointEntry_NotAMember(t *testing.T) {
	svc, s, mock := newCheckpointFixture(t, "2024-06-15T08:00:00Z")

	_, err := svc.GetCheckpointEntry(context.Background(), "c1", "stranger", nil)
	assert.ErrorIs(t, err, common.ErrNotAMember)
	assert.Empty(t, s.reveals)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCheckpointEntry_UnknownConfig(t *testing.T) {
	svc, _, _ := newCheckpointFixture(t, "2024-06-15T08:00:00Z")
	missing := "k-missing"

	_, err := svc.GetCheckpointEntry(context.Background(), "c1", "b", &missing)
	assert.ErrorIs(t, err, common.ErrorNotFound)
}

func TestGetCheckpointEntry_RecordsConfig(t *testing.T) {
	svc, s, mock := newCheckpointFixture(t, "2024-06-15T08:00:00Z")
	s.configs = []models.CheckpointConfig{{ID: "k1", CoupleID: "c1", Frequency: models.FrequencyMonthly, DayOfMonth: intPtr(15), IsActive: true}}
	mock.ExpectBegin()
	mock.ExpectCommit()

	configID := "k1"
	res, err := svc.GetCheckpointEntry(context.Background(), "c1", "b", &configID)
	require.NoError(t, err)
	require.NotNil(t, res.Reveal.ConfigID)
	assert.Equal(t, "k1", *res.Reveal.ConfigID)
}

func TestGetCheckpointEntry_LosesRaceReturnsWinner(t *testing.T) {
	svc, s, mock := newCheckpointFixture(t, "2024-06-15T08:00:00Z")
	s.beforeInsert = func(r *models.CheckpointReveal) {
		s.beforeInsert = nil
		s.reveals = append(s.reveals, models.CheckpointReveal{
			ID: "winner", CoupleID: "c1", EntryID: "a3", ViewerID: "b", RevealDate: r.RevealDate,
		})
	}
	mock.ExpectBegin()
	mock.ExpectCommit()

	res, err := svc.GetCheckpointEntry(context.Background(), "c1", "b", nil)
	require.NoError(t, err)
	assert.True(t, res.AlreadyRevealed)
	assert.Equal(t, "a3", res.Entry.ID)
	assert.Equal(t, "winner", res.Reveal.ID)
	assert.Len(t, s.reveals, 1)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCheckpointEntry_GivesUpAfterRepeatedConflicts(t *testing.T) {
	svc, s, mock := newCheckpointFixture(t, "2024-06-15T08:00:00Z")
	s.beforeInsert = func(r *models.CheckpointReveal) {
		s.reveals = append(s.reveals, models.CheckpointReveal{
			ID: "other-" + r.EntryID, CoupleID: "c1", EntryID: r.EntryID, ViewerID: "b", RevealDate: date("2024-06-14"),
		})
	}
	mock.ExpectBegin()
	mock.ExpectRollback()

	_, err := svc.GetCheckpointEntry(context.Background(), "c1", "b", nil)
	assert.ErrorIs(t, err, common.ErrConflict)
	assert.Equal(t, maxDrawAttempts, s.inserts)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetCheckpointEntry_MediaLinks(t *testing.T) {
	svc, s, mock := newCheckpointFixture(t, "2024-06-15T08:00:00Z")
	s.media = []models.Media{
		{ID: "m1", EntryID: "a1", Kind: models.MediaImage, StorageKey: "couples/c1/m1.jpg"},
		{ID: "m2", EntryID: "a2", Kind: models.MediaVideo, StorageKey: "couples/c1/m2.mp4"},
	}
	svc.presigner = &fakePresigner{}
	mock.ExpectBegin()
	mock.ExpectCommit()

	res, err := svc.GetCheckpointEntry(context.Background(), "c1", "b", nil)
	require.NoError(t, err)
	require.Equal(t, "a1", res.Entry.ID)
	assert.Equal(t, []models.MediaLink{
		{MediaID: "m1", Kind: models.MediaImage, URL: "https://media.example/couples/c1/m1.jpg?sig=1"},
	}, res.Media)
}

func TestGetCheckpointEntry_MediaWithoutStorage(t *testing.T) {
	svc, s, mock := newCheckpointFixture(t, "2024-06-15T08:00:00Z")
	s.media = []models.Media{{ID: "m1", EntryID: "a1", Kind: models.MediaImage, StorageKey: "k"}}
	mock.ExpectBegin()
	mock.ExpectCommit()

	res, err := svc.GetCheckpointEntry(context.Background(), "c1", "b", nil)
	require.NoError(t, err)
	require.Len(t, res.Media, 1)
	assert.Empty(t, res.Media[0].URL)
}

func TestGetCheckpointEntry_PresignError(t *testing.T) {
	svc, s, mock := newCheckpointFixture(t, "2024-06-15T08:00:00Z")
	s.media = []models.Media{{ID: "m1", EntryID: "a1", Kind: models.MediaImage, StorageKey: "k"}}
	svc.presigner = &fakePresigner{err: errors.New("no creds")}
	mock.ExpectBegin()
	mock.ExpectCommit()

	_, err := svc.GetCheckpointEntry(context.Background(), "c1", "b", nil)
	assert.ErrorContains(t, err, "no creds")
	assert.Len(t, s.reveals, 1)
}

func TestGetCheckpointHistory(t *testing.T) {
	svc, s, _ := newCheckpointFixture(t, "2024-06-15T08:00:00Z")
	s.reveals = []models.CheckpointReveal{
		{ID: "r1", CoupleID: "c1", EntryID: "a1", ViewerID: "b", RevealDate: date("2024-05-15")},
		{ID: "r2", CoupleID: "c1", EntryID: "b1", ViewerID: "a", RevealDate: date("2024-05-15")},
	}

	items, err := svc.GetCheckpointHistory(context.Background(), "c1", "b")
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "r1", items[0].ID)

	_, err = svc.GetCheckpointHistory(context.Background(), "c1", "stranger")
	assert.ErrorIs(t, err, common.ErrNotAMember)
}

func TestIsCheckpointDay(t *testing.T) {
	svc, s, _ := newCheckpointFixture(t, "2024-06-15T08:00:00Z")
	s.configs = []models.CheckpointConfig{
		{ID: "k1", CoupleID: "c1", Frequency: models.FrequencyMonthly, DayOfMonth: intPtr(15), IsActive: true},
		{ID: "k2", CoupleID: "c1", Frequency: models.FrequencySpecificDate, SpecificDate: datePtr("2024-06-15"), IsActive: false},
		{ID: "k3", CoupleID: "c1", Frequency: models.FrequencyQuarterly, DayOfMonth: intPtr(15), IsActive: true},
	}

	day, err := svc.IsCheckpointDay(context.Background(), "c1")
	require.NoError(t, err)
	assert.True(t, day.Matched)
	assert.Equal(t, date("2024-06-15"), day.Date)
	require.Len(t, day.Configs, 1)
	assert.Equal(t, "k1", day.Configs[0].ID)

	svc.now = fixedNow("2024-06-16T08:00:00Z")
	day, err = svc.IsCheckpointDay(context.Background(), "c1")
	require.NoError(t, err)
	assert.False(t, day.Matched)
	assert.Empty(t, day.Configs)
}

func TestNextCheckpointDate(t *testing.T) {
	svc, s, _ := newCheckpointFixture(t, "2024-06-20T08:00:00Z")

	_, ok, err := svc.NextCheckpointDate(context.Background(), "c1")
	require.NoError(t, err)
	assert.False(t, ok)

	s.configs = []models.CheckpointConfig{
		{ID: "k1", CoupleID: "c1", Frequency: models.FrequencyMonthly, DayOfMonth: intPtr(15), IsActive: true},
	}
	next, ok, err := svc.NextCheckpointDate(context.Background(), "c1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, date("2024-07-15"), next)

	s.configs = append(s.configs, models.CheckpointConfig{
		ID: "k2", CoupleID: "c1", Frequency: models.FrequencySpecificDate, SpecificDate: datePtr("2021-06-25"), IsActive: true,
	})
	next, ok, err = svc.NextCheckpointDate(context.Background(), "c1")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, date("2024-06-25"), next)
}

func TestSaveConfig(t *testing.T) {
	svc, s, _ := newCheckpointFixture(t, "2024-06-15T08:00:00Z")

	_, err := svc.SaveConfig(context.Background(), "c1", models.CheckpointConfig{Frequency: models.FrequencyMonthly, DayOfMonth: intPtr(31)})
	assert.ErrorIs(t, err, common.ErrInvalidArgument)
	assert.Empty(t, s.configs)

	created, err := svc.SaveConfig(context.Background(), "c1", models.CheckpointConfig{
		Frequency: models.FrequencySemiAnnual, DayOfMonth: intPtr(1), Label: "Halves", IsActive: true,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, "c1", created.CoupleID)
	require.Len(t, s.configs, 1)

	created.Label = "Half-years"
	created.IsActive = false
	updated, err := svc.SaveConfig(context.Background(), "c1", *created)
	require.NoError(t, err)
	assert.Equal(t, "Half-years", updated.Label)
	assert.False(t, updated.IsActive)
	require.Len(t, s.configs, 1)

	_, err = svc.SaveConfig(context.Background(), "c1", models.CheckpointConfig{ID: "missing", Frequency: models.FrequencyMonthly, DayOfMonth: intPtr(2)})
	assert.ErrorIs(t, err, common.ErrorNotFound)

	list, err := svc.ListConfigs(context.Background(), "c1")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	require.NoError(t, svc.DeleteConfig(context.Background(), "c1", created.ID))
	assert.ErrorIs(t, svc.DeleteConfig(context.Background(), "c1", created.ID), common.ErrorNotFound)
}
