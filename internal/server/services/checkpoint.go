package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/dmitrijs2005/duetdiary/internal/common"
	"github.com/dmitrijs2005/duetdiary/internal/dbx"
	"github.com/dmitrijs2005/duetdiary/internal/logging"
	"github.com/dmitrijs2005/duetdiary/internal/server/models"
	"github.com/dmitrijs2005/duetdiary/internal/server/recurrence"
	"github.com/dmitrijs2005/duetdiary/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/duetdiary/internal/server/storage"
	"github.com/dmitrijs2005/duetdiary/internal/timex"
	"github.com/google/uuid"
)

// maxDrawAttempts bounds how often a draw is retried after losing an insert
// race to a concurrent request for the same viewer.
const maxDrawAttempts = 3

// CheckpointDay lists the active configs that fire on Date.
type CheckpointDay struct {
	Date    timex.Date
	Matched bool
	Configs []models.CheckpointConfig
}

// CheckpointResult is the outcome of a checkpoint draw. Exactly one of
// Entry and NoEntriesRemaining is set.
type CheckpointResult struct {
	Entry              *models.Entry
	Reveal             *models.CheckpointReveal
	Media              []models.MediaLink
	AlreadyRevealed    bool
	NoEntriesRemaining bool
}

// CheckpointService picks single-entry sneak peeks between annual reveals.
type CheckpointService struct {
	clock
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	presigner   storage.Presigner
	logger      logging.Logger

	// pick returns a uniform index in [0, n).
	pick func(n int) int
}

// NewCheckpointService constructs the service. presigner may be nil, in
// which case media links carry no URL.
func NewCheckpointService(db *sql.DB, m repomanager.RepositoryManager, presigner storage.Presigner, loc *time.Location, logger logging.Logger) *CheckpointService {
	return &CheckpointService{
		clock:       newClock(loc),
		db:          db,
		repomanager: m,
		presigner:   presigner,
		logger:      logger.With("module", "checkpoint"),
		pick:        rand.IntN,
	}
}

func (s *CheckpointService) activeConfigs(ctx context.Context, coupleID string) ([]models.CheckpointConfig, error) {
	configs, err := s.repomanager.CheckpointConfigs(s.db).ListByCouple(ctx, coupleID)
	if err != nil {
		return nil, err
	}
	active := configs[:0]
	for _, c := range configs {
		if c.IsActive {
			active = append(active, c)
		}
	}
	return active, nil
}

func (s *CheckpointService) IsCheckpointDay(ctx context.Context, coupleID string) (CheckpointDay, error) {
	today := s.today()
	configs, err := s.activeConfigs(ctx, coupleID)
	if err != nil {
		return CheckpointDay{Date: today}, err
	}
	matched := recurrence.MatchingConfigs(configs, today)
	return CheckpointDay{Date: today, Matched: len(matched) > 0, Configs: matched}, nil
}

// NextCheckpointDate returns the soonest upcoming checkpoint, today included.
// ok is false when the couple has no usable config.
func (s *CheckpointService) NextCheckpointDate(ctx context.Context, coupleID string) (next timex.Date, ok bool, err error) {
	configs, err := s.activeConfigs(ctx, coupleID)
	if err != nil {
		return timex.Date{}, false, err
	}
	next, ok = recurrence.NextCheckpointDate(configs, s.today())
	return next, ok, nil
}

// GetCheckpointEntry discloses one entry written by the viewer's partner.
// Within a day the call is idempotent: the first committed receipt for
// (viewer, today) is returned on every retry. Entries already shown to the
// viewer are never drawn again.
func (s *CheckpointService) GetCheckpointEntry(ctx context.Context, coupleID, viewerID string, configID *string) (*CheckpointResult, error) {
	couple, err := ensureMember(ctx, s.repomanager.Couples(s.db), coupleID, viewerID)
	if err != nil {
		return nil, err
	}
	partner, _ := couple.PartnerOf(viewerID)

	if configID != nil {
		if _, err := s.repomanager.CheckpointConfigs(s.db).Get(ctx, coupleID, *configID); err != nil {
			return nil, err
		}
	}

	today := s.today()

	res, err := dbx.WithTxValue(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) (*CheckpointResult, error) {
		reveals := s.repomanager.CheckpointReveals(tx)
		entries := s.repomanager.Entries(tx)

		for attempt := 1; attempt <= maxDrawAttempts; attempt++ {
			existing, err := reveals.FindForDay(ctx, coupleID, viewerID, today)
			switch {
			case err == nil:
				e, err := entries.GetByID(ctx, existing.EntryID)
				if err != nil {
					return nil, err
				}
				return &CheckpointResult{Entry: e, Reveal: existing, AlreadyRevealed: true}, nil
			case !errors.Is(err, common.ErrorNotFound):
				return nil, err
			}

			ids, err := reveals.ListEligibleEntryIDs(ctx, coupleID, partner, viewerID)
			if err != nil {
				return nil, err
			}
			if len(ids) == 0 {
				return &CheckpointResult{NoEntriesRemaining: true}, nil
			}

			rev := &models.CheckpointReveal{
				ID:         uuid.NewString(),
				CoupleID:   coupleID,
				ConfigID:   configID,
				EntryID:    ids[s.pick(len(ids))],
				ViewerID:   viewerID,
				RevealDate: today,
			}
			err = reveals.Insert(ctx, rev)
			if errors.Is(err, common.ErrConflict) {
				s.logger.Debug(ctx, "checkpoint draw lost a race", "couple_id", coupleID, "viewer_id", viewerID, "attempt", attempt)
				continue
			}
			if err != nil {
				return nil, err
			}

			e, err := entries.GetByID(ctx, rev.EntryID)
			if err != nil {
				return nil, err
			}
			return &CheckpointResult{Entry: e, Reveal: rev}, nil
		}
		return nil, fmt.Errorf("%w: checkpoint draw did not settle after %d attempts", common.ErrConflict, maxDrawAttempts)
	})
	if err != nil {
		return nil, err
	}

	if res.Entry == nil {
		s.logger.Info(ctx, "no checkpoint entries remaining", "couple_id", coupleID, "viewer_id", viewerID)
		return res, nil
	}
	if !res.AlreadyRevealed {
		s.logger.Info(ctx, "checkpoint entry disclosed", "couple_id", coupleID, "viewer_id", viewerID, "entry_id", res.Entry.ID)
	}

	res.Media, err = s.mediaLinks(ctx, res.Entry.ID)
	if err != nil {
		return nil, err
	}
	return res, nil
}

func (s *CheckpointService) mediaLinks(ctx context.Context, entryID string) ([]models.MediaLink, error) {
	items, err := s.repomanager.Media(s.db).ListByEntry(ctx, entryID)
	if err != nil {
		return nil, err
	}

	links := make([]models.MediaLink, 0, len(items))
	for _, m := range items {
		link := models.MediaLink{MediaID: m.ID, Kind: m.Kind}
		if s.presigner != nil {
			link.URL, err = s.presigner.PresignGet(ctx, m.StorageKey)
			if err != nil {
				return nil, fmt.Errorf("failed to presign media %s: %w", m.ID, err)
			}
		}
		links = append(links, link)
	}
	return links, nil
}

func (s *CheckpointService) GetCheckpointHistory(ctx context.Context, coupleID, viewerID string) ([]models.CheckpointHistoryItem, error) {
	if _, err := ensureMember(ctx, s.repomanager.Couples(s.db), coupleID, viewerID); err != nil {
		return nil, err
	}
	return s.repomanager.CheckpointReveals(s.db).ListHistory(ctx, coupleID, viewerID)
}

// GetUnrevealedCount is the number of partner entries the viewer can still draw.
func (s *CheckpointService) GetUnrevealedCount(ctx context.Context, coupleID, viewerID string) (int, error) {
	couple, err := ensureMember(ctx, s.repomanager.Couples(s.db), coupleID, viewerID)
	if err != nil {
		return 0, err
	}
	partner, _ := couple.PartnerOf(viewerID)
	return s.repomanager.CheckpointReveals(s.db).CountUnrevealed(ctx, coupleID, partner, viewerID)
}

func (s *CheckpointService) ListConfigs(ctx context.Context, coupleID string) ([]models.CheckpointConfig, error) {
	return s.repomanager.CheckpointConfigs(s.db).ListByCouple(ctx, coupleID)
}

// SaveConfig validates the schedule and stores it. A config without an ID is
// created; otherwise the existing row of the same couple is replaced.
func (s *CheckpointService) SaveConfig(ctx context.Context, coupleID string, cfg models.CheckpointConfig) (*models.CheckpointConfig, error) {
	cfg.CoupleID = coupleID
	if _, err := recurrence.FromConfig(cfg); err != nil {
		return nil, err
	}

	repo := s.repomanager.CheckpointConfigs(s.db)
	if cfg.ID == "" {
		cfg.ID = uuid.NewString()
		if err := repo.Create(ctx, &cfg); err != nil {
			return nil, err
		}
		s.logger.Info(ctx, "checkpoint config created", "couple_id", coupleID, "config_id", cfg.ID, "frequency", cfg.Frequency)
		return &cfg, nil
	}

	if err := repo.Update(ctx, &cfg); err != nil {
		return nil, err
	}
	return repo.Get(ctx, coupleID, cfg.ID)
}

func (s *CheckpointService) DeleteConfig(ctx context.Context, coupleID, id string) error {
	return s.repomanager.CheckpointConfigs(s.db).Delete(ctx, coupleID, id)
}
