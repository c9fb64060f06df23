package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/dmitrijs2005/duetdiary/internal/dbx"
	"github.com/dmitrijs2005/duetdiary/internal/logging"
	"github.com/dmitrijs2005/duetdiary/internal/server/gate"
	"github.com/dmitrijs2005/duetdiary/internal/server/models"
	"github.com/dmitrijs2005/duetdiary/internal/server/repositories/repomanager"
	"github.com/dmitrijs2005/duetdiary/internal/server/stats"
	"github.com/google/uuid"
)

// RevealService drives the annual reveal of a couple's diary.
type RevealService struct {
	clock
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	logger      logging.Logger
}

func NewRevealService(db *sql.DB, m repomanager.RepositoryManager, loc *time.Location, logger logging.Logger) *RevealService {
	return &RevealService{
		clock:       newClock(loc),
		db:          db,
		repomanager: m,
		logger:      logger.With("module", "reveal"),
	}
}

// EnsureMember loads the couple and fails with common.ErrNotAMember unless
// userID is one of its partners.
func (s *RevealService) EnsureMember(ctx context.Context, coupleID, userID string) (*models.Couple, error) {
	return ensureMember(ctx, s.repomanager.Couples(s.db), coupleID, userID)
}

// State reports where the couple is in the reveal cycle today.
func (s *RevealService) State(ctx context.Context, coupleID string) (gate.State, error) {
	c, err := s.repomanager.Couples(s.db).Get(ctx, coupleID)
	if err != nil {
		return gate.Locked, err
	}
	return gate.Evaluate(c, s.today()), nil
}

func (s *RevealService) IsReadyToReveal(ctx context.Context, coupleID string) (bool, error) {
	st, err := s.State(ctx, coupleID)
	if err != nil {
		return false, err
	}
	return st == gate.ReadyToOpen, nil
}

// TriggerReveal opens the current year. The couple row is locked for the
// whole transaction, so concurrent triggers serialize and the snapshot and
// couple flags are written together or not at all. A repeated trigger in the
// same year recomputes and overwrites the snapshot.
func (s *RevealService) TriggerReveal(ctx context.Context, coupleID string) (*models.RevealSnapshot, error) {
	today := s.today()

	snap, err := dbx.WithTxValue(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) (*models.RevealSnapshot, error) {
		couplesRepo := s.repomanager.Couples(tx)

		c, err := couplesRepo.GetForUpdate(ctx, coupleID)
		if err != nil {
			return nil, err
		}
		if err := gate.CanTrigger(c, today); err != nil {
			return nil, err
		}
		next, err := gate.Transition(*c, today.Year)
		if err != nil {
			return nil, err
		}

		year := today.Year
		computed, err := s.computeStats(ctx, tx, next, &year)
		if err != nil {
			return nil, err
		}

		snap := &models.RevealSnapshot{
			ID:         uuid.NewString(),
			CoupleID:   coupleID,
			Year:       year,
			Stats:      computed,
			RevealedAt: s.now().UTC(),
		}
		if err := s.repomanager.Snapshots(tx).Upsert(ctx, snap); err != nil {
			return nil, err
		}
		if err := couplesRepo.MarkRevealed(ctx, coupleID, *next.LastRevealYear); err != nil {
			return nil, err
		}
		return snap, nil
	})
	if err != nil {
		s.logger.Warn(ctx, "reveal trigger refused", "couple_id", coupleID, "error", err)
		return nil, err
	}

	s.logger.Info(ctx, "reveal triggered", "couple_id", coupleID, "year", snap.Year, "entries", snap.Stats.TotalEntries)
	return snap, nil
}

func (s *RevealService) GetSnapshot(ctx context.Context, coupleID string, year int) (*models.RevealSnapshot, error) {
	return s.repomanager.Snapshots(s.db).Get(ctx, coupleID, year)
}

func (s *RevealService) ListRevealedYears(ctx context.Context, coupleID string) ([]models.RevealedYear, error) {
	return s.repomanager.Snapshots(s.db).ListYears(ctx, coupleID)
}

// ComputeStats aggregates live statistics without persisting anything. A nil
// year means all time.
func (s *RevealService) ComputeStats(ctx context.Context, coupleID string, year *int) (models.RevealStats, error) {
	c, err := s.repomanager.Couples(s.db).Get(ctx, coupleID)
	if err != nil {
		return models.RevealStats{}, err
	}
	return s.computeStats(ctx, s.db, *c, year)
}

func (s *RevealService) computeStats(ctx context.Context, db dbx.DBTX, c models.Couple, year *int) (models.RevealStats, error) {
	filter := models.YearFilter(c.ID, year)

	entries, err := s.repomanager.Entries(db).ListPublished(ctx, filter)
	if err != nil {
		return models.RevealStats{}, fmt.Errorf("failed to load entries: %w", err)
	}
	media, err := s.repomanager.Media(db).CountByType(ctx, filter)
	if err != nil {
		return models.RevealStats{}, fmt.Errorf("failed to count media: %w", err)
	}

	return stats.Compute(stats.Input{
		Couple:   c,
		Year:     year,
		Entries:  entries,
		Media:    media,
		Location: s.loc,
	}), nil
}
