// Package services contains the disclosure business logic: the annual reveal
// and the per-viewer checkpoint draws. Both services read "today" from an
// injectable clock in a fixed time zone, so every decision about dates is
// reproducible in tests.
package services

import (
	"context"
	"time"

	"github.com/dmitrijs2005/duetdiary/internal/common"
	"github.com/dmitrijs2005/duetdiary/internal/server/models"
	"github.com/dmitrijs2005/duetdiary/internal/server/repositories/couples"
	"github.com/dmitrijs2005/duetdiary/internal/timex"
)

type clock struct {
	now func() time.Time
	loc *time.Location
}

func newClock(loc *time.Location) clock {
	if loc == nil {
		loc = time.UTC
	}
	return clock{now: time.Now, loc: loc}
}

// today is the civil date in the configured zone.
func (c clock) today() timex.Date {
	return timex.DateOf(c.now().In(c.loc))
}

func ensureMember(ctx context.Context, repo couples.Repository, coupleID, userID string) (*models.Couple, error) {
	c, err := repo.Get(ctx, coupleID)
	if err != nil {
		return nil, err
	}
	if !c.IsMember(userID) {
		return nil, common.ErrNotAMember
	}
	return c, nil
}
