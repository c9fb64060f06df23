// Package gate implements the annual reveal state machine of a couple:
//
//	Locked -> ReadyToOpen -> Revealed(year) -> (next year) ReadyToOpen ...
//
// Evaluation is lazy and pure; persisting the transition is up to the caller.
package gate

import (
	"fmt"

	"github.com/dmitrijs2005/duetdiary/internal/common"
	"github.com/dmitrijs2005/duetdiary/internal/server/models"
	"github.com/dmitrijs2005/duetdiary/internal/timex"
)

type State int

const (
	Locked State = iota
	ReadyToOpen
	Revealed
)

func (s State) String() string {
	switch s {
	case Locked:
		return "locked"
	case ReadyToOpen:
		return "ready_to_open"
	case Revealed:
		return "revealed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Evaluate returns the state of c on today. A couple without an anniversary
// is always Locked.
func Evaluate(c *models.Couple, today timex.Date) State {
	if c.AnniversaryDate == nil {
		return Locked
	}
	if c.LastRevealYear != nil && *c.LastRevealYear >= today.Year {
		return Revealed
	}
	if today.Before(openingDate(c, today.Year)) {
		return Locked
	}
	return ReadyToOpen
}

// openingDate is the anniversary placed into year. A Feb 29 anniversary
// opens on Feb 28 in non-leap years, as checkpoint dates do.
func openingDate(c *models.Couple, year int) timex.Date {
	return c.AnniversaryDate.MonthDay().In(year)
}

// IsReady reports whether the annual reveal can be opened for the first time
// this year.
func IsReady(c *models.Couple, today timex.Date) bool {
	return Evaluate(c, today) == ReadyToOpen
}

// CanTrigger checks whether a reveal may be (re)triggered on today. A second
// trigger in an already revealed year is allowed and recomputes the snapshot.
func CanTrigger(c *models.Couple, today timex.Date) error {
	if c.AnniversaryDate == nil {
		return fmt.Errorf("%w: anniversary date is not set", common.ErrInvalidState)
	}
	switch Evaluate(c, today) {
	case ReadyToOpen:
		return nil
	case Revealed:
		if *c.LastRevealYear == today.Year {
			return nil
		}
		return fmt.Errorf("%w: already revealed for %d", common.ErrInvalidState, *c.LastRevealYear)
	default:
		return fmt.Errorf("%w: opens on %s", common.ErrNotYetEligible, openingDate(c, today.Year))
	}
}

// Transition returns the couple state after a reveal in year. The reveal year
// never decreases.
func Transition(c models.Couple, year int) (models.Couple, error) {
	if c.LastRevealYear != nil && *c.LastRevealYear > year {
		return c, fmt.Errorf("%w: last reveal year %d is after %d", common.ErrStaleState, *c.LastRevealYear, year)
	}
	c.IsRevealed = true
	c.LastRevealYear = &year
	return c, nil
}
