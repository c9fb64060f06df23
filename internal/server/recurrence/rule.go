// Package recurrence computes checkpoint occurrence dates. Everything here is
// pure: callers pass "today" explicitly.
package recurrence

import (
	"fmt"
	"slices"
	"time"

	"github.com/dmitrijs2005/duetdiary/internal/common"
	"github.com/dmitrijs2005/duetdiary/internal/server/models"
	"github.com/dmitrijs2005/duetdiary/internal/timex"
)

// MaxDayOfMonth keeps monthly rules valid in every month.
const MaxDayOfMonth = 28

var (
	DefaultQuarterlyMonths  = []time.Month{time.January, time.April, time.July, time.October}
	DefaultSemiAnnualMonths = []time.Month{time.January, time.July}
)

// Rule is one of Monthly, Quarterly, SemiAnnual or SpecificDate.
type Rule interface {
	isRule()
}

type Monthly struct {
	Day int
}

type Quarterly struct {
	Day    int
	Months []time.Month
}

type SemiAnnual struct {
	Day    int
	Months []time.Month
}

// SpecificDate recurs yearly on the month and day of Date.
type SpecificDate struct {
	Date timex.Date
}

func (Monthly) isRule()      {}
func (Quarterly) isRule()    {}
func (SemiAnnual) isRule()   {}
func (SpecificDate) isRule() {}

// FromConfig validates cfg and converts it into its Rule variant.
func FromConfig(cfg models.CheckpointConfig) (Rule, error) {
	switch cfg.Frequency {
	case models.FrequencyMonthly:
		day, err := dayOf(cfg)
		if err != nil {
			return nil, err
		}
		return Monthly{Day: day}, nil

	case models.FrequencyQuarterly:
		day, err := dayOf(cfg)
		if err != nil {
			return nil, err
		}
		months, err := monthsOf(cfg, DefaultQuarterlyMonths)
		if err != nil {
			return nil, err
		}
		return Quarterly{Day: day, Months: months}, nil

	case models.FrequencySemiAnnual:
		day, err := dayOf(cfg)
		if err != nil {
			return nil, err
		}
		months, err := monthsOf(cfg, DefaultSemiAnnualMonths)
		if err != nil {
			return nil, err
		}
		return SemiAnnual{Day: day, Months: months}, nil

	case models.FrequencySpecificDate:
		if cfg.SpecificDate == nil || cfg.SpecificDate.IsZero() {
			return nil, fmt.Errorf("%w: specific_date requires a date", common.ErrInvalidArgument)
		}
		return SpecificDate{Date: *cfg.SpecificDate}, nil

	default:
		return nil, fmt.Errorf("%w: unknown frequency %q", common.ErrInvalidArgument, cfg.Frequency)
	}
}

func dayOf(cfg models.CheckpointConfig) (int, error) {
	if cfg.DayOfMonth == nil {
		return 0, fmt.Errorf("%w: %s requires a day of month", common.ErrInvalidArgument, cfg.Frequency)
	}
	day := *cfg.DayOfMonth
	if day < 1 || day > MaxDayOfMonth {
		return 0, fmt.Errorf("%w: day of month %d outside 1..%d", common.ErrInvalidArgument, day, MaxDayOfMonth)
	}
	return day, nil
}

func monthsOf(cfg models.CheckpointConfig, fallback []time.Month) ([]time.Month, error) {
	if len(cfg.Months) == 0 {
		return fallback, nil
	}
	months := slices.Clone(cfg.Months)
	for _, m := range months {
		if m < time.January || m > time.December {
			return nil, fmt.Errorf("%w: invalid month %d", common.ErrInvalidArgument, m)
		}
	}
	slices.Sort(months)
	return slices.Compact(months), nil
}
