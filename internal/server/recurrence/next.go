package recurrence

import (
	"slices"
	"time"

	"github.com/dmitrijs2005/duetdiary/internal/server/models"
	"github.com/dmitrijs2005/duetdiary/internal/timex"
)

// Next returns the first date on or after today on which rule fires.
func Next(rule Rule, today timex.Date) timex.Date {
	switch r := rule.(type) {
	case Monthly:
		return nextMonthly(r.Day, today)
	case Quarterly:
		return nextInMonths(r.Day, r.Months, today)
	case SemiAnnual:
		return nextInMonths(r.Day, r.Months, today)
	case SpecificDate:
		return nextSpecific(r.Date, today)
	default:
		panic("recurrence: unknown rule type")
	}
}

// Matches reports whether rule fires exactly on today.
func Matches(rule Rule, today timex.Date) bool {
	switch r := rule.(type) {
	case Monthly:
		return today.Day == r.Day
	case Quarterly:
		return today.Day == r.Day && slices.Contains(r.Months, today.Month)
	case SemiAnnual:
		return today.Day == r.Day && slices.Contains(r.Months, today.Month)
	case SpecificDate:
		return r.Date.MonthDay().In(today.Year) == today
	default:
		panic("recurrence: unknown rule type")
	}
}

func nextMonthly(day int, today timex.Date) timex.Date {
	candidate := timex.NewDate(today.Year, today.Month, day)
	if candidate.Before(today) {
		candidate = timex.NewDate(today.Year, today.Month+1, day)
	}
	return candidate
}

func nextInMonths(day int, months []time.Month, today timex.Date) timex.Date {
	var best timex.Date
	for _, year := range []int{today.Year, today.Year + 1} {
		for _, m := range months {
			candidate := timex.NewDate(year, m, day)
			if candidate.Before(today) {
				continue
			}
			if best.IsZero() || candidate.Before(best) {
				best = candidate
			}
		}
	}
	return best
}

func nextSpecific(date timex.Date, today timex.Date) timex.Date {
	md := date.MonthDay()
	candidate := md.In(today.Year)
	if candidate.Before(today) {
		candidate = md.In(today.Year + 1)
	}
	return candidate
}

// NextOccurrence is Next for a stored config.
func NextOccurrence(cfg models.CheckpointConfig, today timex.Date) (timex.Date, error) {
	rule, err := FromConfig(cfg)
	if err != nil {
		return timex.Date{}, err
	}
	return Next(rule, today), nil
}

// NextCheckpointDate returns the soonest upcoming occurrence across configs.
// Inactive and invalid configs are skipped; ok is false when none remain.
func NextCheckpointDate(configs []models.CheckpointConfig, today timex.Date) (next timex.Date, ok bool) {
	for _, cfg := range configs {
		if !cfg.IsActive {
			continue
		}
		d, err := NextOccurrence(cfg, today)
		if err != nil {
			continue
		}
		if !ok || d.Before(next) {
			next, ok = d, true
		}
	}
	return next, ok
}

// MatchingConfigs returns the active configs that fire on today, in input order.
func MatchingConfigs(configs []models.CheckpointConfig, today timex.Date) []models.CheckpointConfig {
	var matched []models.CheckpointConfig
	for _, cfg := range configs {
		if !cfg.IsActive {
			continue
		}
		rule, err := FromConfig(cfg)
		if err != nil {
			continue
		}
		if Matches(rule, today) {
			matched = append(matched, cfg)
		}
	}
	return matched
}
