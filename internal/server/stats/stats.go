// Package stats aggregates the reveal statistics of a couple. Compute is a
// pure function of its input; every "winner" has a fixed tie-break so the
// same entry set always yields the same record.
package stats

import (
	"cmp"
	"slices"
	"time"

	"github.com/dmitrijs2005/duetdiary/internal/server/models"
	"github.com/dmitrijs2005/duetdiary/internal/timex"
)

// DefaultAverageHour is reported for a partner without entries.
const DefaultAverageHour = 12.0

type Input struct {
	Couple models.Couple
	// Year restricts the aggregation to one calendar year; nil means all time.
	Year    *int
	Entries []models.Entry
	Media   models.MediaCounts
	// Location is used to read the hour of day from creation timestamps.
	// Nil means UTC.
	Location *time.Location
}

// Compute builds the statistics record. Drafts, entries outside Year and
// entries not written by a partner are ignored even if present in the input.
func Compute(in Input) models.RevealStats {
	loc := in.Location
	if loc == nil {
		loc = time.UTC
	}

	entries := published(in.Entries, in.Year, in.Couple)

	out := models.RevealStats{
		Year:         in.Year,
		TotalEntries: len(entries),
		PartnerA:     partnerStats(in.Couple.PartnerA, entries, loc),
		PartnerB:     partnerStats(in.Couple.PartnerB, entries, loc),
		Media:        in.Media,
		Locations:    []models.EntryLocation{},
	}

	if len(entries) == 0 {
		return out
	}

	first, last := entries[0].Date, entries[len(entries)-1].Date
	out.FirstEntryDate, out.LastEntryDate = &first, &last

	out.MostActiveMonth = mostActiveMonth(entries)
	out.LongestEntry = longestEntry(entries)
	out.Locations, out.UniqueLocations = locations(entries)

	return out
}

// published filters and orders entries by date, creation time and id.
func published(in []models.Entry, year *int, c models.Couple) []models.Entry {
	out := make([]models.Entry, 0, len(in))
	for _, e := range in {
		if e.Status != models.EntryPublished || !c.IsMember(e.AuthorID) {
			continue
		}
		if year != nil && e.Date.Year != *year {
			continue
		}
		out = append(out, e)
	}
	slices.SortStableFunc(out, func(a, b models.Entry) int {
		if c := a.Date.Compare(b.Date); c != 0 {
			return c
		}
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out
}

func partnerStats(userID string, entries []models.Entry, loc *time.Location) models.PartnerStats {
	ps := models.PartnerStats{UserID: userID, AverageHour: DefaultAverageHour}
	if userID == "" {
		return ps
	}

	var (
		hours    int
		dates    []timex.Date
		moods    = map[string]int{}
		weekdays = map[time.Weekday]int{}
	)
	for _, e := range entries {
		if e.AuthorID != userID {
			continue
		}
		ps.EntryCount++
		ps.WordCount += e.WordCount
		hours += e.CreatedAt.In(loc).Hour()
		dates = append(dates, e.Date)
		if e.Mood != "" {
			moods[e.Mood]++
		}
		weekdays[e.Date.Time().Weekday()]++
	}
	if ps.EntryCount == 0 {
		return ps
	}

	ps.AverageHour = float64(hours) / float64(ps.EntryCount)
	ps.LongestStreak = LongestStreak(dates)
	ps.TopMood = topKey(moods)
	wd := topKey(weekdays)
	ps.TopWeekday = &wd
	return ps
}

// LongestStreak is the longest run of consecutive calendar days present in
// dates. Duplicates and order do not matter.
func LongestStreak(dates []timex.Date) int {
	if len(dates) == 0 {
		return 0
	}
	sorted := slices.Clone(dates)
	slices.SortFunc(sorted, timex.Date.Compare)
	sorted = slices.Compact(sorted)

	best, run := 1, 1
	for i := 1; i < len(sorted); i++ {
		if sorted[i-1].AddDays(1) == sorted[i] {
			run++
		} else {
			run = 1
		}
		best = max(best, run)
	}
	return best
}

func mostActiveMonth(entries []models.Entry) *models.MonthActivity {
	counts := map[time.Month]int{}
	for _, e := range entries {
		counts[e.Date.Month]++
	}
	m := topKey(counts)
	return &models.MonthActivity{Month: m, Count: counts[m]}
}

// longestEntry prefers the earliest entry among equal word counts; entries
// are already in date/id order.
func longestEntry(entries []models.Entry) *models.LongestEntry {
	best := entries[0]
	for _, e := range entries[1:] {
		if e.WordCount > best.WordCount {
			best = e
		}
	}
	return &models.LongestEntry{
		EntryID:   best.ID,
		AuthorID:  best.AuthorID,
		Date:      best.Date,
		WordCount: best.WordCount,
	}
}

func locations(entries []models.Entry) ([]models.EntryLocation, int) {
	type point struct{ lat, lon float64 }

	out := []models.EntryLocation{}
	seen := map[point]struct{}{}
	for _, e := range entries {
		if !e.HasLocation() {
			continue
		}
		out = append(out, models.EntryLocation{
			Latitude:  *e.Latitude,
			Longitude: *e.Longitude,
			Name:      e.LocationName,
			AuthorID:  e.AuthorID,
			Date:      e.Date,
		})
		seen[point{*e.Latitude, *e.Longitude}] = struct{}{}
	}
	return out, len(seen)
}

// topKey returns the key with the highest count, the smallest key winning
// ties. counts must not be empty for a meaningful result.
func topKey[K cmp.Ordered](counts map[K]int) K {
	var (
		best  K
		bestN = -1
	)
	for k, n := range counts {
		if n > bestN || (n == bestN && k < best) {
			best, bestN = k, n
		}
	}
	return best
}
