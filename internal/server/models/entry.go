package models

import (
	"time"

	"github.com/dmitrijs2005/duetdiary/internal/timex"
)

type EntryStatus string

const (
	EntryDraft     EntryStatus = "draft"
	EntryPublished EntryStatus = "published"
)

// Entry is a diary entry as exposed by the entries read contract.
type Entry struct {
	ID        string
	CoupleID  string
	AuthorID  string
	Status    EntryStatus
	Date      timex.Date
	Title     string
	Body      string
	WordCount int
	Mood      string

	Latitude     *float64
	Longitude    *float64
	LocationName string

	CreatedAt time.Time
}

func (e *Entry) HasLocation() bool {
	return e.Latitude != nil && e.Longitude != nil
}

// EntryFilter narrows a published-entries read. Empty AuthorID means both
// partners; nil bounds are open.
type EntryFilter struct {
	CoupleID string
	AuthorID string
	From     *timex.Date
	To       *timex.Date
}

// YearFilter builds a filter for the whole calendar year, or an all-time
// filter when year is nil.
func YearFilter(coupleID string, year *int) EntryFilter {
	f := EntryFilter{CoupleID: coupleID}
	if year != nil {
		from := timex.Date{Year: *year, Month: time.January, Day: 1}
		to := timex.Date{Year: *year, Month: time.December, Day: 31}
		f.From, f.To = &from, &to
	}
	return f
}
