package models

import (
	"time"

	"github.com/dmitrijs2005/duetdiary/internal/timex"
)

// RevealStats is the fixed-shape statistics record shown at a reveal. It is
// stored as JSON inside reveal snapshots, so field tags are part of the
// persisted format.
type RevealStats struct {
	// Year is nil for all-time statistics.
	Year            *int            `json:"year,omitempty"`
	TotalEntries    int             `json:"total_entries"`
	PartnerA        PartnerStats    `json:"partner_a"`
	PartnerB        PartnerStats    `json:"partner_b"`
	MostActiveMonth *MonthActivity  `json:"most_active_month,omitempty"`
	LongestEntry    *LongestEntry   `json:"longest_entry,omitempty"`
	Media           MediaCounts     `json:"media"`
	FirstEntryDate  *timex.Date     `json:"first_entry_date,omitempty"`
	LastEntryDate   *timex.Date     `json:"last_entry_date,omitempty"`
	Locations       []EntryLocation `json:"locations"`
	UniqueLocations int             `json:"unique_locations"`
}

type PartnerStats struct {
	UserID        string  `json:"user_id"`
	EntryCount    int     `json:"entry_count"`
	WordCount     int     `json:"word_count"`
	AverageHour   float64 `json:"average_hour"`
	LongestStreak int     `json:"longest_streak"`
	TopMood       string  `json:"top_mood,omitempty"`
	// TopWeekday is nil when the partner has no entries.
	TopWeekday *time.Weekday `json:"top_weekday,omitempty"`
}

type MonthActivity struct {
	Month time.Month `json:"month"`
	Count int        `json:"count"`
}

type LongestEntry struct {
	EntryID   string     `json:"entry_id"`
	AuthorID  string     `json:"author_id"`
	Date      timex.Date `json:"date"`
	WordCount int        `json:"word_count"`
}

type EntryLocation struct {
	Latitude  float64    `json:"latitude"`
	Longitude float64    `json:"longitude"`
	Name      string     `json:"name,omitempty"`
	AuthorID  string     `json:"author_id"`
	Date      timex.Date `json:"date"`
}
