package models

import (
	"time"

	"github.com/dmitrijs2005/duetdiary/internal/timex"
)

type Frequency string

const (
	FrequencyMonthly      Frequency = "monthly"
	FrequencyQuarterly    Frequency = "quarterly"
	FrequencySemiAnnual   Frequency = "semi_annual"
	FrequencySpecificDate Frequency = "specific_date"
)

// CheckpointConfig is a user-defined recurrence for checkpoint disclosures.
// DayOfMonth applies to monthly, quarterly and semi_annual; SpecificDate to
// specific_date only.
type CheckpointConfig struct {
	ID           string
	CoupleID     string
	Frequency    Frequency
	DayOfMonth   *int
	Months       []time.Month
	SpecificDate *timex.Date
	Label        string
	IsActive     bool
	CreatedAt    time.Time
}

// CheckpointReveal is the permanent receipt that EntryID was shown to
// ViewerID on RevealDate.
type CheckpointReveal struct {
	ID         string
	CoupleID   string
	ConfigID   *string
	EntryID    string
	ViewerID   string
	RevealDate timex.Date
	RevealedAt time.Time
}

// CheckpointHistoryItem is a receipt joined with what the viewer saw.
type CheckpointHistoryItem struct {
	CheckpointReveal
	EntryTitle  string
	EntryDate   timex.Date
	AuthorID    string
	ConfigLabel string
}
