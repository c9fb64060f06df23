// Package models defines server-side data models persisted in the database.
package models

import "github.com/dmitrijs2005/duetdiary/internal/timex"

// Couple pairs two users sharing one disclosure timeline.
type Couple struct {
	ID       string
	PartnerA string
	PartnerB string

	// AnniversaryDate gates the annual reveal; only its month and day matter.
	AnniversaryDate *timex.Date
	// IsRevealed is set by the first successful reveal and never cleared.
	IsRevealed bool
	// LastRevealYear is non-nil only when IsRevealed is true.
	LastRevealYear *int
}

// PartnerOf returns the other member of the couple.
func (c *Couple) PartnerOf(userID string) (string, bool) {
	switch userID {
	case "":
		return "", false
	case c.PartnerA:
		return c.PartnerB, true
	case c.PartnerB:
		return c.PartnerA, true
	default:
		return "", false
	}
}

func (c *Couple) IsMember(userID string) bool {
	_, ok := c.PartnerOf(userID)
	return ok
}
