package models

import "time"

// RevealSnapshot freezes the reveal statistics of one couple for one year.
type RevealSnapshot struct {
	ID         string
	CoupleID   string
	Year       int
	Stats      RevealStats
	RevealedAt time.Time
}

type RevealedYear struct {
	Year       int
	RevealedAt time.Time
}
