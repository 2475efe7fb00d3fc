package models

import "time"

// MoveSetting stores a user's planned move date. One row per user; the
// minimum-lead-time rule is enforced at selection time only, so a date that
// has since passed stays on record and simply yields a D+ offset.
type MoveSetting struct {
	ID        uint      `gorm:"primaryKey"`
	UserID    uint      `gorm:"not null;uniqueIndex"`
	MoveDate  time.Time `gorm:"type:date;not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
