package services

import (
	"errors"
	"time"
)

// MinMoveLeadDays is the minimum number of days between "now" and a newly
// selected move date. The rule applies at selection time only: an already
// saved date that drifts into the past stays valid and simply produces a
// D+ offset.
const MinMoveLeadDays = 14

var ErrMoveDateTooSoon = errors.New("move date too soon")

func ValidateMoveDate(moveDate time.Time, now time.Time, location *time.Location) error {
	earliest := DateAtLocation(now, location).AddDate(0, 0, MinMoveLeadDays)
	if DateAtLocation(moveDate, location).Before(earliest) {
		return ErrMoveDateTooSoon
	}
	return nil
}
