package services

import (
	"math"
	"strconv"
	"time"
)

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

// ComputeDayOffset returns the signed day count until the move:
// ceil((moveDate at midnight − now) / 24h). The move date is normalized to
// midnight; now is used as-is, which keeps the offset at 0 for any clock
// time on moving day itself.
func ComputeDayOffset(moveDate time.Time, now time.Time, location *time.Location) int {
	moveMidnight := DateAtLocation(moveDate, location)
	diff := moveMidnight.Sub(now)
	return int(math.Ceil(diff.Hours() / 24))
}

// FormatDayOffset renders the D-day label: D-7, D-Day, D+3.
func FormatDayOffset(offset int) string {
	switch {
	case offset > 0:
		return "D-" + strconv.Itoa(offset)
	case offset == 0:
		return "D-Day"
	default:
		return "D+" + strconv.Itoa(-offset)
	}
}
