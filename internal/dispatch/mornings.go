package dispatch

import "time"

// Messages scheduled "N mornings out" become eligible at 04:30 local
// time, early enough that a letter-day message is waiting when the
// player wakes up.
const (
	morningHour   = 4
	morningMinute = 30
)

// NextMorning computes the next occurrence of 04:30 local time at least
// delayMornings calendar mornings ahead of now. A morning that has not
// yet passed today counts as the first one: at 02:00 with delay 1 the
// result is 04:30 the same day, at 10:00 it is 04:30 tomorrow.
func NextMorning(now time.Time, delayMornings int) time.Time {
	if delayMornings < 1 {
		delayMornings = 1
	}
	first := time.Date(now.Year(), now.Month(), now.Day(), morningHour, morningMinute, 0, 0, now.Location())
	if !now.Before(first) {
		first = first.AddDate(0, 0, 1)
	}
	return first.AddDate(0, 0, delayMornings-1)
}
