package dispatch

import (
	"testing"
	"time"
)

func TestNextMorning(t *testing.T) {
	day := func(d, hour, min int) time.Time {
		return time.Date(2026, 3, d, hour, min, 0, 0, time.UTC)
	}

	tests := []struct {
		name  string
		now   time.Time
		delay int
		want  time.Time
	}{
		{"late morning rolls to tomorrow", day(2, 10, 0), 1, day(3, 4, 30)},
		{"before 04:30 counts today", day(2, 2, 0), 1, day(2, 4, 30)},
		{"exactly 04:30 rolls to tomorrow", day(2, 4, 30), 1, day(3, 4, 30)},
		{"two mornings out", day(2, 10, 0), 2, day(4, 4, 30)},
		{"two mornings out before 04:30", day(2, 2, 0), 2, day(3, 4, 30)},
		{"zero delay clamps to one", day(2, 10, 0), 0, day(3, 4, 30)},
		{"month boundary", day(31, 12, 0), 1, time.Date(2026, 4, 1, 4, 30, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NextMorning(tt.now, tt.delay)
			if !got.Equal(tt.want) {
				t.Errorf("NextMorning(%v, %d) = %v, want %v", tt.now, tt.delay, got, tt.want)
			}
		})
	}
}

func TestNextMorningKeepsLocation(t *testing.T) {
	loc := time.FixedZone("CET", 3600)
	now := time.Date(2026, 3, 2, 10, 0, 0, 0, loc)
	got := NextMorning(now, 1)
	if got.Location() != loc {
		t.Errorf("location = %v, want %v", got.Location(), loc)
	}
	if got.Hour() != 4 || got.Minute() != 30 {
		t.Errorf("local time = %02d:%02d, want 04:30", got.Hour(), got.Minute())
	}
}
