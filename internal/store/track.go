package store

import (
	"errors"
	"fmt"
)

// Track is one of the two fully isolated parallel instances of the
// game. Every ledger row and every engine operation belongs to exactly
// one track.
type Track string

const (
	TrackTest Track = "test"
	TrackLive Track = "live"
)

// ParseTrack converts a string into a Track.
func ParseTrack(s string) (Track, error) {
	switch Track(s) {
	case TrackTest, TrackLive:
		return Track(s), nil
	}
	return "", fmt.Errorf("unknown track %q (want test or live)", s)
}

func (t Track) String() string { return string(t) }

// ErrForbiddenOnLiveTrack is returned by destructive operations invoked
// against the live track. The check runs before any ledger access.
var ErrForbiddenOnLiveTrack = errors.New("operation forbidden on live track")

// ErrNoActiveChapter is returned when no open chapter run exists for the
// track, or the active run plays a different chapter than claimed.
var ErrNoActiveChapter = errors.New("no active chapter run")

// guardDestructive rejects destructive operations outside the test track.
func guardDestructive(track Track) error {
	if track != TrackTest {
		return ErrForbiddenOnLiveTrack
	}
	return nil
}
