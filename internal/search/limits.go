package search

import "time"

// Limits describes how a single Think() call should be bounded, the Go
// analogue of spec.md §6's "tunables read at think() entry" time-control
// surface, shaped after the teacher's internal/search.Limits.
type Limits struct {
	Infinite bool
	Depth    int // 0 means use Tunables.SearchDepth

	TimeControl bool
	OwnTime     time.Duration
	OppTime     time.Duration
	OwnInc      time.Duration
	OppInc      time.Duration

	MoveTime time.Duration // fixed time per move, overrides TimeControl
}

// timeControl implements spec.md §4.G.a: given own clock, opponent clock,
// increment and half-moves already played, compute the millisecond budget
// for this iteration's search. Grounded on
// original_source/src/search.cpp's timeControl().
func timeControl(ownMs, oppMs, incMs, endOfSearchPlies int64) int64 {
	movesLeft := 80 - endOfSearchPlies
	if movesLeft < 20 {
		movesLeft = 20
	}

	maxTime := ownMs/movesLeft + incMs
	if ownMs > oppMs+incMs {
		surplus := ownMs - oppMs - incMs
		maxTime += int64(0.80 * float64(surplus))
	}

	cap := int64(0.80 * float64(ownMs))
	if maxTime > cap {
		maxTime = cap
	}
	if maxTime < 1 {
		maxTime = 1
	}
	if ownMs < incMs {
		maxTime = ownMs
	}
	return maxTime
}
