// Package search implements components C (move ordering), D (time/interrupt
// monitor), E (quiescence), F (PV alpha-beta), G (iterative deepening) and H
// (end-of-game detection) of the search core, grounded on
// original_source/src/search.cpp and shaped after the teacher's
// internal/search package (Search struct, semaphore-guarded Start/Stop,
// params.go's precomputed tables).
package search

// Score bounds and sentinels, spec.md §3 invariant 5 and §4.F/§4.H.
const (
	Infinity  = 30000
	Checkmate = 29000
	Draw      = 0
	Stalemate = 0

	// MaxPly bounds the triangular PV arrays and move buffers.
	MaxPly = 64
)

// IsMateScore reports whether score is in the mate-reporting range: the
// scores alphabeta's inline cache-store guard refuses to store (§4.B/§4.F
// "Cache store").
func IsMateScore(score int) bool {
	return score <= -Checkmate || score >= Checkmate
}

// Tunables mirrors the "tunables read at think() entry" surface of spec.md
// §6, populated from internal/config at engine construction instead of the
// original's process-wide globals.
type Tunables struct {
	SearchDepth int
	UCI         bool
	BeQuiet     bool
	UseCache    bool
	UseBook     bool // read, never honored — see internal/book

	UseLMR            bool
	StopFrac          float64
	NullmoveLimit     int
	NullmoveReduction int
	LmrPlyStart       int
	LmrSearchDepth    int
	LmrMoveStart      int
	CacheHitLevel     int
	UpdateInterval    int
}

// DefaultTunables matches original_source's compiled-in constants.
func DefaultTunables() Tunables {
	return Tunables{
		SearchDepth:       64,
		UseCache:          true,
		UseBook:           false,
		UseLMR:            true,
		StopFrac:          0.80,
		NullmoveLimit:     600,
		NullmoveReduction: 3,
		LmrPlyStart:       2,
		LmrSearchDepth:    3,
		LmrMoveStart:      3,
		CacheHitLevel:     0,
		UpdateInterval:    1000,
	}
}
