package config

// searchConfiguration mirrors spec.md §6's "tunables read at think() entry"
// surface (internal/search.Tunables is built from this at engine
// construction). UseBook is kept for shape parity with the teacher's own
// searchConfiguration even though opening-book lookup is a Non-goal — see
// SPEC_FULL.md §3.
type searchConfiguration struct {
	SearchDepth int
	UseCache    bool
	TTSizeMB    int

	UseBook bool

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

func init() {
	Settings.Search.SearchDepth = 64
	Settings.Search.UseCache = true
	Settings.Search.TTSizeMB = 64

	Settings.Search.UseBook = false

	Settings.Search.UseLMR = true
	Settings.Search.StopFrac = 0.80
	Settings.Search.NullmoveLimit = 600
	Settings.Search.NullmoveReduction = 3
	Settings.Search.LmrPlyStart = 2
	Settings.Search.LmrSearchDepth = 3
	Settings.Search.LmrMoveStart = 3
	Settings.Search.CacheHitLevel = 0
	Settings.Search.UpdateInterval = 1000
}
