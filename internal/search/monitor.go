package search

import (
	"github.com/mkdlabs/chess0go/internal/timer"
	"github.com/mkdlabs/chess0go/internal/xboard"
)

// no-op command words discarded by readClockAndInput without affecting the
// search, spec.md §4.D.
var noopCommands = map[string]bool{
	".": true, "?": true, "bk": true, "easy": true, "hard": true,
	"nopost": true, "post": true, "hint": true,
}

// clock-update words that are consumed without stopping the search.
var clockCommands = map[string]bool{"time": true, "otim": true}

// monitor implements component D, the time/interrupt monitor: polled every
// UpdateInterval nodes from F and E, grounded on
// original_source/src/peek.cpp's readClockAndInput().
type monitor struct {
	startMs        int64
	maxTimeMs      int64
	updateInterval int
	countdown      int
	timedOut       bool
	pendingCommand string
	source         xboard.CommandSource
}

func newMonitor(updateInterval int, source xboard.CommandSource) *monitor {
	if source == nil {
		source = xboard.NoopSource{}
	}
	return &monitor{updateInterval: updateInterval, source: source}
}

// start begins a new think() invocation's countdown (spec.md §4.G step 4).
func (m *monitor) start(maxTimeMs int64) {
	m.startMs = timer.GetMs()
	m.maxTimeMs = maxTimeMs
	m.countdown = m.updateInterval
	m.timedOut = false
	m.pendingCommand = ""
}

// tick decrements the poll countdown and, when it reaches zero, calls
// readClockAndInput — the node-counter-driven poll of spec.md §4.D/§4.F
// step 6's "decrement countdown (polling D if it hits zero)".
func (m *monitor) tick() {
	m.countdown--
	if m.countdown <= 0 {
		m.readClockAndInput()
	}
}

func (m *monitor) readClockAndInput() {
	m.countdown = m.updateInterval

	if timer.GetMs()-m.startMs > m.maxTimeMs {
		m.timedOut = true
		return
	}

	for {
		cmd, ok := m.source.Poll()
		if !ok {
			return
		}
		switch {
		case noopCommands[cmd]:
			continue
		case clockCommands[cmd]:
			continue
		default:
			m.timedOut = true
			m.pendingCommand = cmd
			return
		}
	}
}

// TimedOut reports whether the monitor has fired; once true it stays true
// until the next start() call (spec.md §3 invariant 4).
func (m *monitor) TimedOut() bool { return m.timedOut }

// elapsedMs returns milliseconds since the last start() call.
func (m *monitor) elapsedMs() int64 { return timer.GetMs() - m.startMs }
