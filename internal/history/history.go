// Package history implements the history-heuristic half of component C
// (move ordering): a per-side, per-from/to table bumped by depth² for a
// move that causes a beta cutoff or ends up as a node's best move, grounded on original_source/src/search.cpp's
// whiteHeuristics/blackHeuristics update (`history[from][to] += depth*depth`)
// and shaped after the teacher's internal/history/history.go.
package history

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mkdlabs/chess0go/internal/board"
)

var out = message.NewPrinter(language.English)

// History accumulates depth²-weighted credit for moves that caused a beta
// cutoff or were a node's best move, indexed by side to move and by
// from/to square.
type History struct {
	counts [2][64][64]int64
}

// NewHistory returns an empty history table.
func NewHistory() *History {
	return &History{}
}

// Bump credits a move (capture or quiet) at the given search depth,
// matching original_source's `history[from][to] += depth * depth`.
func (h *History) Bump(side board.Color, m board.Move, depth int) {
	h.counts[side][m.From()][m.To()] += int64(depth) * int64(depth)
}

// Score returns the accumulated history value for a move, used by
// move-ordering's history-max comparison (component C).
func (h *History) Score(side board.Color, m board.Move) int64 {
	return h.counts[side][m.From()][m.To()]
}

// Clear resets all counters, called between games the way NewGame resets
// the teacher's Search state.
func (h *History) Clear() {
	*h = History{}
}

func (h *History) String() string {
	var sb strings.Builder
	for from := board.Square(0); from < 64; from++ {
		for to := board.Square(0); to < 64; to++ {
			w := h.counts[board.White][from][to]
			b := h.counts[board.Black][from][to]
			if w == 0 && b == 0 {
				continue
			}
			sb.WriteString(out.Sprintf("from=%d to=%d white=%d black=%d\n", from, to, w, b))
		}
	}
	return sb.String()
}
