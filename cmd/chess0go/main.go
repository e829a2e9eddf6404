// chess0go is the command-line entry point: it parses a position and a
// time/depth budget, runs the search core once and prints the best move
// and principal variation. Grounded on the teacher's cmd/FrankyGo/main.go
// (flag layout, config.Setup()/logging.GetLog() wiring, the nps-test
// branch's NewSearch/StartSearch/WaitWhileSearching shape) adapted to
// chess0go's one-shot Session API instead of a UCI loop (spec.md's
// Non-goals exclude a UCI/xboard protocol implementation).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/pkg/profile"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/mkdlabs/chess0go/internal/board"
	"github.com/mkdlabs/chess0go/internal/config"
	"github.com/mkdlabs/chess0go/internal/logging"
	"github.com/mkdlabs/chess0go/internal/search"
	"github.com/mkdlabs/chess0go/internal/util"
)

var out = message.NewPrinter(language.English)

const startFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

func main() {
	versionInfo := flag.Bool("version", false, "prints version and exits")
	configFile := flag.String("config", "./config.toml", "path to configuration settings file")
	logLvl := flag.String("loglvl", "info", "standard log level\n(critical|error|warning|notice|info|debug)")
	searchLogLvl := flag.String("searchloglvl", "", "search log level\n(critical|error|warning|notice|info|debug)")
	fen := flag.String("fen", startFEN, "FEN of the position to search")
	depth := flag.Int("depth", 0, "search depth limit, 0 means use configured default")
	moveTimeMs := flag.Int("movetime", 2000, "search time in milliseconds for this move")
	infinite := flag.Bool("infinite", false, "search until stopped (honors movetime as a fallback ceiling)")
	cpuProfile := flag.Bool("cpuprofile", false, "write a CPU profile of the search to ./cpu.pprof")
	flag.Parse()

	if *versionInfo {
		printVersionInfo()
		return
	}

	config.ConfFile = *configFile
	config.Setup()
	board.SetPieceValues(
		config.Settings.Eval.PawnValue,
		config.Settings.Eval.KnightValue,
		config.Settings.Eval.BishopValue,
		config.Settings.Eval.RookValue,
		config.Settings.Eval.QueenValue,
	)

	if lvl, found := config.LogLevels[*logLvl]; found {
		config.LogLevel = lvl
	}
	if lvl, found := config.LogLevels[*searchLogLvl]; found {
		config.SearchLogLevel = lvl
	}
	log := logging.GetLog()

	b, err := board.FromFEN(*fen)
	if err != nil {
		out.Println("chess0go:", err)
		os.Exit(1)
	}

	tun := search.DefaultTunables()
	sc := config.Settings.Search
	tun.SearchDepth = sc.SearchDepth
	tun.UseCache = sc.UseCache
	tun.UseBook = sc.UseBook
	tun.UseLMR = sc.UseLMR
	tun.StopFrac = sc.StopFrac
	tun.NullmoveLimit = sc.NullmoveLimit
	tun.NullmoveReduction = sc.NullmoveReduction
	tun.LmrPlyStart = sc.LmrPlyStart
	tun.LmrSearchDepth = sc.LmrSearchDepth
	tun.LmrMoveStart = sc.LmrMoveStart
	tun.CacheHitLevel = sc.CacheHitLevel
	tun.UpdateInterval = sc.UpdateInterval
	if *depth > 0 {
		tun.SearchDepth = *depth
	}

	if *cpuProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}

	s := search.NewSession(b, tun, nil)
	limits := search.Limits{
		Infinite:    *infinite,
		Depth:       *depth,
		TimeControl: false,
		MoveTime:    time.Duration(*moveTimeMs) * time.Millisecond,
	}

	start := time.Now()
	s.StartSearch(limits)
	s.WaitWhileSearching(context.Background())
	elapsed := time.Since(start)

	m := s.Result()
	nodes := s.Engine().Nodes()

	log.Infof("search finished in %s, %d nodes, %d nps", elapsed, nodes, util.Nps(uint64(nodes), elapsed))

	if m == search.NoMove {
		out.Println("no legal move (game over)")
		return
	}
	out.Printf("bestmove %s\n", moveString(m))
}

func moveString(m board.Move) string {
	return squareName(m.From()) + squareName(m.To())
}

func squareName(sq board.Square) string {
	return fmt.Sprintf("%c%c", 'a'+rune(sq.File()), '1'+rune(sq.Rank()))
}

func printVersionInfo() {
	out.Println("chess0go")
	out.Println("Environment:")
	out.Printf("  Using GO version %s\n", runtime.Version())
	out.Printf("  Running %s using %s as a compiler\n", runtime.GOARCH, runtime.Compiler)
	out.Printf("  Number of CPU: %d\n", runtime.NumCPU())
	cwd, _ := os.Getwd()
	out.Printf("  Working directory: %s\n", cwd)
}
