// Package logging wraps github.com/op/go-logging the way the teacher's own
// logging package does: a small set of package-level *logging.Logger
// instances, each configured with a stdout backend and a level read from
// internal/config, reducing every call site to one line. Grounded on the
// teacher's logging/log.go and internal/search/alphabeta.go's
// getSearchTraceLog().
package logging

import (
	"log"
	"os"

	"github.com/op/go-logging"

	"github.com/mkdlabs/chess0go/internal/config"
)

var (
	standardLog *logging.Logger
	searchLog   *logging.Logger

	format = logging.MustStringFormatter(
		`%{time:15:04:05.000} %{shortpkg:-8.8s}:%{shortfile:-14.14s} %{level:-7.7s}:  %{message}`)
)

func init() {
	standardLog = logging.MustGetLogger("standard")
	searchLog = logging.MustGetLogger("search")
}

// GetLog returns the standard logger, configured with a stdout backend at
// internal/config.LogLevel.
func GetLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(config.LogLevel), "")
	standardLog.SetBackend(leveled)
	return standardLog
}

// GetSearchLog returns the search-diagnostics logger (per-iteration
// summaries and session warnings), configured at
// internal/config.SearchLogLevel.
func GetSearchLog() *logging.Logger {
	backend := logging.NewLogBackend(os.Stdout, "", log.Lmsgprefix)
	formatted := logging.NewBackendFormatter(backend, format)
	leveled := logging.AddModuleLevel(formatted)
	leveled.SetLevel(logging.Level(config.SearchLogLevel), "")
	searchLog.SetBackend(leveled)
	return searchLog
}
