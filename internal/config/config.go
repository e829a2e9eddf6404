// Package config holds the globally available configuration, read from a
// TOML file via github.com/BurntSushi/toml, matching the teacher's own
// config package shape (root config/config.go, internal/config's split
// searchConfiguration/evalConfiguration).
package config

import (
	"log"

	"github.com/BurntSushi/toml"

	"github.com/mkdlabs/chess0go/internal/util"
)

var (
	// ConfFile is the path to the configuration file, overridable from the
	// command line. Setup resolves a relative path against the running
	// executable's directory (util.ResolveFile), not the working directory.
	ConfFile = "./config.toml"

	// LogLevel and SearchLogLevel drive internal/logging's two loggers.
	LogLevel       = 5
	SearchLogLevel = 5

	// Settings is the process-wide configuration read in from ConfFile.
	Settings conf

	initialized = false
)

// LogLevels maps the command-line/config string spelling of a log level to
// its numeric op/go-logging level, matching the teacher's own
// config.LogLevels.
var LogLevels = map[string]int{
	"off":      -1,
	"critical": 0,
	"error":    1,
	"warning":  2,
	"notice":   3,
	"info":     4,
	"debug":    5,
}

type logConfiguration struct {
	LogLvl       int
	SearchLogLvl int
	LogPath      string
}

type conf struct {
	Log    logConfiguration
	Search searchConfiguration
	Eval   evalConfiguration
}

// Setup reads ConfFile once, falling back to the compiled-in defaults on
// any decode error, matching the teacher's own Setup()/initialized guard.
func Setup() {
	if initialized {
		return
	}
	path, _ := util.ResolveFile(ConfFile)
	if _, err := toml.DecodeFile(path, &Settings); err != nil {
		log.Println("config: no config file found, using defaults:", err)
	}
	if Settings.Log.LogLvl != 0 {
		LogLevel = Settings.Log.LogLvl
	}
	if Settings.Log.SearchLogLvl != 0 {
		SearchLogLevel = Settings.Log.SearchLogLvl
	}
	initialized = true
}
