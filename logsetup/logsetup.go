// Package logsetup bootstraps the global zerolog logger used throughout
// this module: a colorized console writer on a terminal, the same
// console writer without color otherwise, gated by an overridable level. Every package here logs via
// github.com/rs/zerolog/log's global logger rather than taking a
// *zerolog.Logger as a dependency, matching the teacher's own call sites
// (engine/local.go, searcher/mcts.go) — this package is just where that
// global gets configured once, at the top of cmd/endgamedemo.
package logsetup

import (
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init configures the global zerolog logger at the given level (e.g.
// "debug", "info", "warn"). An empty level defaults to "info".
func Init(level string) {
	if level == "" {
		level = "info"
	}
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		parsed = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(parsed)

	var writer zerolog.ConsoleWriter = zerolog.ConsoleWriter{Out: os.Stderr}
	writer.NoColor = !isatty.IsTerminal(os.Stderr.Fd())

	log.Logger = zerolog.New(writer).With().Timestamp().Logger()
}
