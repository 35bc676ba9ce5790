package main

import (
	"io"
	"os"
	"time"

	"github.com/mattn/go-colorable"
	"github.com/rs/zerolog"
	"golang.org/x/term"
)

const consoleTimeFormat = time.RFC3339

func init() {
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.TimestampFunc = utcNow
}

func utcNow() time.Time {
	return time.Now().UTC()
}

// createLogger builds a console logger writing to out. Colors are used only
// when out is a terminal. An unparsable level falls back to info, and the
// failure is reported through the new logger.
func createLogger(level string, out io.Writer) *zerolog.Logger {
	noColor := true
	if f, ok := out.(*os.File); ok {
		noColor = !term.IsTerminal(int(f.Fd()))
		out = colorable.NewColorable(f)
	}
	w := zerolog.ConsoleWriter{
		Out:        out,
		NoColor:    noColor,
		TimeFormat: consoleTimeFormat,
	}

	lvl, levelErr := zerolog.ParseLevel(level)
	if levelErr != nil || level == "" {
		lvl = zerolog.InfoLevel
	}
	log := zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	if levelErr != nil {
		log.Error().Msgf("Failed to parse log level %q, using %q instead", level, lvl)
	}
	return &log
}
