package main

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger sets up the global zerolog logger. All output goes to out,
// the collector has no separate diagnostic stream.
func InitLogger(level string, out io.Writer) {
	levelStr := strings.ToLower(level)
	parsed, err := zerolog.ParseLevel(levelStr)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
		fmt.Fprintf(out, "Unknown log level '%s', defaulting to 'info'\n", levelStr)
	}

	zerolog.TimestampFunc = func() time.Time {
		return time.Now().UTC()
	}

	consoleWriter := zerolog.ConsoleWriter{
		Out:        out,
		TimeFormat: "2006-01-02 15:04:05",
	}

	log.Logger = zerolog.New(consoleWriter).
		Level(parsed).
		With().
		Timestamp().
		Logger()
}

func WithComponent(name string) zerolog.Logger {
	return log.Logger.With().Str("component", name).Logger()
}
