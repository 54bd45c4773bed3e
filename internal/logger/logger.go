package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
	"go.uber.org/fx"
)

func New() zerolog.Logger {
	return NewWithWriter(os.Stdout)
}

func NewWithWriter(w io.Writer) zerolog.Logger {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	return zerolog.New(w).
		With().
		Timestamp().
		Caller().
		Str("service", "worldcup-scoreboard").
		Logger()
}

// ApplyLevel sets the process-wide level. Unknown names fall back to info.
func ApplyLevel(name string) zerolog.Level {
	level, err := zerolog.ParseLevel(name)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	return level
}

var Module = fx.Provide(New)
