package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New monta o logger da aplicação. Fora de prod usa saída legível no console.
func New(level, env string) zerolog.Logger {
	var out io.Writer = os.Stdout
	if env != "prod" && env != "production" {
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return NewWithWriter(out, level)
}

func NewWithWriter(w io.Writer, level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || level == "" {
		lvl = zerolog.InfoLevel
	}

	return zerolog.New(w).
		Level(lvl).
		With().
		Timestamp().
		Str("service", "clinic-scheduler").
		Logger()
}
