package internal

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// LogOutput is where logs go. Stdout is kept free for the export itself.
var LogOutput io.Writer = os.Stderr

// InitLogging configures the global logger. Format "json" writes one JSON
// object per line, anything else a human readable console format.
func InitLogging(level, format string) error {
	if format == "json" {
		log.Logger = zerolog.New(LogOutput).With().Timestamp().Logger()
	} else {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: LogOutput, TimeFormat: time.RFC3339})
	}

	if level == "" {
		level = "info"
	}
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	log.Logger = log.Logger.Level(lvl)
	return nil
}
