package logging

import (
	"os"
	"time"

	"github.com/Scrin/wordbag/config"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func Setup() {
	var logContext zerolog.Context
	if config.ConsoleOutput {
		logContext = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).With()
	} else {
		logContext = log.Output(os.Stderr).With()
	}
	log.Logger = logContext.Timestamp().Caller().Logger().Hook(contextHook{})
	zerolog.LevelFieldName = "severity"
	zerolog.TimestampFieldName = "timestamp"
	zerolog.TimeFieldFormat = time.RFC3339Nano

	zerolog.SetGlobalLevel(config.LogLevel)
}
