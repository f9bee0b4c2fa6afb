package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// LoadEnv loads a .env file if one exists and then reads the configuration
// from the environment.
func LoadEnv() (err error) {
	godotenv.Load()
	return loadConfig()
}

var (
	ConsoleOutput = false
	LogLevel      = zerolog.InfoLevel
	HTTPAddr      = ""
	InputFormat   = "plain"
	TopWords      = 0
)

func loadConfig() error {
	var err error
	if v := os.Getenv("WORDBAG_CONSOLE_OUTPUT"); v != "" {
		if ConsoleOutput, err = strconv.ParseBool(v); err != nil {
			return fmt.Errorf("WORDBAG_CONSOLE_OUTPUT is not a boolean: %w", err)
		}
	}
	if v := os.Getenv("WORDBAG_LOG_LEVEL"); v != "" {
		if LogLevel, err = zerolog.ParseLevel(v); err != nil {
			return fmt.Errorf("WORDBAG_LOG_LEVEL is invalid: %w", err)
		}
	}
	HTTPAddr = os.Getenv("WORDBAG_HTTP_ADDR")
	if v := os.Getenv("WORDBAG_INPUT_FORMAT"); v != "" {
		InputFormat = v
	}
	if v := os.Getenv("WORDBAG_TOP"); v != "" {
		if TopWords, err = strconv.Atoi(v); err != nil {
			return fmt.Errorf("WORDBAG_TOP is not a number: %w", err)
		}
		if TopWords < 0 {
			return fmt.Errorf("WORDBAG_TOP must not be negative")
		}
	}
	return nil
}
