// internal/logger/logger.go
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup configura o logger global. Em ambiente de desenvolvimento usa o
// console writer legível; em produção, JSON puro.
func Setup() {
	nivel := strings.ToLower(os.Getenv("LOG_LEVEL"))
	level, err := zerolog.ParseLevel(nivel)
	if err != nil || nivel == "" {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
	zerolog.TimeFieldFormat = time.RFC3339

	if os.Getenv("APP_ENV") != "production" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
}
