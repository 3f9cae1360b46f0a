package main

import (
	"io"
	"log/slog"
	"strings"

	"github.com/pterm/pterm"

	"github.com/luca-patrignani/pow-ledger/config"
)

// newLogger returns a slog logger backed by the pterm logger.
func newLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	logger := pterm.DefaultLogger.WithLevel(parseLevel(cfg.Level)).WithWriter(w)
	if strings.EqualFold(cfg.Format, "json") {
		logger = logger.WithFormatter(pterm.LogFormatterJSON)
	}
	return slog.New(pterm.NewSlogHandler(logger))
}

func parseLevel(s string) pterm.LogLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return pterm.LogLevelDebug
	case "warn", "warning":
		return pterm.LogLevelWarn
	case "error":
		return pterm.LogLevelError
	default:
		return pterm.LogLevelInfo
	}
}
