package main

import (
	"io"
	"log/slog"
	"strings"

	"github.com/ersonp/thanepark/internal/infrastructure/config"
)

// newLogger builds the process logger from config. Unknown levels fall back
// to info.
func newLogger(cfg config.LogConfig, w io.Writer) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
