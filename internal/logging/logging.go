// Package logging constructs the *slog.Logger every service and
// bootstrap phase logs through, matching the call shape
// cmd/risk/main.go uses in the pack this core is grounded on:
// logging.New("treasurydesk", "main", level).
package logging

import (
	"log/slog"
	"os"
	"strings"
)

// New builds a JSON-handler slog.Logger tagged with the owning
// service and module, at the given level ("debug", "info", "warn",
// "error"; defaults to "info").
func New(service, module, level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: lvl})
	return slog.New(handler).With("service", service, "module", module)
}
