package main

import (
	"log/slog"
	"os"
	"strconv"
)

// Diagnostics go to stderr, so they never mix with tables written on stdout.
// Only warnings are logged unless -v or TRUTHTABLE_DEBUG raise the level.
var (
	logLevel = new(slog.LevelVar)
	theLog   = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:       logLevel,
		ReplaceAttr: terseAttr,
	}))
)

func init() {
	logLevel.Set(slog.LevelWarn)
}

// terseAttr drops timestamps and the INFO level label.
func terseAttr(_ []string, a slog.Attr) slog.Attr {
	switch {
	case a.Key == slog.TimeKey:
		return slog.Attr{}
	case a.Key == slog.LevelKey && a.Value.String() == slog.LevelInfo.String():
		return slog.Attr{}
	}
	return a
}

// verbose raises the log level to info.
func verbose() {
	logLevel.Set(slog.LevelInfo)
}

func boolEnv(v string) bool {
	b, err := strconv.ParseBool(os.Getenv(v))
	return err == nil && b
}
