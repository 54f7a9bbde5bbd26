/*
Package logging configures the process-wide leveled logger.
*/
package logging

import (
	"os"
	"strings"

	"github.com/phuslu/log"
)

// Init sets up the default logger with the given level string.
// Unknown level strings fall back to info.
func Init(level string) {
	log.DefaultLogger = log.Logger{
		Level:      ParseLevel(level),
		TimeFormat: "15:04:05",
		Writer: &log.ConsoleWriter{
			Writer:         os.Stderr,
			EndWithMessage: true,
		},
	}
}

// ParseLevel converts a string ("debug", "info", "warn", "error") to a log level.
func ParseLevel(s string) log.Level {
	switch strings.ToLower(s) {
	case "debug":
		return log.DebugLevel
	case "warn", "warning":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}
