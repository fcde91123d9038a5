package logging

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"
)

// LogLevels lists the accepted --log-level values, in severity order.
// These are the connector's own level names, so the same string is reused
// verbatim in the systemd environment override.
var LogLevels = []string{"debug", "info", "warning", "error", "critical"}

// SetupLogger configures a logger for the given connector log level.
// Output is colored, timestamped text on stdout.
func SetupLogger(level string) *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:     true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	logger.SetLevel(toLogrusLevel(level))
	return logger
}

// ValidLevel reports whether level is one of the accepted log levels.
func ValidLevel(level string) bool {
	for _, l := range LogLevels {
		if l == level {
			return true
		}
	}
	return false
}

// ParseLevel normalizes and validates a user-supplied log level.
func ParseLevel(level string) (string, error) {
	normalized := strings.ToLower(strings.TrimSpace(level))
	if !ValidLevel(normalized) {
		return "", fmt.Errorf("invalid log level %q, must be one of: %s", level, strings.Join(LogLevels, ", "))
	}
	return normalized, nil
}

func toLogrusLevel(level string) logrus.Level {
	switch level {
	case "debug":
		return logrus.DebugLevel
	case "warning":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "critical":
		return logrus.FatalLevel
	default:
		return logrus.InfoLevel
	}
}
