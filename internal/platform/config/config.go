package config

import (
	"os"
)

// Server captures HTTP server level configuration.
type Server struct {
	Addr string
	// DefaultZone names the zone used when a request does not pick one.
	// Accepts a registry name or an offset literal.
	DefaultZone string
	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	addr := os.Getenv("CHRONO_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	defaultZone := os.Getenv("CHRONO_DEFAULT_ZONE")
	if defaultZone == "" {
		defaultZone = "UTC"
	}

	logLevel := os.Getenv("CHRONO_LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	return Server{
		Addr:        addr,
		DefaultZone: defaultZone,
		LogLevel:    logLevel,
	}
}
