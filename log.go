package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
)

// setupLog configures logging. By default logs are discarded; set
// KINDKEEPER_LOGFILE to capture them, and DEBUG=1 for debug level.
func setupLog() (func() error, error) {
	log.SetOutput(io.Discard)
	log.SetTimeFormat(time.Kitchen)

	if os.Getenv("DEBUG") != "" {
		log.SetLevel(log.DebugLevel)
	}

	logFile := os.Getenv("KINDKEEPER_LOGFILE")
	if logFile == "" {
		return func() error { return nil }, nil
	}

	f, err := os.OpenFile(logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("error setting up logging: %w", err)
	}
	log.SetOutput(f)
	return f.Close, nil
}
