package main

import (
	"os"

	"github.com/go-httpsig/httpsig/internal/logger"
)

var verbose bool

// newCLILogger returns a logger bound to --verbose: Info-and-above when
// quiet, Debug-and-above when verbose. Key material is never passed to it;
// only operation metadata (algorithm, label, keyid, component names) is.
func newCLILogger() logger.Logger {
	level := logger.InfoLevel
	if verbose {
		level = logger.DebugLevel
	}
	return logger.NewLogger(os.Stderr, level)
}
