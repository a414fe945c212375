package utils

import (
	"log"
	"sync/atomic"
)

var verbose atomic.Bool

// SetVerbose toggles verbose logging
func SetVerbose(v bool) {
	verbose.Store(v)
}

// IsVerbose reports whether verbose logging is on
func IsVerbose() bool {
	return verbose.Load()
}

// Verbose logs only when verbose logging is on
func Verbose(format string, args ...any) {
	if verbose.Load() {
		log.Printf("[VERBOSE] "+format, args...)
	}
}

// Info always logs
func Info(format string, args ...any) {
	log.Printf("[INFO] "+format, args...)
}

// Error always logs; the engine's diagnostic channel ends up here
func Error(format string, args ...any) {
	log.Printf("[ERROR] "+format, args...)
}
