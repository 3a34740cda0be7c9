package tint

import "time"

// DefaultWatchDebounce is the default debounce interval for theme file
// change events. This can be overridden via WatchOptions.Debounce.
const DefaultWatchDebounce = 500 * time.Millisecond

// WatchOptions configures theme file watching behavior.
type WatchOptions struct {
	// Debounce sets the debounce interval for file change events.
	// Multiple rapid file modifications within this window trigger only
	// a single reload. Zero means use DefaultWatchDebounce (500ms).
	Debounce time.Duration

	// Logger sets a custom logger for debug/info messages.
	// If nil, no logging is performed.
	Logger Logger

	// OnError receives reload callback failures. If nil, failures are
	// only logged. The watcher keeps running either way.
	OnError func(error)
}

// DefaultWatchOptions returns WatchOptions with sensible defaults.
func DefaultWatchOptions() WatchOptions {
	return WatchOptions{
		Debounce: 0, // Use DefaultWatchDebounce
	}
}

// Logger interface for custom logging.
// It follows the slog-style signature for compatibility with Go's structured logging.
type Logger interface {
	// Debug logs a debug-level message with optional key-value pairs.
	Debug(msg string, args ...any)
	// Info logs an info-level message with optional key-value pairs.
	Info(msg string, args ...any)
	// Warn logs a warning-level message with optional key-value pairs.
	Warn(msg string, args ...any)
	// Error logs an error-level message with optional key-value pairs.
	Error(msg string, args ...any)
}
