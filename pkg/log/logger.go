// Package log configures slog for the scry CLI and provides colored
// user-facing messages on stderr.
package log

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// ANSI color codes for terminal output
const (
	// Base ANSI escape sequence
	ANSIEscape = "\033["

	// Color codes
	ColorReset       = ANSIEscape + "0m"
	ColorBold        = ANSIEscape + "1m"
	ColorRed         = ANSIEscape + "31m"
	ColorGreen       = ANSIEscape + "32m"
	ColorYellow      = ANSIEscape + "33m"
	ColorCyan        = ANSIEscape + "36m"
	ColorBrightRed   = ANSIEscape + "91m"
	ColorBrightGreen = ANSIEscape + "92m"
	ColorOrange      = ANSIEscape + "38;5;208m"

	// Combined styles
	ColorBoldCyan = ANSIEscape + "1;36m"
)

var (
	logger        *slog.Logger
	logFileHandle *os.File
	silentMode    bool
)

// UserMessage prints a plain message to stderr without any prefix or color.
// No output if silent mode is enabled.
func UserMessage(format string, args ...interface{}) {
	if !silentMode {
		fmt.Fprint(os.Stderr, fmt.Sprintf(format, args...))
	}
}

// UserWarn prints a warning message to stderr with orange color.
// No output if silent mode is enabled.
func UserWarn(format string, args ...interface{}) {
	if !silentMode {
		message := fmt.Sprintf(format, args...)
		fmt.Fprintf(os.Stderr, "\n%sWarning: %s\n%s", ColorOrange, message, ColorReset)
	}
}

// UserError prints an error message to stderr with bright red color.
// Errors print even in silent mode.
func UserError(format string, args ...interface{}) {
	message := fmt.Sprintf(format, args...)
	fmt.Fprintf(os.Stderr, "\n%sError: %s\n%s", ColorBrightRed, message, ColorReset)
}

// SetupLogger configures slog based on flags.
// console: enables logging to stdout
// logFile: enables logging to file
// debug: changes log level to Debug (only valid with console or logFile)
// logPath: path to the log file (required if logFile is true)
func SetupLogger(console, logFile, debug bool, logPath string) error {
	var handlers []slog.Handler

	logLevel := slog.LevelInfo
	if debug {
		logLevel = slog.LevelDebug
	}

	if logFile {
		if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %v", err)
		}
		file, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %v", err)
		}
		logFileHandle = file
		handlers = append(handlers, slog.NewTextHandler(file, &slog.HandlerOptions{
			Level: logLevel,
		}))
	}

	if console {
		handlers = append(handlers, slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: logLevel,
		}))
	}

	switch len(handlers) {
	case 0:
		// No logging - discard everything
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	case 1:
		logger = slog.New(handlers[0])
	default:
		logger = slog.New(&multiHandler{handlers: handlers})
	}

	slog.SetDefault(logger)
	return nil
}

// CloseLogger closes the log file if open.
func CloseLogger() {
	if logFileHandle != nil {
		_ = logFileHandle.Close()
		logFileHandle = nil
	}
}

// SetSilent sets the silent mode flag for user messages.
func SetSilent(silent bool) {
	silentMode = silent
}

// IsSilent reports whether silent mode is enabled.
func IsSilent() bool {
	return silentMode
}

// multiHandler fans a record out to multiple destinations.
type multiHandler struct {
	handlers []slog.Handler
}

func (h *multiHandler) Enabled(ctx context.Context, level slog.Level) bool {
	for _, handler := range h.handlers {
		if handler.Enabled(ctx, level) {
			return true
		}
	}
	return false
}

func (h *multiHandler) Handle(ctx context.Context, r slog.Record) error {
	for _, handler := range h.handlers {
		if err := handler.Handle(ctx, r); err != nil {
			return err
		}
	}
	return nil
}

func (h *multiHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithAttrs(attrs)
	}
	return &multiHandler{handlers: newHandlers}
}

func (h *multiHandler) WithGroup(name string) slog.Handler {
	newHandlers := make([]slog.Handler, len(h.handlers))
	for i, handler := range h.handlers {
		newHandlers[i] = handler.WithGroup(name)
	}
	return &multiHandler{handlers: newHandlers}
}
