// Package analytics sends anonymous usage events to PostHog. A dev build has
// no API key, which disables the client entirely.
package analytics

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"os"
	"runtime"
	"time"

	"github.com/posthog/posthog-go"
)

var (
	client posthog.Client

	// Injected at build time via ldflags. Empty in dev builds (analytics disabled).
	apiKey = ""

	cliCommand string // Store the CLI command globally
	distinctID string // Store the anonymous analytics ID
	cliVersion string // Store the CLI version globally
)

// slogAdapter adapts PostHog's logger interface to use slog at DEBUG level.
// Even errors from PostHog (like API failures) are logged at DEBUG level
// since they represent analytics infrastructure issues, not application errors.
type slogAdapter struct{}

func (s *slogAdapter) Logf(format string, args ...interface{}) {
	slog.Debug("posthog: "+format, args...)
}

func (s *slogAdapter) Errorf(format string, args ...interface{}) {
	slog.Debug("posthog error: "+format, args...)
}

func (s *slogAdapter) Debugf(format string, args ...interface{}) {
	slog.Debug("posthog debug: "+format, args...)
}

func (s *slogAdapter) Warnf(format string, args ...interface{}) {
	slog.Debug("posthog warning: "+format, args...)
}

// Init initializes the PostHog analytics client
func Init(command string, version string) error {
	cliCommand = command
	cliVersion = version

	id, err := loadOrCreateAnalyticsID()
	if err != nil {
		// Hostname/username hash keeps tracking consistent when the ID file
		// cannot be used.
		distinctID = generateFallbackID()
	} else {
		distinctID = id
	}

	if apiKey == "" {
		// Analytics disabled if no API key
		return nil
	}

	client, _ = posthog.NewWithConfig(apiKey, posthog.Config{
		Interval:  100 * time.Millisecond, // Send events quickly (default is 5s)
		BatchSize: 1,                      // A one-shot command exits too fast for batching
		Logger:    &slogAdapter{},         // Route PostHog logs through slog at DEBUG level
	})
	return nil
}

// Close closes the PostHog client connection
func Close() error {
	if client != nil {
		return client.Close()
	}
	return nil
}

// Disable shuts analytics off for the rest of the process, used when the
// config file disables them after Init already ran.
func Disable() {
	if client != nil {
		_ = client.Close()
		client = nil
	}
}

// IsEnabled returns true if analytics is enabled
func IsEnabled() bool {
	return client != nil
}

// GetDistinctID returns the anonymous analytics ID
func GetDistinctID() string {
	return distinctID
}

// generateFallbackID generates a fallback ID from hostname and username
func generateFallbackID() string {
	hostname, _ := os.Hostname()
	username := os.Getenv("USER")

	hash := sha256.Sum256([]byte(hostname + "-" + username))
	return hex.EncodeToString(hash[:])
}

// GetCLICommand returns the stored CLI command
func GetCLICommand() string {
	return cliCommand
}

// GetCLIVersion returns the stored CLI version
func GetCLIVersion() string {
	return cliVersion
}

// GetOSInfo returns the platform and architecture identifiers
func GetOSInfo() (platform, arch string) {
	return runtime.GOOS, runtime.GOARCH
}
