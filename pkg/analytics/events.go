package analytics

import (
	"github.com/posthog/posthog-go"
)

// Event name constants
const (
	EventFortuneShown   = "cli_fortune_shown"   // Tracks a rendered text fortune, with category and color mode
	EventArtShown       = "cli_art_shown"       // Tracks the rare ASCII art render
	EventVersionCommand = "cli_version_command" // Tracks when users check the version
	EventHelpCommand    = "cli_help_command"    // Tracks when users view help
)

// Properties is a type alias for event properties to avoid exposing PostHog types
type Properties map[string]interface{}

// TrackEvent sends a generic event to PostHog
func TrackEvent(eventName string, properties Properties) {
	if !IsEnabled() {
		return
	}

	distinctID := GetDistinctID()

	phProperties := make(posthog.Properties)
	for k, v := range properties {
		phProperties[k] = v
	}

	// Always include CLI command and device ID
	phProperties["cli_command"] = GetCLICommand()
	phProperties["$device_id"] = distinctID
	phProperties["cli_version"] = GetCLIVersion()

	osPlatform, osArch := GetOSInfo()
	phProperties["os_platform"] = osPlatform
	phProperties["os_arch"] = osArch

	err := client.Enqueue(posthog.Capture{
		DistinctId:       distinctID,
		Event:            eventName,
		Properties:       phProperties,
		SendFeatureFlags: posthog.SendFeatureFlagsBool(false),
	})
	if err != nil {
		// Silently fail - analytics should not break the app
		return
	}
}
