package main

import (
	"strings"
	"testing"
)

func TestValidateFlags(t *testing.T) {
	// Save original global flag values
	origConsole := console
	origSilent := silent
	origDebug := debug
	origLogFile := logFile

	// Restore original values after test
	defer func() {
		console = origConsole
		silent = origSilent
		debug = origDebug
		logFile = origLogFile
	}()

	tests := []struct {
		name        string
		console     bool
		silent      bool
		debug       bool
		logFile     bool
		expectError bool
	}{
		{
			name:        "no flags set - valid",
			expectError: false,
		},
		{
			name:        "console and silent together - mutually exclusive error",
			console:     true,
			silent:      true,
			expectError: true,
		},
		{
			name:        "console alone - valid",
			console:     true,
			expectError: false,
		},
		{
			name:        "silent alone - valid",
			silent:      true,
			expectError: false,
		},
		{
			name:        "debug without console or log - error",
			debug:       true,
			expectError: true,
		},
		{
			name:        "debug with console - valid",
			debug:       true,
			console:     true,
			expectError: false,
		},
		{
			name:        "debug with log - valid",
			debug:       true,
			logFile:     true,
			expectError: false,
		},
		{
			name:        "debug with silent only - error",
			debug:       true,
			silent:      true,
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			console = tt.console
			silent = tt.silent
			debug = tt.debug
			logFile = tt.logFile

			err := validateFlags()

			if tt.expectError && err == nil {
				t.Errorf("validateFlags() expected error for console=%v, silent=%v, debug=%v, logFile=%v, got nil",
					tt.console, tt.silent, tt.debug, tt.logFile)
			}
			if !tt.expectError && err != nil {
				t.Errorf("validateFlags() unexpected error for console=%v, silent=%v, debug=%v, logFile=%v: %v",
					tt.console, tt.silent, tt.debug, tt.logFile, err)
			}
		})
	}
}

func TestValidateCategory(t *testing.T) {
	tests := []struct {
		name        string
		category    string
		expectError bool
	}{
		{
			name:        "all",
			category:    "all",
			expectError: false,
		},
		{
			name:        "fun",
			category:    "fun",
			expectError: false,
		},
		{
			name:        "facts",
			category:    "facts",
			expectError: false,
		},
		{
			name:        "valentines",
			category:    "valentines",
			expectError: false,
		},
		{
			name:        "art",
			category:    "art",
			expectError: false,
		},
		{
			name:        "unknown category",
			category:    "horoscopes",
			expectError: true,
		},
		{
			name:        "empty string",
			category:    "",
			expectError: true,
		},
		{
			name:        "uppercase not accepted",
			category:    "FUN",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateCategory(tt.category)

			if tt.expectError && err == nil {
				t.Errorf("validateCategory(%q) expected error, got nil", tt.category)
			}
			if !tt.expectError && err != nil {
				t.Errorf("validateCategory(%q) unexpected error: %v", tt.category, err)
			}
		})
	}
}

func TestValidateCategoryErrorListsOptions(t *testing.T) {
	err := validateCategory("bogus")
	if err == nil {
		t.Fatal("validateCategory(\"bogus\") expected error, got nil")
	}
	for _, want := range []string{"all", "fun", "facts", "valentines", "art"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error message %q missing category %q", err.Error(), want)
		}
	}
}

func TestCategoryNames(t *testing.T) {
	names := categoryNames()
	if len(names) != 5 {
		t.Fatalf("categoryNames() returned %d names, want 5", len(names))
	}
}
