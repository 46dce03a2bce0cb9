package analytics

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
)

// analyticsIDFile is the persisted anonymous analytics configuration.
type analyticsIDFile struct {
	AnalyticsID string    `json:"analytics_id"`
	CreatedAt   time.Time `json:"created_at"`
	Source      string    `json:"source"`
}

// getAnalyticsIDPath returns the path to ~/.scry/analytics-id.json
func getAnalyticsIDPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".scry", "analytics-id.json"), nil
}

// loadOrCreateAnalyticsID loads the persisted anonymous analytics ID,
// generating and saving a fresh UUID on first use.
func loadOrCreateAnalyticsID() (string, error) {
	filePath, err := getAnalyticsIDPath()
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(filePath)
	if err == nil {
		var stored analyticsIDFile
		if err := json.Unmarshal(data, &stored); err != nil {
			return "", fmt.Errorf("failed to parse analytics file: %w", err)
		}
		return stored.AnalyticsID, nil
	}
	if !os.IsNotExist(err) {
		return "", fmt.Errorf("failed to read analytics file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(filePath), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory: %w", err)
	}

	newID := uuid.New().String()
	stored := &analyticsIDFile{
		AnalyticsID: newID,
		CreatedAt:   time.Now().UTC(),
		Source:      "scry-cli",
	}

	data, err = json.MarshalIndent(stored, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal analytics data: %w", err)
	}
	if err := os.WriteFile(filePath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write analytics file: %w", err)
	}

	return newID, nil
}
