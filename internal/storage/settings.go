package storage

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"

	"github.com/example/n5bot/pkg/models"
)

// LoadSettings reads the settings document, falling back to defaults
// when the file is absent or unreadable
func LoadSettings(path string) models.Settings {
	raw, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			log.Printf("storage: cannot read %s: %v", path, err)
		}
		return models.DefaultSettings()
	}

	settings := models.DefaultSettings()
	if err := json.Unmarshal(raw, &settings); err != nil {
		log.Printf("storage: malformed settings file %s, using defaults: %v", path, err)
		return models.DefaultSettings()
	}
	return settings
}

// SaveSettings rewrites the settings document
func SaveSettings(path string, settings models.Settings) error {
	raw, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, raw, 0644)
}
