package files

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/gifblock/gifblock-cli/pkg/models"
)

const (
	GifblockDir  = ".gifblock"
	SettingsFile = "settings.yaml"
	DocumentFile = "document.yaml"
)

// InitProjectStructure creates the .gifblock directory and a default
// settings file if none exists yet.
func InitProjectStructure() error {
	if err := os.MkdirAll(GifblockDir, 0755); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", GifblockDir, err)
	}

	settingsPath := filepath.Join(GifblockDir, SettingsFile)
	if _, err := os.Stat(settingsPath); os.IsNotExist(err) {
		if err := WriteSettings(models.DefaultSettings()); err != nil {
			return err
		}
	}
	return nil
}

// ReadSettings loads settings from .gifblock/settings.yaml. A missing
// file yields the defaults, not an error.
func ReadSettings() (*models.Settings, error) {
	content, err := os.ReadFile(filepath.Join(GifblockDir, SettingsFile))
	if os.IsNotExist(err) {
		return models.DefaultSettings(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read settings: %w", err)
	}

	settings := models.DefaultSettings()
	if err := yaml.Unmarshal(content, settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings: %w", err)
	}
	return settings, nil
}

// WriteSettings saves settings to .gifblock/settings.yaml.
func WriteSettings(settings *models.Settings) error {
	content, err := yaml.Marshal(settings)
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}
	return WriteFile(filepath.Join(GifblockDir, SettingsFile), content)
}

// LogFilePath returns the absolute-ish path diagnostics are written
// to, honoring the settings override.
func LogFilePath(settings *models.Settings) string {
	name := settings.Log.File
	if name == "" {
		name = "gifblock.log"
	}
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(GifblockDir, name)
}

// WriteFile writes content to a path, creating parent directories as
// needed.
func WriteFile(path string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	if err := os.WriteFile(path, content, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}
