package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"focusflow/internal/core/model"
)

const (
	configDirName    = ".focusflow"
	settingsFileName = "config.json"
)

type jsonSettings struct {
	WorkMinutes  *int    `json:"work_minutes,omitempty"`
	BreakMinutes *int    `json:"break_minutes,omitempty"`
	Theme        *string `json:"theme,omitempty"`
}

// LoadSettings reads user settings from the per-user JSON file. It always
// returns usable settings: on the first run the file is created with
// defaults, and any read or parse failure falls back to defaults without
// rewriting the file. The returned error is advisory, for logging only.
func LoadSettings() (model.Settings, error) {
	settingsPath, err := resolveSettingsPath()
	if err != nil {
		return model.DefaultSettings(), err
	}
	return loadSettingsFrom(settingsPath)
}

// SaveSettings writes user settings to the per-user JSON file. Best-effort;
// callers log failures and move on.
func SaveSettings(settings model.Settings) error {
	settingsPath, err := resolveSettingsPath()
	if err != nil {
		return err
	}
	return saveSettingsTo(settingsPath, settings)
}

func loadSettingsFrom(settingsPath string) (model.Settings, error) {
	settings := model.DefaultSettings()

	rawData, err := os.ReadFile(settingsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			// First-ever run: persist the defaults so the other
			// front-end sees the same file.
			if saveErr := saveSettingsTo(settingsPath, settings); saveErr != nil {
				return settings, saveErr
			}
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData jsonSettings
	if err := json.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings json: %w", err)
	}

	applyJSONSettings(&settings, fileData)
	return settings, nil
}

func saveSettingsTo(settingsPath string, settings model.Settings) error {
	if err := os.MkdirAll(filepath.Dir(settingsPath), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	workMinutes := settings.WorkMinutes
	breakMinutes := settings.BreakMinutes
	theme := string(settings.Theme)
	fileData := jsonSettings{
		WorkMinutes:  &workMinutes,
		BreakMinutes: &breakMinutes,
		Theme:        &theme,
	}

	serialized, err := json.MarshalIndent(fileData, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal settings json: %w", err)
	}

	if err := os.WriteFile(settingsPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}

func resolveSettingsPath() (string, error) {
	configDir, err := resolveConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, settingsFileName), nil
}

func resolveConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve user home dir: %w", err)
	}
	return filepath.Join(homeDir, configDirName), nil
}

func applyJSONSettings(settings *model.Settings, fileData jsonSettings) {
	if fileData.WorkMinutes != nil && *fileData.WorkMinutes > 0 {
		settings.WorkMinutes = *fileData.WorkMinutes
	}
	if fileData.BreakMinutes != nil && *fileData.BreakMinutes > 0 {
		settings.BreakMinutes = *fileData.BreakMinutes
	}
	if fileData.Theme != nil {
		if theme := model.Theme(*fileData.Theme); theme.Valid() {
			settings.Theme = theme
		}
	}
}
