package model

import "time"

// Theme selects the visual theme of the front-ends.
type Theme string

const (
	ThemeDark  Theme = "dark"
	ThemeLight Theme = "light"
)

// Valid reports whether the theme is one of the known values.
func (theme Theme) Valid() bool {
	return theme == ThemeDark || theme == ThemeLight
}

// Settings defines editable user preferences shared by both front-ends.
type Settings struct {
	WorkMinutes  int
	BreakMinutes int
	Theme        Theme
}

// DefaultSettings returns default settings for FocusFlow.
func DefaultSettings() Settings {
	return Settings{
		WorkMinutes:  25,
		BreakMinutes: 5,
		Theme:        ThemeDark,
	}
}

// TimerConfig converts settings to the durations the timer runs on.
// The timer trusts these values; bounds are enforced at the UI layer.
func (settings Settings) TimerConfig() TimerConfig {
	return TimerConfig{
		Work:  time.Duration(settings.WorkMinutes) * time.Minute,
		Break: time.Duration(settings.BreakMinutes) * time.Minute,
	}
}

// TimerConfig contains the phase durations for the timer state machine.
type TimerConfig struct {
	Work  time.Duration
	Break time.Duration
}
