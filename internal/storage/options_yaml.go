package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const optionsFileName = "app.yaml"

// AppOptions are per-machine runtime options, separate from the user
// settings that the front-ends edit. The file is optional.
type AppOptions struct {
	ListenAddr   string
	TickInterval time.Duration
	ChimeCommand string
}

type yamlOptions struct {
	ListenAddr   string `yaml:"listen_addr"`
	TickSeconds  int    `yaml:"tick_seconds"`
	ChimeCommand string `yaml:"chime_command"`
}

// DefaultAppOptions returns the options used when app.yaml is absent.
func DefaultAppOptions() AppOptions {
	return AppOptions{
		ListenAddr:   "127.0.0.1:8642",
		TickInterval: time.Second,
	}
}

// LoadAppOptions reads runtime options from app.yaml in the config
// directory. A missing file yields defaults with no error.
func LoadAppOptions() (AppOptions, error) {
	configDir, err := resolveConfigDir()
	if err != nil {
		return DefaultAppOptions(), err
	}
	return loadAppOptionsFrom(filepath.Join(configDir, optionsFileName))
}

func loadAppOptionsFrom(optionsPath string) (AppOptions, error) {
	options := DefaultAppOptions()

	rawData, err := os.ReadFile(optionsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return options, nil
		}
		return options, fmt.Errorf("read options file: %w", err)
	}

	var fileData yamlOptions
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return options, fmt.Errorf("parse options yaml: %w", err)
	}

	if fileData.ListenAddr != "" {
		options.ListenAddr = fileData.ListenAddr
	}
	if fileData.TickSeconds > 0 {
		options.TickInterval = time.Duration(fileData.TickSeconds) * time.Second
	}
	options.ChimeCommand = fileData.ChimeCommand

	return options, nil
}
