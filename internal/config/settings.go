package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/json"
	koanftoml "github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix is the prefix of environment variables that override settings
const EnvPrefix = "GALHO_"

// Output formats
const (
	FormatJSON  = "json"
	FormatTable = "table"
	FormatYAML  = "yaml"
)

// Config file names searched in ConfigDir, in order
var configFileNames = []string{"config.toml", "config.json"}

// Settings is the effective configuration after layering defaults, the
// config file and GALHO_* environment variables
type Settings struct {
	BackgroundRemoval bool   `koanf:"background_removal" toml:"background_removal" json:"background_removal" yaml:"background_removal"`
	Concurrency       int    `koanf:"concurrency" toml:"concurrency" json:"concurrency" yaml:"concurrency" validate:"min=1,max=64"`
	DataDir           string `koanf:"data_dir" toml:"data_dir" json:"data_dir" yaml:"data_dir" validate:"required"`
	Debug             bool   `koanf:"debug" toml:"debug" json:"debug" yaml:"debug"`
	DefaultBranch     string `koanf:"default_branch" toml:"default_branch" json:"default_branch" yaml:"default_branch" validate:"omitempty,excludesall= ~^:?*["`
	Format            string `koanf:"format" toml:"format" json:"format" yaml:"format" validate:"oneof=table json yaml"`
	Journal           bool   `koanf:"journal" toml:"journal" json:"journal" yaml:"journal"`
	MaxLogFiles       int    `koanf:"max_log_files" toml:"max_log_files" json:"max_log_files" yaml:"max_log_files" validate:"min=0"`
}

// Defaults returns the built-in settings as koanf keys
func Defaults() map[string]any {
	return map[string]any{
		"background_removal": true,
		"concurrency":        8,
		"data_dir":           DefaultDataDir(),
		"debug":              false,
		"default_branch":     "",
		"format":             FormatTable,
		"journal":            true,
		"max_log_files":      100,
	}
}

// Load builds the effective settings. An explicit path must exist; with
// no path the first config file found in ConfigDir is used, if any.
// It returns the file actually loaded, empty when none.
func Load(path string) (*Settings, string, error) {
	k := koanf.New(".")

	for key, value := range Defaults() {
		if err := k.Set(key, value); err != nil {
			return nil, "", fmt.Errorf("failed to set default %s: %w", key, err)
		}
	}

	source, err := findConfigFile(path)
	if err != nil {
		return nil, "", err
	}
	if source != "" {
		if err := k.Load(file.Provider(source), parserFor(source)); err != nil {
			return nil, "", fmt.Errorf("failed to load config %s: %w", source, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envTransform), nil); err != nil {
		return nil, "", fmt.Errorf("failed to load environment: %w", err)
	}

	var settings Settings
	if err := k.Unmarshal("", &settings); err != nil {
		return nil, "", fmt.Errorf("invalid config: %w", err)
	}

	if err := validator.New().Struct(settings); err != nil {
		return nil, "", fmt.Errorf("config validation failed: %w", err)
	}

	settings.DataDir = ExpandPath(settings.DataDir)
	return &settings, source, nil
}

func findConfigFile(path string) (string, error) {
	if path != "" {
		path = ExpandPath(path)
		if _, err := os.Stat(path); err != nil {
			return "", fmt.Errorf("config file: %w", err)
		}
		return path, nil
	}

	dir := ConfigDir()
	for _, name := range configFileNames {
		candidate := filepath.Join(dir, name)
		_, err := os.Stat(candidate)
		if err == nil {
			return candidate, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return "", fmt.Errorf("config file: %w", err)
		}
	}
	return "", nil
}

func parserFor(path string) koanf.Parser {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return json.Parser()
	}
	return koanftoml.Parser()
}

// envTransform maps GALHO_DEFAULT_BRANCH to default_branch
func envTransform(s string) string {
	return strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
}

// DefaultConfigPath returns where a new config file would be created
func DefaultConfigPath() string {
	return filepath.Join(ConfigDir(), configFileNames[0])
}
