package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/renato0307/galho/internal/config"
	"github.com/renato0307/galho/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	ConfigFile  string           `help:"Path to a config file (TOML or JSON)" name:"config" short:"c" type:"path"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"100"`
	Version     kong.VersionFlag `help:"Show version information"`

	Config         ConfigCmd         `cmd:"config" help:"Inspect configuration"`
	History        HistoryCmd        `cmd:"history" help:"Show removed worktrees and branches"`
	InternalRemove InternalRemoveCmd `cmd:"internal-remove" help:"Run a scheduled removal" hidden:""`
	List           ListCmd           `cmd:"list" aliases:"ls" help:"List worktrees with their state" default:"1"`
	Remove         RemoveCmd         `cmd:"remove" aliases:"rm" help:"Remove worktrees and delete integrated branches"`
	VersionCmd     VersionCmd        `cmd:"version" help:"Show version information"`

	// Internal fields (not flags)
	Container      *Container       `kong:"-"`
	Settings       *config.Settings `kong:"-"`
	SettingsSource string           `kong:"-"`
}

// AfterApply loads settings, initializes logging and wires the container.
// Precedence: CLI flags > GALHO_* env vars > config file > defaults.
func (c *CLI) AfterApply() error {
	settings, source, err := config.Load(c.ConfigFile)
	if err != nil {
		return err
	}
	c.Settings = settings
	c.SettingsSource = source

	if settings.Debug {
		c.Debug = true
	}
	if c.MaxLogFiles == logging.DefaultMaxLogFiles {
		c.MaxLogFiles = settings.MaxLogFiles
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Background removals inherit these and append to the same log file
	if c.Debug || c.DebugFile != "" {
		os.Setenv(logging.EnvDebug, "1")
		if logFilePath != "" {
			os.Setenv(logging.EnvDebugFile, logFilePath)
		}
	}
	if c.MaxLogFiles != logging.DefaultMaxLogFiles {
		os.Setenv(logging.EnvMaxLogFiles, strconv.Itoa(c.MaxLogFiles))
	}
	// The child does not see --config; keep its journal and locks in the same place
	if c.ConfigFile != "" {
		os.Setenv(config.EnvPrefix+"DATA_DIR", settings.DataDir)
	}

	logging.Logger.Debug("Settings loaded",
		"source", source,
		"data_dir", settings.DataDir,
		"background_removal", settings.BackgroundRemoval,
		"journal", settings.Journal)

	// Container is created after logging so gorm's logger has somewhere to write
	container, err := NewContainer(settings)
	if err != nil {
		return fmt.Errorf("failed to initialize container: %w", err)
	}
	c.Container = container

	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// outputFormat picks the flag value when given, else the configured format
func (c *CLI) outputFormat(flag string) string {
	if flag != "" {
		return flag
	}
	if c.Settings != nil {
		return c.Settings.Format
	}
	return config.FormatTable
}

// workingDir is the directory commands operate from
func workingDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get working directory: %w", err)
	}
	return dir, nil
}
