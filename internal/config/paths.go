package config

import (
	"os"
	"path/filepath"
)

// EnvHome overrides the directory holding config and data
const EnvHome = "GALHO_HOME"

// ConfigDir returns $GALHO_HOME, else $XDG_CONFIG_HOME/galho, else ~/.config/galho
func ConfigDir() string {
	if home := os.Getenv(EnvHome); home != "" {
		return ExpandPath(home)
	}
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "galho")
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".galho"
	}
	return filepath.Join(homeDir, ".config", "galho")
}

// DefaultDataDir returns $GALHO_HOME, else $XDG_DATA_HOME/galho, else ~/.local/share/galho
func DefaultDataDir() string {
	if home := os.Getenv(EnvHome); home != "" {
		return ExpandPath(home)
	}
	if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
		return filepath.Join(xdg, "galho")
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ".galho"
	}
	return filepath.Join(homeDir, ".local", "share", "galho")
}

// JournalPath returns the removal journal database inside dataDir
func JournalPath(dataDir string) string {
	return filepath.Join(dataDir, "journal.db")
}

// ExpandPath expands a leading ~ to the home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
