package config

import (
	"github.com/pelletier/go-toml/v2"
)

// MarshalTOML renders settings as a config file
func MarshalTOML(s *Settings) ([]byte, error) {
	return toml.Marshal(s)
}
