package cmd

import (
	"fmt"

	"github.com/renato0307/galho/internal/version"
)

// VersionCmd prints build information
type VersionCmd struct{}

// Run executes the version command
func (v *VersionCmd) Run() error {
	fmt.Println(version.Info())
	return nil
}
