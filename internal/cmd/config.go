package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/renato0307/galho/internal/config"
	"github.com/renato0307/galho/internal/render"
)

// ConfigCmd inspects configuration
type ConfigCmd struct {
	Keys ConfigKeysCmd `cmd:"keys" help:"List config keys, defaults and environment variables"`
	Path ConfigPathCmd `cmd:"path" help:"Show the config file in use"`
	Show ConfigShowCmd `cmd:"show" help:"Show the effective configuration" default:"1"`
}

// ConfigShowCmd prints the effective settings
type ConfigShowCmd struct {
	Format string `help:"Output format: table (TOML), json or yaml" short:"o" default:"table"`
}

// Run executes the show command
func (s *ConfigShowCmd) Run(cli *CLI) error {
	if s.Format == config.FormatTable {
		data, err := config.MarshalTOML(cli.Settings)
		if err != nil {
			return fmt.Errorf("failed to encode settings: %w", err)
		}
		_, err = os.Stdout.Write(data)
		return err
	}

	renderer, err := render.New(os.Stdout, s.Format)
	if err != nil {
		return err
	}
	return renderer.Value(cli.Settings)
}

// ConfigPathCmd prints the config file location
type ConfigPathCmd struct{}

// Run executes the path command
func (p *ConfigPathCmd) Run(cli *CLI) error {
	if cli.SettingsSource != "" {
		fmt.Println(cli.SettingsSource)
		return nil
	}
	fmt.Printf("%s (not found, using defaults)\n", config.DefaultConfigPath())
	return nil
}

// ConfigKeysCmd lists the available settings
type ConfigKeysCmd struct {
	Format string `help:"Output format: table, json or yaml" short:"o" default:"table"`
}

// Run executes the keys command
func (k *ConfigKeysCmd) Run() error {
	infos := config.Describe()

	if k.Format != config.FormatTable {
		renderer, err := render.New(os.Stdout, k.Format)
		if err != nil {
			return err
		}
		return renderer.Value(infos)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tDEFAULT\tENV\tRULE")
	for _, info := range infos {
		fmt.Fprintf(w, "%s\t%v\t%s\t%s\n", info.Key, info.Default, info.Env, info.Rule)
	}
	return w.Flush()
}
