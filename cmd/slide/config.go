package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-slide/internal/config"
)

var (
	flagConfigInit     bool
	flagConfigDefaults bool
	flagConfigForce    bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the puzzle configuration",
	Long: `Print the effective puzzle configuration as YAML.

The configuration is looked up in this order:
  --config <path>, ~/.slide/configs/slide.yaml, ./configs/slide.yaml, built-in defaults

Examples:
  slide config                 # Show the effective config
  slide config --defaults      # Show the built-in defaults
  slide config --init          # Write the effective config to ~/.slide/configs/slide.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigInit, "init", false, "Write the config to the user config directory")
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in default config")
	configCmd.Flags().BoolVar(&flagConfigForce, "force", false, "Overwrite an existing user config with --init")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if flagConfigDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, err := config.LoadSlide(flagConfig)
	if err != nil {
		return err
	}

	if flagConfigInit {
		path := config.UserConfigPath()
		if path == "" {
			return errors.New("cannot locate home directory")
		}
		if _, statErr := os.Stat(path); statErr == nil && !flagConfigForce {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		}
		if err := config.Write(path, cfg); err != nil {
			return err
		}
		fmt.Fprintf(out, "Wrote %s\n", path)
		return nil
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("config: cannot encode: %w", err)
	}
	_, err = out.Write(data)
	return err
}
