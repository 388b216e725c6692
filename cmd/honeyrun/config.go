package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/honeyrun/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration honeyrun would play with, as YAML: the config
file that was found (or the built-in defaults) with --difficulty and --save
applied. Redirect it to a file to start a custom config.

Config files are searched in this order:
  --config <path>
  ~/.honeyrun/config.yaml
  ./configs/honeyrun.yaml
  built-in defaults

Examples:
  honeyrun config
  honeyrun config --difficulty hard > ~/.honeyrun/config.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	_, err = cmd.OutOrStdout().Write(data)
	return err
}
