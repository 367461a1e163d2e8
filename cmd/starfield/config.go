package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/starfield/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration the other commands would use, after the
search order, --preset and --fps are applied.

Search order:
  --config path
  ~/.starfield/starfield.yaml
  ./configs/starfield.yaml
  built-in defaults

Examples:
  starfield config
  starfield config --preset dense
  starfield config --defaults > ~/.starfield/starfield.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the commented built-in defaults")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	if flagDefaults {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	data, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	if path := config.Resolve(flagConfig); path != "" {
		cmd.PrintErrf("# from %s\n", path)
	}
	_, err = out.Write(data)
	return err
}
