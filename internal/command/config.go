package command

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/madrisan/HadCRUT5/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "View or initialize the hadcrut5 configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "dataset_version: %s\n", cfg.DatasetVersion)
		fmt.Fprintf(cmd.OutOrStdout(), "base_url: %s\n", cfg.BaseURL)
		fmt.Fprintf(cmd.OutOrStdout(), "version_path: %s\n", cfg.VersionPath)
		fmt.Fprintf(cmd.OutOrStdout(), "cache_dir: %s\n", cfg.CacheDir)
		fmt.Fprintf(cmd.OutOrStdout(), "http_timeout: %s\n", cfg.HTTPTimeout)
		fmt.Fprintf(cmd.OutOrStdout(), "log_level: %s\n", cfg.LogLevel)
		fmt.Fprintf(cmd.OutOrStdout(), "log_format: %s\n", cfg.LogFormat)
		if cfg.MetricsFile != "" {
			fmt.Fprintf(cmd.OutOrStdout(), "metrics_file: %s\n", cfg.MetricsFile)
		}
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the effective configuration to a config file",
	Long: `Writes the current effective configuration (defaults, config file, and
environment overrides merged) as YAML. The target is --config when given,
$HOME/.hadcrut5.yaml otherwise.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := config.Load(cfgFile)
		if err != nil {
			return err
		}
		if err := config.Save(cfg, cfgFile); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "configuration saved")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
}
