package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"slices"

	"github.com/inovacc/citynews/internal/common"
	"github.com/inovacc/citynews/internal/config"
	"github.com/inovacc/citynews/internal/logging"
	"github.com/inovacc/citynews/internal/model"
	"github.com/spf13/cobra"
)

var resetYes bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage citynews configuration",
	Long: `Commands for managing the citynews configuration file.

Keys: base_url, timeout, log_level, log_format.
Environment variables (CITYNEWS_BASE_URL, ...) and flags override the file.`,
	// A broken config file must not prevent fixing it
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		defaults := model.DefaultConfig()
		appLogger = logging.New(os.Stderr, defaults.LogLevel, defaults.LogFormat)

		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}

		cfg, err := config.Load(path)
		if err != nil {
			return err
		}

		items := make(map[string]string, len(config.Keys)+1)
		for _, key := range config.Keys {
			items[key], _ = config.Get(cfg, key)
		}

		items[config.KeyBaseURL] = common.RedactURL(cfg.BaseURL)
		items["file"] = path

		printInfoBox(cmd.OutOrStdout(), "citynews configuration", items, append(slices.Clone(config.Keys), "file"))

		return nil
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value in the config file",
	Example: `  citynews config set base_url https://news.example.com
  citynews config set timeout 10s`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}

		cfg := model.DefaultConfig()
		if err := config.LoadFile(path, &cfg); err != nil {
			appLogger.Warn("ignoring unreadable config file", slog.String("path", path), slog.String("error", err.Error()))

			cfg = model.DefaultConfig()
		}

		if err := config.Set(&cfg, args[0], args[1]); err != nil {
			return err
		}

		if err := config.Save(path, cfg); err != nil {
			return err
		}

		value, _ := config.Get(cfg, args[0])
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s = %s\n", args[0], value)

		return nil
	},
}

var configResetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset the config file to defaults",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}

		if !resetYes && !promptConfirm(cmd.InOrStdin(), cmd.OutOrStdout(), fmt.Sprintf("Reset %s to defaults? [y/N]: ", path)) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")

			return nil
		}

		if err := config.Save(path, model.DefaultConfig()); err != nil {
			return err
		}

		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Configuration reset to defaults.")

		return nil
	},
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Print the config file path",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := resolveConfigPath()
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), path)

		return err
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd, configSetCmd, configResetCmd, configPathCmd)
	configResetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "do not ask for confirmation")
}
