package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/citynews/internal/application"
	"github.com/inovacc/citynews/internal/common"
	"github.com/inovacc/citynews/internal/config"
	"github.com/inovacc/citynews/internal/fetcher"
	"github.com/inovacc/citynews/internal/logging"
	"github.com/inovacc/citynews/internal/model"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

// Global flag values
var (
	configFile  string
	baseURL     string
	timeout     time.Duration
	logLevel    string
	logFormat   string
	metricsFile string
)

// Set up by the root PersistentPreRunE for every subcommand
var (
	appConfig  model.Config
	appLogger  = slog.Default()
	appMetrics = fetcher.NewMetrics()
)

var rootCmd = &cobra.Command{
	Use:   application.AppName,
	Short: "Browse cities and the local news reported for them",
	Long: `citynews is a terminal client for the city news backend.

It lists the cities the backend knows about and fetches the news article
published for a city you pick. On a terminal both views are interactive;
piped or with --json they print plain output suitable for scripts.`,
	Version:           application.Version,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
}

// Execute runs the root command and exits with status 1 on failure.
// SIGINT and SIGTERM cancel the command context.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)

	stop()

	if metricsFile != "" {
		if werr := appMetrics.WriteFile(metricsFile); werr != nil {
			appLogger.Warn("failed to write metrics", slog.String("path", metricsFile), slog.String("error", werr.Error()))
		}
	}

	if err != nil {
		var shown *shownError
		if !errors.As(err, &shown) {
			_, _ = fmt.Fprintln(os.Stderr, "Error:", err)
		}

		os.Exit(1)
	}
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configFile, "config", "", "config file (default is the application directory config.ini)")
	flags.StringVar(&baseURL, "base-url", "", "backend base URL (e.g. http://localhost:8081)")
	flags.DurationVar(&timeout, "timeout", 0, "request timeout, 0 disables it")
	flags.StringVar(&logLevel, "log-level", "", "log level: debug, info, warn or error")
	flags.StringVar(&logFormat, "log-format", "", "log format: text or json")
	flags.StringVar(&metricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")
}

// setup builds the effective configuration and the logger. Flags override
// the config file and the environment.
func setup(cmd *cobra.Command, _ []string) error {
	path, err := resolveConfigPath()
	if err != nil {
		return err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return err
	}

	overrides := []struct {
		flag  string
		key   string
		value func() string
	}{
		{"base-url", config.KeyBaseURL, func() string { return baseURL }},
		{"timeout", config.KeyTimeout, func() string { return timeout.String() }},
		{"log-level", config.KeyLogLevel, func() string { return logLevel }},
		{"log-format", config.KeyLogFormat, func() string { return logFormat }},
	}

	for _, o := range overrides {
		if !cmd.Flags().Changed(o.flag) {
			continue
		}

		if err := config.Set(&cfg, o.key, o.value()); err != nil {
			return fmt.Errorf("--%s: %w", o.flag, err)
		}
	}

	if metricsFile != "" {
		if metricsFile, err = expandPath(metricsFile); err != nil {
			return fmt.Errorf("--metrics-file: %w", err)
		}
	}

	appConfig = cfg
	appLogger = logging.New(os.Stderr, cfg.LogLevel, cfg.LogFormat)
	slog.SetDefault(appLogger)
	cmd.SetContext(logging.WithLogger(cmd.Context(), appLogger))

	appLogger.Debug("configuration loaded",
		slog.String("config", path),
		slog.String("base_url", common.RedactURL(cfg.BaseURL)),
		slog.Duration("timeout", cfg.Timeout),
	)

	return nil
}

// resolveConfigPath returns --config (with ~ expanded) or the default path.
func resolveConfigPath() (string, error) {
	if configFile != "" {
		return expandPath(configFile)
	}

	return application.DefaultConfigPath()
}

// newClient creates the backend client from the effective configuration.
func newClient(ctx context.Context) (*fetcher.Client, error) {
	return fetcher.New(appConfig.BaseURL, fetcher.Options{
		Timeout: appConfig.Timeout,
		Logger:  logging.FromContext(ctx),
		Metrics: appMetrics,
	})
}

// runProgram runs an interactive view built on a child of ctx. The child is
// cancelled once the program exits, aborting any fetch still in flight.
func runProgram(ctx context.Context, build func(context.Context) tea.Model, opts ...tea.ProgramOption) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	opts = append([]tea.ProgramOption{tea.WithContext(ctx), tea.WithAltScreen()}, opts...)

	_, err := tea.NewProgram(build(ctx), opts...).Run()

	return err
}

// interactive reports whether both stdin and stdout are terminals.
func interactive() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}
