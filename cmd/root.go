package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/grimnir-radio/grimnir-go/config"
	"github.com/grimnir-radio/grimnir-go/grimnir"
)

var (
	cfgFile   string
	stationID string
	cfg       *config.Config
	logger    zerolog.Logger
	client    *grimnir.Client

	version   = "dev"
	buildTime = "unknown"
)

// SetVersion injects build information from main.
func SetVersion(v, bt string) {
	version = v
	buildTime = bt
}

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "grimnirctl",
	Short: "Explore and control a Grimnir Radio instance",
	Long: `grimnirctl is a demonstration harness for the Grimnir Radio API client.
It reads GRIMNIR_URL plus either GRIMNIR_API_KEY or GRIMNIR_EMAIL and
GRIMNIR_PASSWORD from the environment (or a config file) and exposes
stations, schedules, analytics, logs and media upload from the shell.`,
	PersistentPreRunE: initializeApp,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if client != nil {
			client.Close()
		}
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config.yaml)")
	rootCmd.PersistentFlags().StringVar(&stationID, "station", "", "station UUID")
}

// initializeApp loads configuration and builds the API client
func initializeApp(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger = setupLogger(cfg.Logging)

	client, err = newGrimnirClient(cmd.Context())
	if err != nil {
		return err
	}

	return nil
}

// newGrimnirClient builds the client from config and, for the session
// variant, logs in before the first command runs.
func newGrimnirClient(ctx context.Context) (*grimnir.Client, error) {
	opts := []grimnir.Option{
		grimnir.WithTimeout(time.Duration(cfg.Server.Timeout) * time.Second),
	}
	if cfg.Auth.APIKey != "" {
		opts = append(opts, grimnir.WithAPIKey(cfg.Auth.APIKey))
	}

	c, err := grimnir.NewClient(cfg.Server.URL, logger, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create Grimnir client: %w", err)
	}

	if cfg.Auth.Email != "" {
		if _, err := c.Login(ctx, cfg.Auth.Email, cfg.Auth.Password); err != nil {
			return nil, fmt.Errorf("failed to log in as %s: %w", cfg.Auth.Email, err)
		}
		logger.Debug().Str("email", cfg.Auth.Email).Msg("Session started")
	}

	return c, nil
}

// setupLogger configures the zerolog logger
func setupLogger(cfg config.LoggingConfig) zerolog.Logger {
	level := zerolog.InfoLevel
	switch strings.ToLower(cfg.Level) {
	case "debug":
		level = zerolog.DebugLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	zerolog.SetGlobalLevel(level)

	if cfg.Format == "json" || !isatty.IsTerminal(os.Stderr.Fd()) {
		return zerolog.New(os.Stderr).With().Timestamp().Logger()
	}

	output := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.RFC3339,
		NoColor:    !cfg.Color,
	}

	return zerolog.New(output).With().Timestamp().Logger()
}

// requireStation enforces the --station flag for commands that need it.
func requireStation() error {
	if stationID == "" {
		return fmt.Errorf("--station is required")
	}
	return nil
}

// printJSON pretty-prints a decoded API value to stdout.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	fmt.Println(string(data))
	return nil
}
