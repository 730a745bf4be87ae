package commands

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/tictactoe/internal"
	"github.com/rocketscienceinc/tictactoe/internal/config"
)

// Version is set at build time with -ldflags "-X".
var Version = "dev"

type flags struct {
	configPath  string
	firstPlayer string
	logLevel    string
	noColor     bool
}

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	var opts flags

	root := &cobra.Command{
		Use:           "tictactoe",
		Short:         "Two-player tic-tac-toe in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, &opts)
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "config file (default ./config.yml)")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level: debug, info, warn, error")

	play := &cobra.Command{
		Use:   "play",
		Short: "Start a local game (default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlay(cmd, &opts)
		},
	}

	for _, cmd := range []*cobra.Command{root, play} {
		cmd.Flags().StringVarP(&opts.firstPlayer, "first", "f", "", "starting player, X or O (asked when empty)")
		cmd.Flags().BoolVar(&opts.noColor, "no-color", false, "disable colored symbols")
	}

	root.AddCommand(play, versionCmd())

	return root
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), Version)
		},
	}
}

func runPlay(cmd *cobra.Command, opts *flags) error {
	conf := initConfig(opts.configPath)

	if opts.firstPlayer != "" {
		conf.FirstPlayer = opts.firstPlayer
	}
	if opts.logLevel != "" {
		conf.LogLevel = opts.logLevel
	}
	if opts.noColor {
		conf.NoColor = true
	}

	logger := initLogger(conf)

	if err := app.RunApp(logger, conf, cmd.InOrStdin(), cmd.OutOrStdout()); err != nil {
		return fmt.Errorf("app run failed: %w", err)
	}

	return nil
}

// initialize config. An explicit path must exist, the default ./config.yml is optional.
func initConfig(path string) *config.Config {
	required := path != ""

	if !required {
		baseDir, err := os.Getwd()
		if err != nil {
			panic(fmt.Errorf("failed to get current directory: %w", err))
		}
		path = filepath.Join(baseDir, "config.yml")
	}

	return config.MustLoad(path, required)
}

// initialize logger. Logs go to stderr so they do not mix with the board.
func initLogger(conf *config.Config) *slog.Logger {
	var level slog.Level

	switch strings.ToLower(conf.LogLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}
