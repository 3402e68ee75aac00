package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/chime/internal/audio"
	"github.com/jmylchreest/chime/internal/config"
)

// Build-time variables (set via ldflags)
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// Messages printed for playback failures.
const (
	msgEngineInit = "Failed to initialize audio engine."
	msgSoundLoad  = "Failed to load sound file."
)

// Global configuration and state
var (
	cfg        *config.Config
	globalOpts struct {
		verbose    bool
		configPath string
	}
	logger *slog.Logger

	// newEngine creates the output engine for each playback
	newEngine audio.NewEngineFunc = audio.NewSpeakerEngine
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "chime [path]",
	Short: "Play a sound file to completion",
	Long: `chime plays a single sound file through the default audio device
and exits when playback has finished.

WAV, OGG and MP3 files are supported. Without a path argument the file
configured as player.path is played (default: ./block.mp3).`,
	Version:       fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildTime),
	Args:          cobra.MaximumNArgs(1),
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.LoadConfig(globalOpts.configPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		return setupLogger(cfg.Log.Level)
	},
	RunE: runPlay,
}

// Execute runs the root command and exits with the code for its result.
func Execute() {
	err := rootCmd.Execute()
	audio.Shutdown()
	os.Exit(report(os.Stdout, os.Stderr, err))
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&globalOpts.verbose, "verbose", "v", false,
		"Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&globalOpts.configPath, "config", "",
		"Path to config file (default: ~/.config/chime/config.toml)")
}

// setupLogger configures the global slog logger.
func setupLogger(levelName string) error {
	level, err := config.ParseLevel(levelName)
	if err != nil {
		return err
	}
	if globalOpts.verbose {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{
		Level: level,
	}

	// Log to stderr so stdout only carries results
	handler := slog.NewTextHandler(os.Stderr, opts)
	logger = slog.New(handler)
	slog.SetDefault(logger)
	return nil
}

// report prints the user-facing message for err and returns the process
// exit code.
func report(stdout, stderr io.Writer, err error) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, audio.ErrEngineInit):
		_, _ = fmt.Fprintln(stdout, msgEngineInit)
	case errors.Is(err, audio.ErrSoundLoad):
		_, _ = fmt.Fprintln(stdout, msgSoundLoad)
	case errors.Is(err, context.Canceled):
		// Interrupted by the user
	default:
		_, _ = fmt.Fprintf(stderr, "Error: %v\n", err)
	}
	return 1
}

// getConfig returns the loaded configuration, or defaults before loading.
func getConfig() *config.Config {
	if cfg == nil {
		return config.DefaultConfig()
	}
	return cfg
}

// getLogger returns the global logger.
func getLogger() *slog.Logger {
	if logger == nil {
		return slog.Default()
	}
	return logger
}
