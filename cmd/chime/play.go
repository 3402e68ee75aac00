package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/gopxl/beep/v2"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/chime/internal/audio"
)

var playOpts struct {
	watch bool
}

func init() {
	rootCmd.Flags().BoolVarP(&playOpts.watch, "watch", "w", false,
		"Play again each time the file changes, until interrupted")
}

func runPlay(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	path := resolvePath(args)
	player := newPlayer()

	err := player.Play(ctx, path)
	if !playOpts.watch {
		return err
	}

	// A missing file may still appear while watching
	if err != nil && !errors.Is(err, audio.ErrSoundLoad) {
		return err
	}
	if err != nil {
		getLogger().Warn("initial playback failed, waiting for changes", "path", path, "error", err)
	}

	return watchAndPlay(ctx, player, path)
}

// watchAndPlay replays path after each change until ctx is done.
func watchAndPlay(ctx context.Context, player *audio.Player, path string) error {
	w, err := audio.NewWatcher(path, getConfig().Watch.Debounce.Duration(), getLogger())
	if err != nil {
		return err
	}
	defer func() { _ = w.Close() }()

	getLogger().Info("watching sound file", "path", path)
	return w.Run(ctx, func(ctx context.Context) error {
		return player.Play(ctx, path)
	})
}

// resolvePath returns the path argument or the configured default.
func resolvePath(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return getConfig().Player.Path
}

// newPlayer builds a Player from the loaded configuration.
func newPlayer() *audio.Player {
	c := getConfig()
	return audio.NewPlayer(audio.Options{
		SampleRate:      beep.SampleRate(c.Player.SampleRate),
		Buffer:          c.Player.Buffer.Duration(),
		ResampleQuality: c.Player.ResampleQuality,
		NewEngine:       newEngine,
		Logger:          getLogger(),
	})
}
