package audio

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/oklog/ulid/v2"
)

// DefaultResampleQuality is the beep.Resample quality used when the sound
// and engine sample rates differ.
const DefaultResampleQuality = 4

// Options configures a Player.
type Options struct {
	SampleRate      beep.SampleRate
	Buffer          time.Duration
	ResampleQuality int

	// NewEngine creates the output engine for each playback.
	// Defaults to NewSpeakerEngine.
	NewEngine NewEngineFunc

	Logger *slog.Logger
}

// Player plays sound files to completion, one at a time.
type Player struct {
	mu     sync.Mutex
	logger *slog.Logger

	newEngine NewEngineFunc
	engineCfg EngineConfig

	// Quality passed to beep.Resample
	quality int
}

// NewPlayer creates a new audio player.
func NewPlayer(opts Options) *Player {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	newEngine := opts.NewEngine
	if newEngine == nil {
		newEngine = NewSpeakerEngine
	}

	quality := opts.ResampleQuality
	if quality <= 0 {
		quality = DefaultResampleQuality
	}

	return &Player{
		logger:    logger,
		newEngine: newEngine,
		engineCfg: EngineConfig{
			SampleRate: opts.SampleRate,
			Buffer:     opts.Buffer,
			Logger:     logger,
		},
		quality: quality,
	}
}

// Play plays the sound file at path and blocks until it has finished,
// ctx is done, or an error occurs.
//
// Errors wrap ErrEngineInit when no output device is available and
// ErrSoundLoad when the file cannot be loaded. The engine is released
// on every return path, after the sound.
func (p *Player) Play(ctx context.Context, path string) (err error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	logger := p.logger.With("playback_id", newPlaybackID(), "path", path)

	engine := p.newEngine(p.engineCfg)
	if err := engine.Init(); err != nil {
		logger.Debug("engine init failed", "error", err)
		return fmt.Errorf("%w: %w", ErrEngineInit, err)
	}
	defer func() {
		if cerr := engine.Close(); cerr != nil {
			logger.Warn("failed to release audio engine", "error", cerr)
			if err == nil {
				err = fmt.Errorf("failed to release audio engine: %w", cerr)
			}
		}
	}()

	sound, err := Load(path)
	if err != nil {
		logger.Debug("sound load failed", "error", err)
		return fmt.Errorf("%w: %w", ErrSoundLoad, err)
	}
	defer func() {
		if cerr := sound.Close(); cerr != nil {
			logger.Warn("failed to close sound", "error", cerr)
		}
	}()

	logger.Debug("playing sound",
		"format", sound.Kind,
		"sample_rate", sound.Format.SampleRate,
		"duration", sound.Duration(),
	)

	done := make(chan struct{})
	engine.Play(beep.Seq(p.prepare(sound, engine.SampleRate()), beep.Callback(func() {
		close(done)
	})))

	select {
	case <-done:
	case <-ctx.Done():
		engine.Stop()
		logger.Debug("playback cancelled")
		return ctx.Err()
	}
	engine.Stop()

	if err := sound.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrSoundLoad, err)
	}

	logger.Debug("playback finished")
	return nil
}

// prepare adapts the sound stream to the engine's sample rate.
func (p *Player) prepare(sound *Sound, rate beep.SampleRate) beep.Streamer {
	var streamer beep.Streamer = sound.Streamer()

	// Resample if necessary
	if rate > 0 && sound.Format.SampleRate != rate {
		streamer = beep.Resample(p.quality, sound.Format.SampleRate, rate, streamer)
	}

	return streamer
}

// newPlaybackID returns a ULID used to correlate the log records of one playback.
func newPlaybackID() string {
	id, err := ulid.New(ulid.Timestamp(time.Now()), rand.Reader)
	if err != nil {
		return ""
	}
	return id.String()
}
