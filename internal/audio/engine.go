package audio

import (
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/speaker"
)

// Default engine settings.
const (
	DefaultSampleRate = beep.SampleRate(44100)
	DefaultBuffer     = 100 * time.Millisecond
)

// Engine is an audio output context. A Player acquires one per playback
// with Init and releases it with Close.
type Engine interface {
	// Init opens the output device.
	Init() error

	// SampleRate is the rate streamers passed to Play must produce.
	SampleRate() beep.SampleRate

	// Play queues a streamer for output and returns immediately.
	Play(s beep.Streamer)

	// Stop drops everything queued for output.
	Stop()

	// Close releases the engine. Sounds played on it must be closed first.
	Close() error
}

// EngineConfig configures a new Engine.
type EngineConfig struct {
	SampleRate beep.SampleRate
	Buffer     time.Duration
	Logger     *slog.Logger
}

// NewEngineFunc creates an Engine. Player takes one so callers can choose
// the output backend.
type NewEngineFunc func(cfg EngineConfig) Engine

// The speaker can only be initialized once per process because the
// underlying oto context cannot be recreated.
var speakerState struct {
	mu          sync.Mutex
	initialized bool
	sampleRate  beep.SampleRate
}

// SpeakerEngine plays through the system audio device using beep's speaker.
type SpeakerEngine struct {
	cfg        EngineConfig
	logger     *slog.Logger
	sampleRate beep.SampleRate
}

// NewSpeakerEngine returns an Engine backed by the beep speaker.
func NewSpeakerEngine(cfg EngineConfig) Engine {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.SampleRate <= 0 {
		cfg.SampleRate = DefaultSampleRate
	}
	if cfg.Buffer <= 0 {
		cfg.Buffer = DefaultBuffer
	}

	return &SpeakerEngine{
		cfg:        cfg,
		logger:     logger,
		sampleRate: cfg.SampleRate,
	}
}

// Init initializes the speaker if this process has not done so yet.
func (e *SpeakerEngine) Init() error {
	speakerState.mu.Lock()
	defer speakerState.mu.Unlock()

	if speakerState.initialized {
		e.sampleRate = speakerState.sampleRate
		return nil
	}

	bufferSize := e.cfg.SampleRate.N(e.cfg.Buffer)
	if err := speaker.Init(e.cfg.SampleRate, bufferSize); err != nil {
		return fmt.Errorf("failed to initialize speaker: %w", err)
	}

	speakerState.initialized = true
	speakerState.sampleRate = e.cfg.SampleRate
	e.sampleRate = e.cfg.SampleRate
	e.logger.Debug("speaker initialized", "sample_rate", e.cfg.SampleRate, "buffer_size", bufferSize)
	return nil
}

// SampleRate returns the rate the speaker runs at.
func (e *SpeakerEngine) SampleRate() beep.SampleRate {
	return e.sampleRate
}

// Play hands s to the speaker mixer.
func (e *SpeakerEngine) Play(s beep.Streamer) {
	speaker.Play(s)
}

// Stop clears the speaker mixer.
func (e *SpeakerEngine) Stop() {
	speaker.Clear()
}

// Close clears the speaker mixer. The device stays open for later
// playbacks until Shutdown.
func (e *SpeakerEngine) Close() error {
	speaker.Clear()
	return nil
}

// Shutdown closes the speaker device. Call it once before the process exits.
func Shutdown() {
	speakerState.mu.Lock()
	defer speakerState.mu.Unlock()

	if !speakerState.initialized {
		return
	}
	speaker.Close()
	speakerState.initialized = false
}
