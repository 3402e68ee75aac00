package audio

import (
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/wav"
	"github.com/stretchr/testify/require"
)

// constTone streams n stereo samples at a fixed amplitude.
func constTone(n int) beep.Streamer {
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		if pos >= n {
			return 0, false
		}
		k := min(len(samples), n-pos)
		for i := range samples[:k] {
			samples[i] = [2]float64{0.1, -0.1}
		}
		pos += k
		return k, true
	})
}

// writeTestWAV encodes n samples at rate into dir/name and returns the path.
func writeTestWAV(t *testing.T, dir, name string, rate beep.SampleRate, n int) string {
	t.Helper()

	path := filepath.Join(dir, name)
	f, err := os.Create(path)
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	format := beep.Format{SampleRate: rate, NumChannels: 2, Precision: 2}
	require.NoError(t, wav.Encode(f, constTone(n), format))
	return path
}

// fakeEngine is an in-memory Engine. When drain is set it consumes played
// streamers on a goroutine as fast as possible.
type fakeEngine struct {
	mu      sync.Mutex
	initErr error
	rate    beep.SampleRate
	drain   bool
	wg      sync.WaitGroup

	inits   int
	plays   int
	stops   int
	closes  int
	samples int
}

func newFakeEngine(rate beep.SampleRate) *fakeEngine {
	return &fakeEngine{rate: rate, drain: true}
}

func (f *fakeEngine) factory(EngineConfig) Engine {
	return f
}

func (f *fakeEngine) Init() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.inits++
	return f.initErr
}

func (f *fakeEngine) SampleRate() beep.SampleRate {
	return f.rate
}

func (f *fakeEngine) Play(s beep.Streamer) {
	f.mu.Lock()
	f.plays++
	drain := f.drain
	f.mu.Unlock()

	if !drain {
		return
	}

	f.wg.Add(1)
	go func() {
		defer f.wg.Done()
		buf := make([][2]float64, 512)
		for {
			n, ok := s.Stream(buf)
			f.mu.Lock()
			f.samples += n
			f.mu.Unlock()
			if !ok {
				return
			}
		}
	}()
}

func (f *fakeEngine) Stop() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stops++
}

func (f *fakeEngine) Close() error {
	f.wg.Wait()
	f.mu.Lock()
	defer f.mu.Unlock()
	f.closes++
	return nil
}

func (f *fakeEngine) counts() (inits, plays, stops, closes int) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.inits, f.plays, f.stops, f.closes
}

func (f *fakeEngine) played() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.samples
}
