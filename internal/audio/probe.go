package audio

import (
	"fmt"
	"os"
	"time"
)

// Info describes a sound file.
type Info struct {
	Path       string
	Format     string
	SampleRate int
	Channels   int
	Precision  int // bytes per sample
	Samples    int
	Duration   time.Duration
	Size       int64
}

// Probe decodes the header of the sound file at path and reports its
// format. It does not touch the audio engine.
func Probe(path string) (*Info, error) {
	sound, err := Load(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSoundLoad, err)
	}
	defer func() { _ = sound.Close() }()

	st, err := os.Stat(sound.Path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSoundLoad, err)
	}

	return &Info{
		Path:       sound.Path,
		Format:     sound.Kind,
		SampleRate: int(sound.Format.SampleRate),
		Channels:   sound.Format.NumChannels,
		Precision:  sound.Format.Precision,
		Samples:    sound.Len(),
		Duration:   sound.Duration(),
		Size:       st.Size(),
	}, nil
}
