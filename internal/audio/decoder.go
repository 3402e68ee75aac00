package audio

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/vorbis"
	"github.com/gopxl/beep/v2/wav"
)

// Sound is a decoded audio file ready to be streamed.
type Sound struct {
	Path   string
	Kind   string // mp3, wav, ogg
	Format beep.Format

	file     *os.File
	streamer beep.StreamSeekCloser
}

// Load opens and decodes the sound file at path.
// Supports WAV, OGG and MP3 formats, selected by extension.
func Load(path string) (*Sound, error) {
	path = expandPath(path)

	ext := strings.ToLower(filepath.Ext(path))
	decode, ok := decoders[ext]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedFormat, ext)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open sound file: %w", err)
	}

	streamer, format, err := decode(f)
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to decode sound: %w", err)
	}

	return &Sound{
		Path:     path,
		Kind:     strings.TrimPrefix(ext, "."),
		Format:   format,
		file:     f,
		streamer: streamer,
	}, nil
}

type decodeFunc func(f *os.File) (beep.StreamSeekCloser, beep.Format, error)

var decoders = map[string]decodeFunc{
	".mp3": func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
		return mp3.Decode(f)
	},
	".ogg": func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
		return vorbis.Decode(f)
	},
	".wav": func(f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
		return wav.Decode(f)
	},
}

// Streamer returns the underlying decoder stream.
func (s *Sound) Streamer() beep.StreamSeekCloser {
	return s.streamer
}

// Len returns the length of the sound in samples.
func (s *Sound) Len() int {
	return s.streamer.Len()
}

// Duration returns the playing time of the sound.
func (s *Sound) Duration() time.Duration {
	return s.Format.SampleRate.D(s.streamer.Len())
}

// Err returns the first decode error hit while streaming, if any.
func (s *Sound) Err() error {
	return s.streamer.Err()
}

// Close releases the decoder and the file.
func (s *Sound) Close() error {
	err := s.streamer.Close()
	// Some decoders close the file themselves.
	if cerr := s.file.Close(); cerr != nil && err == nil && !errors.Is(cerr, os.ErrClosed) {
		err = cerr
	}
	return err
}

// expandPath expands ~ to home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
