package audio

import "errors"

var (
	// ErrEngineInit is returned when the audio output device cannot be opened.
	ErrEngineInit = errors.New("failed to initialize audio engine")

	// ErrSoundLoad is returned when a sound file is missing, unreadable or
	// cannot be decoded.
	ErrSoundLoad = errors.New("failed to load sound file")

	// ErrUnsupportedFormat is returned by Load for file extensions that have
	// no decoder.
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)
