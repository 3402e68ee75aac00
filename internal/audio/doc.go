// Package audio plays sound files through the system audio device.
// It uses the beep library to decode WAV, OGG, and MP3 files and
// blocks each playback until the engine reports the end of the stream.
package audio
