// Package output provides output formatters for sound file information.
package output

import (
	"fmt"
	"io"
	"time"

	"github.com/jmylchreest/chime/internal/audio"
)

// Formatter formats sound file information for output.
type Formatter interface {
	// Format writes the formatted info to the writer.
	Format(w io.Writer, info *audio.Info) error
}

// FormatType represents an output format type.
type FormatType string

const (
	FormatPlain FormatType = "plain"
	FormatJSON  FormatType = "json"
	FormatYAML  FormatType = "yaml"
)

// ValidFormats returns all supported format types.
func ValidFormats() []FormatType {
	return []FormatType{FormatPlain, FormatJSON, FormatYAML}
}

// NewFormatter creates a formatter for the specified format type.
func NewFormatter(format FormatType, opts FormatterOptions) (Formatter, error) {
	switch format {
	case FormatJSON:
		return NewJSONFormatter(), nil
	case FormatYAML:
		return NewYAMLFormatter(), nil
	case FormatPlain, "":
		f, err := NewPlainFormatter(opts)
		if err != nil {
			return nil, err
		}
		return f, nil
	default:
		return nil, fmt.Errorf("unknown output format %q, must be one of: %v", format, ValidFormats())
	}
}

// FormatterOptions configures formatter behavior.
type FormatterOptions struct {
	Template string // Custom template for plain format
}

// record is the serialized form of audio.Info.
type record struct {
	Path       string `json:"path" yaml:"path"`
	Format     string `json:"format" yaml:"format"`
	SampleRate int    `json:"sample_rate" yaml:"sample_rate"`
	Channels   int    `json:"channels" yaml:"channels"`
	BitDepth   int    `json:"bit_depth" yaml:"bit_depth"`
	Samples    int    `json:"samples" yaml:"samples"`
	Duration   string `json:"duration" yaml:"duration"`
	DurationMS int64  `json:"duration_ms" yaml:"duration_ms"`
	Size       int64  `json:"size" yaml:"size"`
}

func newRecord(info *audio.Info) record {
	return record{
		Path:       info.Path,
		Format:     info.Format,
		SampleRate: info.SampleRate,
		Channels:   info.Channels,
		BitDepth:   info.Precision * 8,
		Samples:    info.Samples,
		Duration:   info.Duration.Round(time.Millisecond).String(),
		DurationMS: info.Duration.Milliseconds(),
		Size:       info.Size,
	}
}
