package output

import (
	"fmt"
	"io"
	"strings"
	"text/template"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/jmylchreest/chime/internal/audio"
)

// PlainFormatter formats sound info as aligned text.
type PlainFormatter struct {
	template *template.Template
}

// NewPlainFormatter creates a new plain text formatter.
// Returns an error if opts.Template does not parse.
func NewPlainFormatter(opts FormatterOptions) (*PlainFormatter, error) {
	f := &PlainFormatter{}

	if opts.Template != "" {
		tmpl, err := template.New("plain").Funcs(templateFuncs()).Parse(opts.Template)
		if err != nil {
			return nil, fmt.Errorf("invalid template: %w", err)
		}
		f.template = tmpl
	}

	return f, nil
}

// Format writes info as plain text.
func (f *PlainFormatter) Format(w io.Writer, info *audio.Info) error {
	// Use custom template if available
	if f.template != nil {
		return f.template.Execute(w, info)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Path:        %s\n", info.Path)
	fmt.Fprintf(&sb, "Format:      %s\n", info.Format)
	fmt.Fprintf(&sb, "Sample rate: %s Hz\n", humanize.Comma(int64(info.SampleRate)))
	fmt.Fprintf(&sb, "Channels:    %s\n", channelName(info.Channels))
	fmt.Fprintf(&sb, "Bit depth:   %d\n", info.Precision*8)
	fmt.Fprintf(&sb, "Samples:     %s\n", humanize.Comma(int64(info.Samples)))
	fmt.Fprintf(&sb, "Duration:    %s\n", formatDuration(info.Duration))
	fmt.Fprintf(&sb, "Size:        %s\n", humanize.Bytes(uint64(info.Size)))

	_, err := io.WriteString(w, sb.String())
	return err
}

// templateFuncs returns the functions available to custom templates.
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"bytes":    func(n int64) string { return humanize.Bytes(uint64(n)) },
		"comma":    func(n int) string { return humanize.Comma(int64(n)) },
		"duration": formatDuration,
	}
}

func channelName(n int) string {
	switch n {
	case 1:
		return "mono"
	case 2:
		return "stereo"
	default:
		return fmt.Sprintf("%d", n)
	}
}

// formatDuration renders d as m:ss.mmm.
func formatDuration(d time.Duration) string {
	d = d.Round(time.Millisecond)
	m := d / time.Minute
	s := (d % time.Minute) / time.Second
	ms := (d % time.Second) / time.Millisecond
	return fmt.Sprintf("%d:%02d.%03d", m, s, ms)
}
