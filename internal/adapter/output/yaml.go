package output

import (
	"io"

	"gopkg.in/yaml.v3"

	"github.com/jmylchreest/chime/internal/audio"
)

// YAMLFormatter formats sound info as YAML.
type YAMLFormatter struct{}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter() *YAMLFormatter {
	return &YAMLFormatter{}
}

// Format writes info as a YAML document.
func (f *YAMLFormatter) Format(w io.Writer, info *audio.Info) error {
	data, err := yaml.Marshal(newRecord(info))
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
