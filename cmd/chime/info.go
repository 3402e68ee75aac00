package main

import (
	"github.com/spf13/cobra"

	"github.com/jmylchreest/chime/internal/adapter/output"
	"github.com/jmylchreest/chime/internal/audio"
)

var infoOpts struct {
	output   string
	template string
}

var infoCmd = &cobra.Command{
	Use:   "info [path]",
	Short: "Show the format and duration of a sound file",
	Long: `Decode a sound file's header and print its format, sample rate,
channel count, duration and size. The audio device is not opened.

Custom plain templates can use the fields .Path, .Format, .SampleRate,
.Channels, .Precision, .Samples, .Duration and .Size and the functions
bytes, comma and duration:

  chime info --template '{{.Format}} {{duration .Duration}}'`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)

	infoCmd.Flags().StringVarP(&infoOpts.output, "output", "o", string(output.FormatPlain),
		"Output format (plain, json, yaml)")
	infoCmd.Flags().StringVar(&infoOpts.template, "template", "",
		"Go template for plain output")
}

func runInfo(cmd *cobra.Command, args []string) error {
	formatter, err := output.NewFormatter(output.FormatType(infoOpts.output), output.FormatterOptions{
		Template: infoOpts.template,
	})
	if err != nil {
		return err
	}

	info, err := audio.Probe(resolvePath(args))
	if err != nil {
		return err
	}

	return formatter.Format(cmd.OutOrStdout(), info)
}
