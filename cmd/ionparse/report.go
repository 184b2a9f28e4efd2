package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"ionparse/config"
	"ionparse/segment"
)

// segmentReport is the JSON shape written by the report command: one entry
// per Segment, in order.
type segmentReport struct {
	Index int     `json:"index"`
	Start int     `json:"start"`
	End   int     `json:"end"`
	Mean  float64 `json:"mean"`
	Std   float64 `json:"std_dev"`
	Min   float64 `json:"min"`
	Max   float64 `json:"max"`
}

func runReport(logger *log.Logger, args []string) error {
	fs := pflag.NewFlagSet("report", pflag.ContinueOnError)
	in := fs.StringP("in", "i", "", "Path to a newline-delimited signal file (required)")
	out := fs.StringP("out", "o", "", "Path to write the JSON report (required)")
	parser := fs.StringP("parser", "p", "stepwise", "Parser: stepwise, slanted, threshold, snakebase, dualthresh")
	configPath := fs.StringP("config", "c", "", "Optional YAML configuration file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" || *out == "" {
		return fmt.Errorf("report: --in and --out are required")
	}

	var cfgFile *config.File
	if *configPath != "" {
		f, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfgFile = f
	}

	p, err := buildParser(*parser, cfgFile)
	if err != nil {
		return err
	}
	signal, err := loadSignal(*in)
	if err != nil {
		return err
	}
	segments, err := p.Parse(signal)
	if err != nil {
		return fmt.Errorf("report: %w", err)
	}

	if err := saveReport(*out, segments); err != nil {
		return err
	}
	logger.Info("wrote report", "path", *out, "segments", len(segments))
	return nil
}

func saveReport(path string, segments []segment.Segment) error {
	report := make([]segmentReport, len(segments))
	for i, s := range segments {
		report[i] = segmentReport{
			Index: i,
			Start: s.Start(),
			End:   s.End(),
			Mean:  s.Mean(),
			Std:   s.Std(),
			Min:   s.Min(),
			Max:   s.Max(),
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
