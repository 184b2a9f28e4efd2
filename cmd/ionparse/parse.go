package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"

	"ionparse/config"
)

func runParse(logger *log.Logger, args []string) error {
	fs := pflag.NewFlagSet("parse", pflag.ContinueOnError)
	in := fs.StringP("in", "i", "", "Path to a newline-delimited signal file (required)")
	parser := fs.StringP("parser", "p", "stepwise", "Parser: stepwise, slanted, threshold, snakebase, dualthresh")
	configPath := fs.StringP("config", "c", "", "Optional YAML configuration file")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("parse: --in is required")
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
	logger.Info("loaded signal", "samples", len(signal), "parser", *parser)

	segments, err := p.Parse(signal)
	if err != nil {
		return fmt.Errorf("parse: %w", err)
	}
	logger.Info("parse complete", "segments", len(segments))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "INDEX\tSTART\tEND\tLENGTH\tMEAN\tSTD\tMIN\tMAX\n")
	fmt.Fprintf(w, "-----\t-----\t---\t------\t----\t---\t---\t---\n")
	for i, s := range segments {
		fmt.Fprintf(w, "%d\t%d\t%d\t%d\t%.4f\t%.4f\t%.4f\t%.4f\n",
			i, s.Start(), s.End(), s.Length(), s.Mean(), s.Std(), s.Min(), s.Max())
	}
	return w.Flush()
}
