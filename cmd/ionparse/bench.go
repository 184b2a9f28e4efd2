package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/pflag"

	"ionparse/config"
	"ionparse/internal/metrics"
)

func runBench(logger *log.Logger, args []string) error {
	fs := pflag.NewFlagSet("bench", pflag.ContinueOnError)
	in := fs.StringP("in", "i", "", "Path to a newline-delimited signal file (required)")
	parser := fs.StringP("parser", "p", "stepwise", "Parser: stepwise, slanted, threshold, snakebase, dualthresh")
	configPath := fs.StringP("config", "c", "", "Optional YAML configuration file")
	iterations := fs.IntP("iterations", "n", 10, "Number of repeated parses to time")
	metricsAddr := fs.String("metrics-addr", "", "If set, serve Prometheus metrics on this address (e.g. :9090) until the run completes")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *in == "" {
		return fmt.Errorf("bench: --in is required")
	}
	if *iterations < 1 {
		return fmt.Errorf("bench: --iterations must be >= 1")
	}

	var cfgFile *config.File
	if *configPath != "" {
		f, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfgFile = f
	}

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)

	p, err := buildInstrumentedParser(*parser, cfgFile, m)
	if err != nil {
		return err
	}
	signal, err := loadSignal(*in)
	if err != nil {
		return err
	}

	if *metricsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
		srv := &http.Server{Addr: *metricsAddr, Handler: mux}
		go func() {
			if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				logger.Warn("metrics server stopped", "err", err)
			}
		}()
		defer srv.Close()
		logger.Info("serving metrics", "addr", *metricsAddr)
	}

	durations := make([]time.Duration, 0, *iterations)
	var segmentCount int
	for i := 0; i < *iterations; i++ {
		t0 := time.Now()
		segments, err := p.Parse(signal)
		d := time.Since(t0)
		if err != nil {
			return fmt.Errorf("bench: iteration %d: %w", i, err)
		}
		segmentCount = len(segments)
		durations = append(durations, d)
		m.RecordParse(*parser, len(segments), d)
	}

	total := time.Duration(0)
	min, max := durations[0], durations[0]
	for _, d := range durations {
		total += d
		if d < min {
			min = d
		}
		if d > max {
			max = d
		}
	}
	mean := total / time.Duration(len(durations))

	fmt.Printf("\n--- BENCH | parser=%s | samples=%d | iterations=%d ---\n", *parser, len(signal), *iterations)
	fmt.Printf("segments=%d  mean=%s  min=%s  max=%s\n", segmentCount, mean, min, max)
	return nil
}
