package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"

	ionparselib "ionparse"
	"ionparse/config"
	"ionparse/dualthresh"
	"ionparse/internal/metrics"
	"ionparse/segsplit"
	"ionparse/snakebase"
	"ionparse/thresholdparse"
)

// loadSignal reads one float64 sample per line from path. This is a debug
// input format for the CLI, not a stand-in for any real acquisition file
// format (those remain out of scope).
func loadSignal(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var samples []float64
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := sc.Text()
		if line == "" {
			continue
		}
		v, err := strconv.ParseFloat(line, 64)
		if err != nil {
			return nil, fmt.Errorf("parsing sample %q: %w", line, err)
		}
		samples = append(samples, v)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return samples, nil
}

// buildParser resolves the named parser against a loaded config file (nil
// configFile falls back to every parser's DefaultConfig). It is equivalent
// to calling buildInstrumentedParser with a nil *metrics.Metrics.
func buildParser(name string, configFile *config.File) (ionparselib.Parser, error) {
	return buildInstrumentedParser(name, configFile, nil)
}

// buildInstrumentedParser is buildParser plus metrics wiring: for the
// recursive splitter kinds it wires m.RecordForcedSplit into the
// splitter's OnForcedSplit hook, so bench runs produce a real
// ionparse_forced_splits_total count rather than a dead metric. m may be
// nil, in which case this behaves exactly like buildParser.
func buildInstrumentedParser(name string, configFile *config.File, m *metrics.Metrics) (ionparselib.Parser, error) {
	switch name {
	case "stepwise":
		cfg, err := splitterConfig(configFile)
		if err != nil {
			return nil, err
		}
		if m != nil {
			cfg.OnForcedSplit = func() { m.RecordForcedSplit(name) }
		}
		return ionparselib.NewStepwiseSplitter(cfg)
	case "slanted":
		cfg, err := splitterConfig(configFile)
		if err != nil {
			return nil, err
		}
		if m != nil {
			cfg.OnForcedSplit = func() { m.RecordForcedSplit(name) }
		}
		return ionparselib.NewSlantedSplitter(cfg)
	case "threshold":
		return ionparselib.NewThresholdParser(thresholdConfig(configFile)), nil
	case "snakebase":
		return ionparselib.NewSnakebaseParser(snakebaseConfig(configFile)), nil
	case "dualthresh":
		return ionparselib.NewDualThresholdParser(dualThreshConfig(configFile)), nil
	default:
		return nil, fmt.Errorf("unknown parser %q (want stepwise, slanted, threshold, snakebase, or dualthresh)", name)
	}
}

func splitterConfig(f *config.File) (segsplit.Config, error) {
	if f == nil {
		return segsplit.DefaultConfig(), nil
	}
	return f.SplitterConfig()
}

func thresholdConfig(f *config.File) thresholdparse.Config {
	if f == nil {
		return thresholdparse.DefaultConfig()
	}
	return f.ThresholdConfig()
}

func snakebaseConfig(f *config.File) snakebase.Config {
	if f == nil {
		return snakebase.DefaultConfig()
	}
	return f.SnakebaseConfig()
}

func dualThreshConfig(f *config.File) dualthresh.Config {
	if f == nil {
		return dualthresh.DefaultConfig()
	}
	return f.DualThreshConfig()
}
