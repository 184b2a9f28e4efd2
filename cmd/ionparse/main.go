// Command ionparse runs the ionic-current segmentation parsers against a
// signal file from the command line.
package main

import (
	"fmt"
	"os"
	"time"

	"ionparse/internal/cliutil"
)

func main() {
	if len(os.Args) < 2 {
		printHelp()
		os.Exit(1)
	}

	start := time.Now()
	cmd := os.Args[1]
	args := os.Args[2:]
	logger := cliutil.NewLogger()

	var err error
	switch cmd {
	case "parse":
		err = runParse(logger, args)
	case "bench":
		err = runBench(logger, args)
	case "report":
		err = runReport(logger, args)
	default:
		fmt.Printf("Unknown command: %s\n", cmd)
		printHelp()
		os.Exit(1)
	}

	if err != nil {
		logger.Error("command failed", "command", cmd, "err", err)
		os.Exit(1)
	}

	fmt.Printf("\n[sys] %s\n", cliutil.Footer(start))
}

func printHelp() {
	fmt.Println("Usage: ionparse [command]")
	fmt.Println("  parse  - Parse a signal file and print a segment table")
	fmt.Println("  bench  - Time N parses of a signal file and record metrics")
	fmt.Println("  report - Parse a signal file and write a JSON segment report")
}
