package cliutil

import (
	"fmt"
	"runtime"
	"time"
)

// Footer formats the "Execution Time / Mem" line main.go prints after every
// command, in the teacher's style.
func Footer(start time.Time) string {
	return fmt.Sprintf("Execution Time: %s | Mem: %s", time.Since(start), memUsage())
}

func memUsage() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return fmt.Sprintf("%d MB", m.Alloc/1024/1024)
}
