// Command stockboard manages the persisted upload list from a terminal
package main

import (
	"fmt"
	"os"

	"stockboard/internal/platform/config"
	"stockboard/internal/platform/logger"
)

func main() {
	// quiet by default, the tables are the output
	opts := logger.FromEnv()
	opts.Level = config.New().MayString("LOG_LEVEL", "warn")
	logger.Init(opts)

	a := newApp()
	err := newRoot(a).Execute()
	// post-run hooks are skipped when a command fails
	_ = a.shutdown()
	if err != nil {
		fmt.Fprintln(os.Stderr, "stockboard:", err)
		os.Exit(1)
	}
}
