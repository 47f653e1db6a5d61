package main

import (
	"os"

	"github.com/mmcdole/liri/internal/domain"
)

// Version is set at build time via -ldflags
var Version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(domain.ExitCode(err))
	}
}
