package main

import (
	"os"

	"github.com/taseebali/langauge-widget-desktop/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
