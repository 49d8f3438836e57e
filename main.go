package main

import (
	"os"

	"github.com/quantaops/pulsekit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
