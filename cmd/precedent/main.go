package main

import (
	"os"

	"github.com/lexindia/precedent/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
