package main

import (
	"os"

	"github.com/MylesLandais/subsync/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
