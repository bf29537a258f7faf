package main

import (
	"os"

	"github.com/msto63/corekit/cmd/jsonkit/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
