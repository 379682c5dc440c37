package main

import (
	"os"

	"patternlab/cmd/patternlab/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
