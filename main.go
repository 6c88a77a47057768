package main

import (
	"os"

	"github.com/saber-notes/saberweb/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
