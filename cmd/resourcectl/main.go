// Package main is the entry point for the resourcectl CLI tool.
package main

import (
	"os"

	"github.com/goliatone/go-resource-client/cmd/resourcectl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
