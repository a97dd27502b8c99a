// Package main is the entry point for the josa CLI.
package main

import (
	"os"

	"github.com/f3rmion/josa/cmd/josa/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
