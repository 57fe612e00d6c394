// Package main is the entry point for the rcctl binary.
package main

import (
	"os"

	"github.com/matthew-sharp/openrc/cmd/rcctl/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
