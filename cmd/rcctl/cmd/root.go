// Package cmd implements the rcctl CLI commands.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	rc "github.com/matthew-sharp/openrc"
)

var rootDir string

var rootCmd = &cobra.Command{
	Use:   "rcctl",
	Short: "rcctl inspects and maintains the rc service-state tree",
	Long: "rcctl is a thin driver over the rc library. It shows service states,\n" +
		"rebuilds the dependency cache, and computes the service order for a\n" +
		"runlevel change. Starting and stopping services is left to the init\n" +
		"scripts and the runlevel driver.",
}

func init() {
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", defaultRoot(), "rc state tree root")
	rootCmd.Version = rc.Version
}

func defaultRoot() string {
	if env := os.Getenv("RC_ROOT"); env != "" {
		return env
	}
	return rc.DefaultRoot
}

func newRC() (*rc.RC, error) {
	return rc.New(rootDir)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
