package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	rc "github.com/matthew-sharp/openrc"
)

var statusCmd = &cobra.Command{
	Use:   "status [runlevel]",
	Short: "Show the state of every service, optionally limited to a runlevel",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRC()
		if err != nil {
			return err
		}

		var services []string
		if len(args) == 1 {
			if !r.RunlevelExists(args[0]) {
				return fmt.Errorf("runlevel %q does not exist", args[0])
			}
			services = r.ServicesInRunlevel(args[0])
		} else {
			tree, err := r.LoadDeptree()
			if err == nil {
				services = tree.Services()
			}
		}

		fmt.Printf("Runlevel: %s\n", r.Runlevel())
		for _, s := range services {
			st := serviceStatus(r, s)
			fmt.Printf("  %-30s [ %s ]\n", s, st)
		}
		return nil
	},
}

func serviceStatus(r *rc.RC, service string) string {
	for _, st := range []rc.State{
		rc.StateStarting, rc.StateStarted, rc.StateStopping, rc.StateInactive,
	} {
		if r.ServiceState(service, st) {
			if st == rc.StateStarted && r.ServiceState(service, rc.StateCrashed) {
				return rc.StateCrashed.String()
			}
			return st.String()
		}
	}
	if r.ServiceState(service, rc.StateFailed) {
		return rc.StateFailed.String()
	}
	return rc.StateStopped.String()
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
