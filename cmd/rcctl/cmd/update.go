package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var updateForce bool

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Rebuild the dependency cache if it is stale",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRC()
		if err != nil {
			return err
		}
		updated, err := r.UpdateDeptree(updateForce)
		if err != nil {
			if !updated {
				return err
			}
			// Parse warnings are not fatal; the cache was still written.
			fmt.Fprintf(os.Stderr, "warning: %v\n", err)
		}
		if updated {
			fmt.Println("dependency cache updated")
		} else {
			fmt.Println("dependency cache is current")
		}
		return nil
	},
}

func init() {
	updateCmd.Flags().BoolVarP(&updateForce, "force", "f", false, "rebuild even if the cache looks current")
	rootCmd.AddCommand(updateCmd)
}
