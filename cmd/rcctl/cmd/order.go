package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	rc "github.com/matthew-sharp/openrc"
)

var orderStop bool

var orderCmd = &cobra.Command{
	Use:   "order <runlevel>",
	Short: "Print the service sequence for a change to the runlevel",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		r, err := newRC()
		if err != nil {
			return err
		}
		r.OnCycle = func(cycle *rc.CycleError) {
			fmt.Fprintf(os.Stderr, "broke %s cycle: %s\n",
				cycle.Relation, strings.Join(cycle.Services, " -> "))
		}

		tree, err := r.LoadDeptree()
		if err != nil {
			return fmt.Errorf("loading deptree (run rcctl update first): %w", err)
		}

		opts := rc.DepStart | rc.DepTrace
		if orderStop {
			opts |= rc.DepStop
		}
		order, err := r.OrderServices(tree, args[0], opts)
		if err != nil {
			return err
		}
		for _, s := range order {
			fmt.Println(s)
		}
		return nil
	},
}

func init() {
	orderCmd.Flags().BoolVar(&orderStop, "stop", false, "include inactive services in the stop set")
	rootCmd.AddCommand(orderCmd)
}
