package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"patternlab/internal/domain"
)

// run <pattern-id> [input...]: print the demonstration's trace to stdout.
func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run <pattern-id> [input...]",
		Short: "Run a pattern demonstration and print its trace",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id := domain.ID(args[0])
			in := domain.Input{Args: args[1:]}

			trace, err := appCtx.Runner.Run(id, in)
			if err != nil {
				return err
			}
			for _, line := range trace {
				fmt.Println(line)
			}
			return nil
		},
	}
}
