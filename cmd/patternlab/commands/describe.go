package commands

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"patternlab/internal/domain"
)

func describeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "describe <pattern-id>",
		Short: "Show one entry's summary, input shape and default trace",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			entry, err := appCtx.Catalog.Lookup(domain.ID(args[0]))
			if err != nil {
				return err
			}

			fmt.Println(labelStyle.Render(string(entry.ID)) +
				faintStyle.Render("  ("+string(entry.Category)+")"))
			fmt.Println(entry.Summary)
			fmt.Println(labelStyle.Render("Input: ") + entry.InputHint)
			fmt.Println(labelStyle.Render("Default: ") + strings.Join(entry.DefaultInput.Args, " "))
			fmt.Println(labelStyle.Render("Default trace:"))
			for _, line := range entry.Run(entry.DefaultInput) {
				fmt.Println("  " + line)
			}
			return nil
		},
	}
}
