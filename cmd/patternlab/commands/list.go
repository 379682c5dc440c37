package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"patternlab/internal/domain"
)

func listCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List the catalog, grouped by category",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var current domain.Category
			for _, e := range appCtx.Catalog.Entries() {
				if e.Category != current {
					current = e.Category
					fmt.Println(categoryStyle.Render(string(current)))
				}
				fmt.Printf("  %s  %s\n",
					idStyle.Render(fmt.Sprintf("%-24s", string(e.ID))),
					e.Summary,
				)
			}
			return nil
		},
	}
}
