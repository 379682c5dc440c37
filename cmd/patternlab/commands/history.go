package commands

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
)

func historyCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent recorded runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if appCtx.History == nil {
				fmt.Println("History is disabled (history.enabled=false).")
				return nil
			}

			n := limit
			if n <= 0 {
				n = appCtx.Cfg.History.Limit
			}
			records, err := appCtx.History.Recent(n)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				fmt.Println("No runs recorded yet.")
				return nil
			}

			for _, rec := range records {
				fmt.Printf("%s  %s  %s\n",
					faintStyle.Render(rec.StartedAt.Format(time.RFC3339)),
					idStyle.Render(fmt.Sprintf("%-24s", string(rec.Pattern))),
					faintStyle.Render(fmt.Sprintf("%d line(s), args: %s",
						len(rec.Trace), strings.Join(rec.Args, " "))),
				)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 0, "max rows (default from config)")
	return cmd
}
