package commands

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"patternlab/internal/app"
)

var (
	home       string
	configPath string
	debug      bool
	appCtx     *app.App
)

func Execute() error {
	root := &cobra.Command{
		Use:          "patternlab",
		Short:        "Run textbook design-pattern demonstrations",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if home == "" {
				dir, err := os.UserHomeDir()
				if err != nil {
					return err
				}
				home = filepath.Join(dir, ".patternlab")
			}
			if err := os.MkdirAll(home, 0o700); err != nil {
				return err
			}

			var err error
			appCtx, err = app.New(app.Config{
				Home:       home,
				ConfigPath: configPath,
				Debug:      debug,
			})
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appCtx != nil {
				appCtx.Close()
			}
		},
	}

	root.PersistentFlags().StringVar(&home, "home", "", "state dir (default ~/.patternlab)")
	root.PersistentFlags().StringVar(&configPath, "config", "", "config file (default <home>/config.yaml)")
	root.PersistentFlags().BoolVar(&debug, "debug", false, "verbose logging to stderr")

	root.AddCommand(runCmd(), listCmd(), describeCmd(), historyCmd())
	return root.Execute()
}
