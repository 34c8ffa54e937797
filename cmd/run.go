package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/crittersort/internal/app"
	"github.com/abhisek/crittersort/internal/screens/sorter"
)

// runApp builds dependencies and launches the TUI.
func runApp(cmd *cobra.Command, skipWelcome bool) error {
	e, err := newEnv(cmd, envOptions{quietLogs: true})
	if err != nil {
		return err
	}
	defer e.close()

	return app.Run(app.Options{
		Deps: sorter.Deps{
			Engine:  e.engine,
			Catalog: e.catalog,
			Logger:  e.logger.WithField("component", "tui"),
		},
		SkipWelcome: skipWelcome,
	})
}
