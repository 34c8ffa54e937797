package cmd

import (
	"fmt"

	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"
	"github.com/spf13/cobra"

	"github.com/abhisek/crittersort/internal/dataset"
	"github.com/abhisek/crittersort/internal/ui/theme"
)

var scenariosCmd = &cobra.Command{
	Use:   "scenarios",
	Short: "List the available scenario presets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		e, err := newEnv(cmd, envOptions{})
		if err != nil {
			return err
		}
		defer e.close()

		t := table.New().
			Border(lipgloss.RoundedBorder()).
			BorderStyle(lipgloss.NewStyle().Foreground(theme.Border)).
			Headers("#", "KEY", "NAME", "CLASS A", "CLASS B", "THRESHOLD")

		for i, sc := range e.catalog.All() {
			threshold := "default"
			if sc.Threshold != nil {
				threshold = fmt.Sprintf("%g", *sc.Threshold)
			}
			t.Row(fmt.Sprintf("%d", i+1), sc.Key, sc.Name, classCell(sc.A), classCell(sc.B), threshold)
		}

		fmt.Fprintln(cmd.OutOrStdout(), t.String())
		return nil
	},
}

func classCell(p dataset.ClassParams) string {
	return fmt.Sprintf("%g±%g ×%d", p.Center, p.Spread, p.Count)
}
