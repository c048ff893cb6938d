package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RicGue02/LifeOS/internal/engine"
	"github.com/RicGue02/LifeOS/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show character level and life dimensions",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			printCharacter(cmd, svc.Character())
			return nil
		},
	}

	return cmd
}

func printCharacter(cmd *cobra.Command, c engine.Character) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.Heading(ui.IconSparkle, "Character"))
	fmt.Fprintln(out, ui.LabelValue("Level", c.Level))
	fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%d/%d %s", c.Experience, c.ExperienceForNextLevel(), ui.Bar(c.ExperienceProgress(), 1, 20))))
	fmt.Fprintln(out, ui.LabelValue("Overall", fmt.Sprintf("%.1f", c.TotalScore())))
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, ui.H2.Render("🧭 Dimensions"))
	for _, d := range c.Dimensions.All() {
		fmt.Fprintf(out, "- %s %s %5.1f %s %s\n", d.Icon, ui.DimensionName(fmt.Sprintf("%-9s", d.Name), d.Color), d.Score, ui.Bar(d.Score, 100, 20), ui.LevelText(d.Level()))
	}
}
