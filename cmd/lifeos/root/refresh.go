package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RicGue02/LifeOS/internal/ui"
)

func newRefreshCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "refresh",
		Short: "Recompute health, career and wealth from your activity",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			before := svc.Character()
			after, err := svc.RefreshScores(ctx)
			if after.Level == 0 {
				return err
			}
			if after.Level > before.Level {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s Level %d → %d\n\n", ui.IconTrophy, ui.BadgeLevelUp, before.Level, after.Level)
			}
			printCharacter(cmd, after)
			return err
		},
	}

	return cmd
}
