package root

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/RicGue02/LifeOS/internal/tui"
)

func newBoardCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the day board TUI",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			day, err := parseDay(date, svc.Today())
			if err != nil {
				return err
			}
			return tui.RunBoard(ctx, svc, day, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day (YYYY-MM-DD)")

	return cmd
}
