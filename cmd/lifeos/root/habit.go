package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RicGue02/LifeOS/internal/engine"
	"github.com/RicGue02/LifeOS/internal/ui"
)

func newHabitCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "habit",
		Short: "Track habits",
	}
	cmd.AddCommand(
		newHabitAddCmd(),
		newHabitDoCmd(),
		newHabitListCmd(),
	)
	return cmd
}

func newHabitAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Add a habit",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("name is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := svc.AddHabit(ctx, args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Habit %d added\n", ui.IconLoop, id)
			if engine.IsHealthHabit(args[0]) {
				fmt.Fprintln(cmd.OutOrStdout(), ui.Muted.Render("Counts towards your Health score."))
			}
			return nil
		},
	}

	return cmd
}

func newHabitDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Record a habit completion",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			_, err := parseID(args[0])
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := parseID(args[0])
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.CompleteHabit(ctx, id)
			if res == nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Habit %d: +%d XP (%d this week)\n", ui.IconDone, res.HabitID, res.XPAwarded, res.WeekCount)
			if res.LevelUp {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s Level %d → %d\n", ui.IconTrophy, ui.BadgeLevelUp, res.LevelBefore, res.LevelAfter)
			}
			return err
		},
	}

	return cmd
}

func newHabitListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List habits with streaks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			stats, err := svc.HabitStats(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconLoop, "Habits"))
			if len(stats) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(no habits yet)"))
				return nil
			}
			for _, h := range stats {
				tag := ""
				if h.Health {
					tag = " ❤️"
				}
				fmt.Fprintf(out, "%s %s%s %s %s\n",
					ui.Key.Render(fmt.Sprintf("%3d", h.ID)), h.Name, tag,
					ui.Muted.Render(fmt.Sprintf("%d/7 this week, %d total", h.WeekCount, h.Total)),
					streakText(h.Streak))
			}
			return nil
		},
	}

	return cmd
}

func streakText(n int) string {
	if n == 0 {
		return ""
	}
	return ui.Gold.Render(fmt.Sprintf("%s %d", ui.IconFire, n))
}
