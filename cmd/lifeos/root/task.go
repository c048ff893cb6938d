package root

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/RicGue02/LifeOS/internal/engine"
	"github.com/RicGue02/LifeOS/internal/ui"
)

func newTaskCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}
	cmd.AddCommand(
		newTaskAddCmd(),
		newTaskDoCmd(),
		newTaskListCmd(),
		newTaskPlanCmd(),
	)
	return cmd
}

func newTaskAddCmd() *cobra.Command {
	var priority string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			prio, err := engine.ParsePriority(priority)
			if err != nil {
				return err
			}
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			id, err := svc.AddTask(ctx, args[0], prio)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Task %d added (%s, +%d XP when done)\n", ui.IconPlus, id, prio, engine.TaskXP(prio))
			return nil
		},
	}

	cmd.Flags().StringVarP(&priority, "priority", "p", "medium", "Priority (low|medium|high)")

	return cmd
}

func newTaskDoCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "do <id>",
		Short: "Complete a task",
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

			res, err := svc.CompleteTask(ctx, id)
			if res == nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Completed %d: +%d XP\n", ui.IconDone, res.TaskID, res.XPAwarded)
			if res.LevelUp {
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s Level %d → %d\n", ui.IconTrophy, ui.BadgeLevelUp, res.LevelBefore, res.LevelAfter)
			}
			return err
		},
	}

	return cmd
}

func newTaskListCmd() *cobra.Command {
	var all bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			tasks, err := svc.TaskRepo().ListAll(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading("📝", "Tasks"))
			shown := 0
			for _, t := range tasks {
				if t.Completed && !all {
					continue
				}
				shown++
				fmt.Fprintf(out, "%s %s %s %s\n", ui.CheckIcon(t.Completed), ui.Key.Render(fmt.Sprintf("%3d", t.ID)), t.Title, ui.Muted.Render("("+t.Priority+")"))
			}
			if shown == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(nothing to do)"))
			}
			completed, total, err := svc.TaskRepo().Counts(ctx)
			if err != nil {
				return err
			}
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("%d of %d done, career score %.0f", completed, total, engine.CareerScore(completed, total))))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&all, "all", "a", false, "Include completed tasks")

	return cmd
}

func newTaskPlanCmd() *cobra.Command {
	var date, start string
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "plan <id>",
		Short: "Put a task on the schedule",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("id is required")
			}
			_, err := parseID(args[0])
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, _ := parseID(args[0])
			if duration <= 0 {
				return errors.New("duration must be positive")
			}
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
			var startAt time.Time
			if start == "" {
				startAt = svc.Scheduler().SuggestSlot(ctx, day, duration, day)
			} else if startAt, err = parseClock(start, day); err != nil {
				return err
			}

			b, err := svc.PlanTask(ctx, id, startAt, duration)
			if b.ID == "" {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Planned %s at %s %s\n", ui.IconDay, b.Title, ui.Key.Render(b.TimeRangeString()), b.Category.Icon())
			return err
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&start, "start", "s", "", "Start time (HH:MM, default first free slot)")
	cmd.Flags().DurationVarP(&duration, "duration", "d", time.Hour, "Block length")

	return cmd
}
