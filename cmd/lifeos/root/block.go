package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RicGue02/LifeOS/internal/engine"
	"github.com/RicGue02/LifeOS/internal/ui"
)

func newBlockCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "block",
		Short: "Manage time blocks",
	}
	cmd.AddCommand(
		newBlockAddCmd(),
		newBlockEditCmd(),
		newBlockRmCmd(),
		newBlockDoneCmd(),
	)
	return cmd
}

func newBlockAddCmd() *cobra.Command {
	var date, start, end, category, taskID, notes string

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a time block",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("title is required")
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

			day, err := parseDay(date, svc.Today())
			if err != nil {
				return err
			}
			startAt, err := parseClock(start, day)
			if err != nil {
				return err
			}
			endAt, err := parseClock(end, day)
			if err != nil {
				return err
			}
			cat, err := engine.ParseCategory(category)
			if err != nil {
				return err
			}

			b, err := svc.Scheduler().AddTimeBlock(ctx, day, engine.TimeBlock{
				Title:    args[0],
				Start:    startAt,
				End:      endAt,
				Category: cat,
				TaskID:   taskID,
				Notes:    notes,
			})
			if b.ID == "" {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Added %s %s %s %s\n", ui.IconPlus, ui.Key.Render(b.TimeRangeString()), b.Category.Icon(), b.Title, ui.Muted.Render("("+shortID(b.ID)+")"))
			return err
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day (YYYY-MM-DD)")
	cmd.Flags().StringVarP(&start, "start", "s", "", "Start time (HH:MM)")
	cmd.Flags().StringVarP(&end, "end", "e", "", "End time (HH:MM)")
	cmd.Flags().StringVarP(&category, "category", "c", "other", "Category (work|personal|health|learning|social|break|commute|meal|planning|other)")
	cmd.Flags().StringVar(&taskID, "task", "", "Linked task id")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "Notes")
	_ = cmd.MarkFlagRequired("start")
	_ = cmd.MarkFlagRequired("end")

	return cmd
}

func newBlockEditCmd() *cobra.Command {
	var date, title, start, end, category, notes string

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a time block (overlaps are not re-checked)",
		Args:  cobra.ExactArgs(1),
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
			sched, _ := svc.Scheduler().Schedule(day)
			b, err := resolveBlock(sched, args[0])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("title") {
				b.Title = title
			}
			if flags.Changed("start") {
				if b.Start, err = parseClock(start, day); err != nil {
					return err
				}
			}
			if flags.Changed("end") {
				if b.End, err = parseClock(end, day); err != nil {
					return err
				}
			}
			if !b.End.After(b.Start) {
				return engine.ErrInvalidTimeRange
			}
			if flags.Changed("category") {
				if b.Category, err = engine.ParseCategory(category); err != nil {
					return err
				}
			}
			if flags.Changed("notes") {
				b.Notes = notes
			}

			if err := svc.Scheduler().UpdateTimeBlock(ctx, day, b); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Updated %s %s\n", ui.IconInfo, ui.Key.Render(b.TimeRangeString()), b.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&title, "title", "", "New title")
	cmd.Flags().StringVarP(&start, "start", "s", "", "New start time (HH:MM)")
	cmd.Flags().StringVarP(&end, "end", "e", "", "New end time (HH:MM)")
	cmd.Flags().StringVarP(&category, "category", "c", "", "New category")
	cmd.Flags().StringVarP(&notes, "notes", "n", "", "New notes")

	return cmd
}

func newBlockRmCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a time block",
		Args:  cobra.ExactArgs(1),
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
			sched, _ := svc.Scheduler().Schedule(day)
			b, err := resolveBlock(sched, args[0])
			if err != nil {
				return err
			}
			if err := svc.Scheduler().RemoveTimeBlock(ctx, day, b.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "🗑️ Removed %s %s\n", ui.Key.Render(b.TimeRangeString()), b.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day (YYYY-MM-DD)")

	return cmd
}

func newBlockDoneCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Toggle a time block's completion",
		Args:  cobra.ExactArgs(1),
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
			sched, _ := svc.Scheduler().Schedule(day)
			b, err := resolveBlock(sched, args[0])
			if err != nil {
				return err
			}
			if err := svc.Scheduler().ToggleCompletion(ctx, day, b.ID); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s is now %s\n", ui.CheckIcon(!b.Completed), b.Title, ui.DoneText(!b.Completed))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day (YYYY-MM-DD)")

	return cmd
}
