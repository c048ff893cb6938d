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

func newSuggestCmd() *cobra.Command {
	var date, after string
	var duration time.Duration

	cmd := &cobra.Command{
		Use:   "suggest",
		Short: "Suggest the next free slot for a block",
		RunE: func(cmd *cobra.Command, args []string) error {
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
			from := day
			if after != "" {
				if from, err = parseClock(after, day); err != nil {
					return err
				}
			}

			start := svc.Scheduler().SuggestSlot(ctx, day, duration, from)
			slot := engine.TimeBlock{Start: start, End: start.Add(duration)}
			msg := fmt.Sprintf("%s Free slot: %s (%s)", ui.IconClock, ui.Good.Render(slot.TimeRangeString()), slot.DurationString())
			if !engine.StartOfDay(start, svc.Location()).Equal(engine.StartOfDay(day, svc.Location())) {
				msg += " " + ui.Warn.Render("on "+start.Format(dateLayout))
			}
			fmt.Fprintln(cmd.OutOrStdout(), msg)
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day (YYYY-MM-DD)")
	cmd.Flags().StringVar(&after, "after", "", "Earliest start (HH:MM, default now or start of day)")
	cmd.Flags().DurationVarP(&duration, "duration", "d", 30*time.Minute, "Block length (e.g. 30m, 1h30m)")

	return cmd
}
