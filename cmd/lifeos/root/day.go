package root

import (
	"context"
	"fmt"
	"io"
	"sort"

	"github.com/spf13/cobra"

	"github.com/RicGue02/LifeOS/internal/engine"
	"github.com/RicGue02/LifeOS/internal/ui"
)

func newDayCmd() *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "day",
		Short: "Show a day's schedule and statistics",
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
			sched := svc.Scheduler().GetOrCreateSchedule(ctx, day)
			printSchedule(cmd.OutOrStdout(), sched, svc.Scheduler().Statistics(ctx, day))
			return nil
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "Day (YYYY-MM-DD, today, tomorrow, yesterday)")

	return cmd
}

func printSchedule(out io.Writer, sched engine.DailySchedule, st engine.DailyStatistics) {
	fmt.Fprintln(out, ui.Heading(ui.IconDay, sched.Date.Format("Monday, 02 January 2006")))

	blocks := sched.SortedBlocks()
	if len(blocks) == 0 {
		fmt.Fprintln(out, ui.Muted.Render("(no blocks planned)"))
	}
	for _, b := range blocks {
		line := fmt.Sprintf("%s %s  %s %s %s", ui.CheckIcon(b.Completed), ui.Key.Render(b.TimeRangeString()), b.Category.Icon(), b.Title, ui.Muted.Render("("+b.DurationString()+", "+shortID(b.ID)+")"))
		fmt.Fprintln(out, line)
		if b.Notes != "" {
			fmt.Fprintln(out, "      "+ui.Muted.Render(b.Notes))
		}
	}
	fmt.Fprintln(out, "")

	fmt.Fprintln(out, ui.H2.Render("📊 Statistics"))
	fmt.Fprintln(out, ui.LabelValue("Blocks", fmt.Sprintf("%d/%d done", st.CompletedBlocks, st.TotalBlocks)))
	fmt.Fprintln(out, ui.LabelValue("Planned", fmt.Sprintf("%.1fh (%.1fh done)", st.TotalHours(), st.CompletedHours())))
	fmt.Fprintln(out, ui.LabelValue("Completion", fmt.Sprintf("%s %s", ui.Bar(st.CompletionRate, 1, 20), ui.Percent(st.CompletionRate))))

	cats := make([]engine.BlockCategory, 0, len(st.CategoryMinutes))
	for c := range st.CategoryMinutes {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool { return st.CategoryMinutes[cats[i]] > st.CategoryMinutes[cats[j]] })
	for _, c := range cats {
		fmt.Fprintf(out, "- %s %s: %dm\n", c.Icon(), c, st.CategoryMinutes[c])
	}

	if r := sched.Review; r != nil {
		fmt.Fprintln(out, "")
		fmt.Fprintln(out, ui.H2.Render(ui.IconScroll+" Review"))
		fmt.Fprintln(out, ui.LabelValue("Mood/Energy/Productivity", fmt.Sprintf("%d/%d/%d", r.MoodRating, r.EnergyRating, r.ProductivityRating)))
		for _, kv := range [][2]string{
			{"Accomplishments", r.Accomplishments},
			{"Challenges", r.Challenges},
			{"Lessons", r.LessonsLearned},
			{"Tomorrow", r.TomorrowsPriorities},
			{"Gratitude", r.Gratitude},
		} {
			if kv[1] != "" {
				fmt.Fprintln(out, ui.LabelValue(kv[0], kv[1]))
			}
		}
	}
}
