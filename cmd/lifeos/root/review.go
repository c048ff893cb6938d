package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/RicGue02/LifeOS/internal/engine"
	"github.com/RicGue02/LifeOS/internal/ui"
)

func newReviewCmd() *cobra.Command {
	var date string
	var mood, energy, productivity int
	var accomplishments, challenges, lessons, tomorrow, gratitude string

	cmd := &cobra.Command{
		Use:   "review",
		Short: "Submit the daily review and collect XP",
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
			r := engine.NewDailyReview(day)
			r.MoodRating = mood
			r.EnergyRating = energy
			r.ProductivityRating = productivity
			r.Accomplishments = accomplishments
			r.Challenges = challenges
			r.LessonsLearned = lessons
			r.TomorrowsPriorities = tomorrow
			r.Gratitude = gratitude

			res, err := svc.SubmitReview(ctx, day, r)
			if res == nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Review saved for "+day.Format(dateLayout)))
			fmt.Fprintln(out, ui.LabelValue("Completion", ui.Percent(res.CompletionRate)))
			fmt.Fprintf(out, "%s +%d XP\n", ui.IconBolt, res.XPAwarded)
			for _, u := range res.Updates {
				fmt.Fprintf(out, "- %s → %.0f\n", u.Dimension, u.Score)
			}
			if res.LevelUp {
				fmt.Fprintf(out, "%s %s Level %d → %d\n", ui.IconTrophy, ui.BadgeLevelUp, res.LevelBefore, res.LevelAfter)
			}
			return err
		},
	}

	f := cmd.Flags()
	f.StringVar(&date, "date", "", "Day (YYYY-MM-DD)")
	f.IntVar(&mood, "mood", engine.DefaultRating, "Mood (1-5)")
	f.IntVar(&energy, "energy", engine.DefaultRating, "Energy (1-5)")
	f.IntVar(&productivity, "productivity", engine.DefaultRating, "Productivity (1-5)")
	f.StringVar(&accomplishments, "accomplishments", "", "What went well")
	f.StringVar(&challenges, "challenges", "", "What was hard")
	f.StringVar(&lessons, "lessons", "", "Lessons learned")
	f.StringVar(&tomorrow, "tomorrow", "", "Tomorrow's priorities")
	f.StringVar(&gratitude, "gratitude", "", "Gratitude")

	return cmd
}
