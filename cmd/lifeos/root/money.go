package root

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/RicGue02/LifeOS/internal/engine"
	"github.com/RicGue02/LifeOS/internal/ui"
)

func newMoneyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "money",
		Short: "Record income and expenses",
	}
	cmd.AddCommand(
		newMoneyAddCmd(),
		newMoneyMonthCmd(),
	)
	return cmd
}

func newMoneyAddCmd() *cobra.Command {
	var kind, category, note, date string

	cmd := &cobra.Command{
		Use:   "add <amount>",
		Short: "Record a transaction",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("amount is required")
			}
			if _, err := strconv.ParseFloat(args[0], 64); err != nil {
				return errors.New("amount must be a number")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			amount, _ := strconv.ParseFloat(args[0], 64)
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			in := engine.AddTransactionInput{
				Amount:      amount,
				Kind:        kind,
				Category:    category,
				Description: note,
			}
			if date != "" {
				day, err := parseDay(date, svc.Today())
				if err != nil {
					return err
				}
				in.OccurredAt = day.Add(12 * time.Hour)
			}
			id, err := svc.AddTransaction(ctx, in)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s Recorded %s %.2f (#%d)\n", ui.IconMoney, kind, amount, id)
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "expense", "income|expense")
	cmd.Flags().StringVarP(&category, "category", "c", "Other", "Category")
	cmd.Flags().StringVarP(&note, "note", "n", "", "Description")
	cmd.Flags().StringVar(&date, "date", "", "Day (YYYY-MM-DD, default now)")

	return cmd
}

func newMoneyMonthCmd() *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "month",
		Short: "Show this month's totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			ref := svc.Today()
			if month != "" {
				if ref, err = time.ParseInLocation("2006-01", month, svc.Location()); err != nil {
					return fmt.Errorf("invalid month %q (want YYYY-MM)", month)
				}
			}
			sum, err := svc.MonthSummary(ctx, ref)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconMoney, sum.Month.Format("January 2006")))
			fmt.Fprintln(out, ui.LabelValue("Income", ui.Good.Render(fmt.Sprintf("%.2f", sum.Income))))
			fmt.Fprintln(out, ui.LabelValue("Expenses", ui.Bad.Render(fmt.Sprintf("%.2f", sum.Expenses))))
			fmt.Fprintln(out, ui.LabelValue("Balance", fmt.Sprintf("%.2f", sum.Balance)))
			fmt.Fprintln(out, ui.LabelValue("Savings rate", ui.Percent(sum.SavingsRate)))
			fmt.Fprintln(out, ui.LabelValue("Wealth score", fmt.Sprintf("%.0f", sum.Score)))
			return nil
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "Month (YYYY-MM, default current)")

	return cmd
}
