package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
)

func newCalendarCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Browse workout history by month and day",
	}

	cmd.AddCommand(
		newCalendarMonthCmd(app),
		newCalendarDayCmd(app),
	)

	return cmd
}

func newCalendarMonthCmd(app *App) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "month YYYY-MM",
		Short: "Show per-day session counts for a month",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			days, err := app.Calendar.GetCalendar(context.Background(), userID, args[0])
			if err != nil {
				return err
			}
			for _, d := range days {
				if d.Count == 0 {
					fmt.Printf("%s  -\n", d.Date)
					continue
				}
				fmt.Printf("%s  %d session(s)\n", d.Date, d.Count)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newCalendarDayCmd(app *App) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "day YYYY-MM-DD",
		Short: "Show a day's sessions with notes and completion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			sessions, err := app.Calendar.GetDay(context.Background(), userID, args[0])
			if err != nil {
				return err
			}
			if len(sessions) == 0 {
				fmt.Println("No sessions on that day.")
				return nil
			}
			for _, s := range sessions {
				fmt.Printf("%s  started %s  %s  %d%% complete\n",
					s.ID, s.StartedAt.Format("15:04"), s.Status, s.CompletionPercent())
				if s.DayNote != "" {
					fmt.Printf("  note: %s\n", s.DayNote)
				}
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
