package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/calebmorris/fitplan/internal/domain"
	"github.com/calebmorris/fitplan/internal/service"
	"github.com/spf13/cobra"
)

func newSessionCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "session",
		Short: "Run workout sessions",
	}

	cmd.AddCommand(
		newSessionStartCmd(app),
		newSessionToggleCmd(app),
		newSessionFinishCmd(app),
		newSessionResetCmd(app),
	)

	return cmd
}

func newSessionStartCmd(app *App) *cobra.Command {
	var userID, templateID string

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start a session from a template",
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Sessions.StartSession(context.Background(), templateID, userID)

			var conflict *service.ConflictError
			if errors.As(err, &conflict) {
				fmt.Printf("A session is already in progress: %s\n", conflict.ExistingSessionID)
				fmt.Println("Finish or reset it, or continue toggling its exercises.")
				return nil
			}
			if err != nil {
				return err
			}

			fmt.Printf("Started session %s\n", session.ID)
			printSession(session)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID")
	cmd.Flags().StringVar(&templateID, "template", "", "Workout template ID")
	_ = cmd.MarkFlagRequired("user")
	_ = cmd.MarkFlagRequired("template")

	return cmd
}

func newSessionToggleCmd(app *App) *cobra.Command {
	var undo bool

	cmd := &cobra.Command{
		Use:   "toggle SESSION_ID EXERCISE_ID",
		Short: "Mark an exercise done (or not done with --undo)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Sessions.ToggleExercise(context.Background(), args[0], args[1], !undo)
			if err != nil {
				return err
			}
			printSession(session)
			return nil
		},
	}

	cmd.Flags().BoolVar(&undo, "undo", false, "Clear the completion mark instead of setting it")

	return cmd
}

func newSessionFinishCmd(app *App) *cobra.Command {
	var note string

	cmd := &cobra.Command{
		Use:   "finish SESSION_ID",
		Short: "Finish a session, optionally recording a day note",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Sessions.FinishSession(context.Background(), args[0], note)
			if err != nil {
				return err
			}
			fmt.Printf("Session %s finished at %s (%d%% complete)\n",
				session.ID, session.FinishedAt.Format("2006-01-02 15:04"), session.CompletionPercent())
			if session.DayNote != "" {
				fmt.Printf("Note: %s\n", session.DayNote)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&note, "note", "", "Day note to store with the finished session")

	return cmd
}

func newSessionResetCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset SESSION_ID",
		Short: "Clear all completion state and reopen the session",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			session, err := app.Sessions.ResetSession(context.Background(), args[0])
			if err != nil {
				return err
			}
			fmt.Printf("Session %s reset\n", session.ID)
			printSession(session)
			return nil
		},
	}

	return cmd
}

func printSession(s *domain.WorkoutSession) {
	fmt.Printf("Status: %s, %d%% complete\n", s.Status, s.CompletionPercent())
	for _, ex := range s.Exercises {
		mark := " "
		if ex.IsCompleted {
			mark = "x"
		}
		fmt.Printf("  [%s] %s  %s  (%s)\n", mark, ex.Name, ex.Prescription, ex.ID)
	}
}
