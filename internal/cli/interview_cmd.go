package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/calebmorris/fitplan/internal/service"
	"github.com/spf13/cobra"
)

func newInterviewCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "interview",
		Short: "Submit and inspect interview responses",
	}

	cmd.AddCommand(
		newInterviewSubmitCmd(app),
		newInterviewListCmd(app),
		newInterviewShowCmd(app),
	)

	return cmd
}

func newInterviewSubmitCmd(app *App) *cobra.Command {
	var userID, answersJSON string

	cmd := &cobra.Command{
		Use:   "submit",
		Short: "Submit an answer set against the question registry",
		Long: `Submit answers as a JSON object keyed by question key, either via
--answers or piped on stdin. A valid submission prints the new response
id; an invalid one lists every failing field and stores nothing.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			raw := []byte(answersJSON)
			if answersJSON == "" {
				if app.IsInteractive != nil && app.IsInteractive() {
					return fmt.Errorf("no --answers given and stdin is a terminal; pass --answers or pipe JSON")
				}
				var err error
				raw, err = io.ReadAll(os.Stdin)
				if err != nil {
					return fmt.Errorf("reading answers from stdin: %w", err)
				}
			}

			var answers map[string]any
			if err := json.Unmarshal(raw, &answers); err != nil {
				return fmt.Errorf("answers must be a JSON object: %w", err)
			}

			resp, err := app.Interviews.SubmitResponse(context.Background(), userID, answers)
			var valErr *service.ValidationError
			if errors.As(err, &valErr) {
				fmt.Println("Submission rejected:")
				for _, f := range valErr.Fields {
					fmt.Printf("  - %s: %s\n", f.Key, f.Message)
				}
				return fmt.Errorf("%d field(s) failed validation", len(valErr.Fields))
			}
			if err != nil {
				return err
			}

			fmt.Printf("Submitted response %s\n", resp.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID")
	cmd.Flags().StringVar(&answersJSON, "answers", "", "Answers as a JSON object")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newInterviewListCmd(app *App) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a user's submitted responses",
		RunE: func(cmd *cobra.Command, args []string) error {
			responses, err := app.Interviews.ListResponses(context.Background(), userID)
			if err != nil {
				return err
			}
			if len(responses) == 0 {
				fmt.Println("No responses.")
				return nil
			}
			for _, r := range responses {
				fmt.Printf("%s  %s\n", r.ID, r.SubmittedAt.Format("2006-01-02 15:04"))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newInterviewShowCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show ID",
		Short: "Show one response's answers",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp, err := app.Interviews.GetResponse(context.Background(), args[0])
			if err != nil {
				return err
			}
			out, err := json.MarshalIndent(resp.Answers, "", "  ")
			if err != nil {
				return err
			}
			fmt.Printf("Response %s (user %s, submitted %s)\n%s\n",
				resp.ID, resp.UserID, resp.SubmittedAt.Format("2006-01-02 15:04"), out)
			return nil
		},
	}

	return cmd
}
