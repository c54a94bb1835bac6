package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/calebmorris/fitplan/internal/plan"
	"github.com/calebmorris/fitplan/internal/service"
	"github.com/spf13/cobra"
)

func newPlanCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Generate and inspect workout plans",
	}

	cmd.AddCommand(
		newPlanGenerateCmd(app),
		newPlanLatestCmd(app),
		newPlanListCmd(app),
	)

	return cmd
}

func newPlanGenerateCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate RESPONSE_ID",
		Short: "Generate a plan from a submitted response",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			generated, err := app.Plans.GeneratePlan(context.Background(), args[0])

			var contractErr *plan.ContractError
			switch {
			case errors.Is(err, service.ErrInvalidJSON):
				return fmt.Errorf("the model did not return JSON; re-run to try again")
			case errors.As(err, &contractErr):
				fmt.Println("The model returned JSON that does not satisfy the plan contract:")
				for _, v := range contractErr.Violations {
					fmt.Printf("  - %s\n", v)
				}
				return fmt.Errorf("plan rejected; re-run to try again")
			case err != nil:
				return err
			}

			fmt.Printf("Generated plan %s\n", generated.ID)
			return nil
		},
	}

	return cmd
}

func newPlanLatestCmd(app *App) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "latest",
		Short: "Print the user's newest plan as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			latest, err := app.Plans.GetLatestPlan(context.Background(), userID)
			if err != nil {
				return err
			}
			if latest == nil {
				fmt.Println("No plan yet. Submit an interview and run 'fitplan plan generate'.")
				return nil
			}
			fmt.Printf("Plan %s (created %s)\n%s\n",
				latest.ID, latest.CreatedAt.Format("2006-01-02 15:04"), latest.PlanJSON)
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}

func newPlanListCmd(app *App) *cobra.Command {
	var userID string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List a user's generated plans",
		RunE: func(cmd *cobra.Command, args []string) error {
			plans, err := app.Plans.ListPlans(context.Background(), userID)
			if err != nil {
				return err
			}
			if len(plans) == 0 {
				fmt.Println("No plans.")
				return nil
			}
			for _, p := range plans {
				fmt.Printf("%s  %s  (response %s)\n", p.ID, p.CreatedAt.Format("2006-01-02 15:04"), p.ResponseID)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user", "", "User ID")
	_ = cmd.MarkFlagRequired("user")

	return cmd
}
