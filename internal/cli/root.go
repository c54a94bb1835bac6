package cli

import (
	"github.com/calebmorris/fitplan/internal/repository"
	"github.com/calebmorris/fitplan/internal/service"
	"github.com/spf13/cobra"
)

type App struct {
	Interviews service.InterviewService
	Plans      service.PlanService
	Sessions   service.SessionService
	Calendar   service.CalendarService
	Templates  repository.TemplateRepo

	// IsInteractive reports whether stdin is a terminal; interview
	// submit reads answers from stdin when no --answers flag is given,
	// and refuses to block waiting on a TTY.
	IsInteractive func() bool
}

// NewRootCmd creates the top-level "fitplan" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "fitplan",
		Short: "Interview-driven workout plan generator and session tracker",
	}

	root.AddCommand(
		newInterviewCmd(app),
		newPlanCmd(app),
		newSessionCmd(app),
		newCalendarCmd(app),
		newTemplateCmd(app),
	)

	return root
}
