package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/calebmorris/fitplan/internal/cli"
	"github.com/calebmorris/fitplan/internal/db"
	"github.com/calebmorris/fitplan/internal/llm"
	"github.com/calebmorris/fitplan/internal/repository"
	"github.com/calebmorris/fitplan/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// DB path: env var or default ~/.fitplan/fitplan.db
	dbPath := os.Getenv("FITPLAN_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".fitplan", "fitplan.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	questionRepo := repository.NewSQLiteQuestionRepo(database)
	responseRepo := repository.NewSQLiteResponseRepo(database)
	planRepo := repository.NewSQLitePlanRepo(database)
	templateRepo := repository.NewSQLiteTemplateRepo(database)
	sessionRepo := repository.NewSQLiteSessionRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)

	llmCfg := llm.LoadConfig()
	var observer llm.Observer = llm.NoopObserver{}
	if llmCfg.LogCalls {
		observer = llm.NewLogObserver(os.Stderr)
	}
	generator := llm.NewOllamaClient(llmCfg, observer)

	app := &cli.App{
		Interviews: service.NewInterviewService(questionRepo, responseRepo),
		Plans:      service.NewPlanService(questionRepo, responseRepo, planRepo, generator),
		Sessions:   service.NewSessionService(sessionRepo, templateRepo, uow),
		Calendar:   service.NewCalendarService(sessionRepo),
		Templates:  templateRepo,
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
