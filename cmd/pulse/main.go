package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/mattn/go-isatty"

	"github.com/alexanderramin/pulse/internal/cli"
	"github.com/alexanderramin/pulse/internal/db"
	"github.com/alexanderramin/pulse/internal/deadline"
	"github.com/alexanderramin/pulse/internal/intelligence"
	"github.com/alexanderramin/pulse/internal/llm"
	"github.com/alexanderramin/pulse/internal/mail"
	"github.com/alexanderramin/pulse/internal/repository"
	"github.com/alexanderramin/pulse/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.pulse/pulse.db
	dbPath := os.Getenv("PULSE_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".pulse", "pulse.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	reportRepo := repository.NewSQLiteReportRepo(database)
	staffRepo := repository.NewSQLiteStaffRepo(database)
	summaryRepo := repository.NewSQLiteSummaryRepo(database)
	settingsRepo := repository.NewSQLiteSettingsRepo(database)

	uow := db.NewSQLiteUnitOfWork(database)
	resolver := deadline.NewResolver(settingsRepo)

	// Wire the LLM-backed services; when the LLM is disabled a nil
	// client makes every intelligence call take its deterministic path.
	llmCfg := llm.LoadConfig()
	var llmClient llm.Client
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		llmClient = llm.NewOllamaClient(llmCfg, observer)
	}
	prompts := intelligence.NewPrompts(settingsRepo)
	categorizer := intelligence.NewCategorizeService(llmClient)
	summarizer := intelligence.NewSummaryService(llmClient, prompts)
	recognizer := intelligence.NewRecognizeService(llmClient, prompts)

	sender := mail.NewSender(mail.LoadConfig())

	var useCaseObs service.UseCaseObserver = service.NoopUseCaseObserver{}
	if os.Getenv("PULSE_LOG") != "" {
		useCaseObs = service.NewLogUseCaseObserver(os.Stderr)
	}

	app := &cli.App{
		Reports:   service.NewReportService(reportRepo, summaryRepo, resolver, categorizer, summarizer, useCaseObs),
		Admin:     service.NewAdminService(reportRepo, staffRepo, uow, useCaseObs),
		Status:    service.NewStatusService(reportRepo, staffRepo, resolver),
		Summaries: service.NewTeamSummaryService(reportRepo, summaryRepo, summarizer, recognizer, sender, useCaseObs),
		Staff:     staffRepo,
		Settings:  settingsRepo,
		Resolver:  resolver,

		Interactive: isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd()),
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
