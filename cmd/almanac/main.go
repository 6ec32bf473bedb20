package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/almanac/internal/cli"
	"github.com/alexanderramin/almanac/internal/config"
	"github.com/alexanderramin/almanac/internal/db"
	"github.com/alexanderramin/almanac/internal/knowledge"
	"github.com/alexanderramin/almanac/internal/logging"
	"github.com/alexanderramin/almanac/internal/repository"
	"github.com/alexanderramin/almanac/internal/service"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	// Load the knowledge base: a configured corpus file or the embedded one.
	var kb *knowledge.KnowledgeBase
	if cfg.KnowledgeBaseFile != "" {
		kb, err = knowledge.LoadFile(cfg.KnowledgeBaseFile)
	} else {
		kb, err = knowledge.LoadDefault()
	}
	if err != nil {
		return fmt.Errorf("loading knowledge base: %w", err)
	}
	logger.Debug("knowledge base loaded",
		zap.String("file", cfg.KnowledgeBaseFile),
		zap.Int("principles", kb.Len()),
	)

	// Open database
	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories and unit of work
	profileRepo := repository.NewSQLiteProfileRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	// Wire services
	observer := service.NewZapUseCaseObserver(logger)
	app := &cli.App{
		Wisdom:        service.NewWisdomService(kb, cfg.EngineOptions(), profileRepo, observer),
		Profiles:      service.NewProfileService(profileRepo, uow, observer),
		Knowledge:     kb,
		KnowledgeFile: cfg.KnowledgeBaseFile,
	}

	// Detect interactive terminal for the context form.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Execute root command
	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
