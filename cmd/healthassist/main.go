package main

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"

	"healthassist/internal/cli"
	"healthassist/internal/db"
	"healthassist/internal/repository"
	"healthassist/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Determine DB path: env var or default ~/.healthassist/healthassist.db
	dbPath := os.Getenv("HEALTHASSIST_DB")
	if dbPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("finding home directory: %w", err)
		}
		dbPath = filepath.Join(home, ".healthassist", "healthassist.db")
	}

	database, err := db.OpenDB(dbPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	transcriptRepo := repository.NewSQLiteTranscriptRepo(database)
	profileRepo := repository.NewSQLiteProfileRepo(database)
	uow := db.NewSQLiteUnitOfWork(database)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	app := &cli.App{
		Chat:        service.NewChatService(transcriptRepo, profileRepo, uow, rng),
		Transcripts: service.NewTranscriptService(transcriptRepo),
		Profiles:    service.NewProfileService(profileRepo),
	}

	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
