package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/pixelary/internal/config"
	"github.com/jask/pixelary/internal/database"
	"github.com/jask/pixelary/internal/database/repository"
	"github.com/jask/pixelary/internal/service"
	"github.com/jask/pixelary/internal/tui"
	"github.com/jask/pixelary/internal/words"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	for _, p := range []string{cfg.Database.Path, cfg.Log.Path} {
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			log.Fatalf("mkdir %s: %v", filepath.Dir(p), err)
		}
	}

	// the alt screen owns stdout, so logs go to a file
	logFile, err := tea.LogToFile(cfg.Log.Path, "pixelary")
	if err != nil {
		log.Fatalf("log file: %v", err)
	}
	defer logFile.Close()

	if err := database.RunMigrations(cfg.Database.Path); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	corpus, err := words.Builtin()
	if err != nil {
		log.Fatalf("load words: %v", err)
	}
	if err := database.SeedDefaults(ctx, db, corpus); err != nil {
		log.Fatalf("seed defaults: %v", err)
	}

	wordRepo := repository.NewWordRepo(db)
	stored, err := wordRepo.List(ctx)
	if err != nil {
		log.Fatalf("list words: %v", err)
	}
	if len(stored) == 0 {
		log.Printf("warn: word table is empty, using built-in corpus")
		stored = corpus
	}
	picker := words.NewPicker(stored, nil)

	drawings := &service.DrawingService{DB: db, Drawings: repository.NewDrawingRepo(db)}

	log.Printf("starting: user=%q words=%d db=%s", cfg.User.Username, picker.Len(), cfg.Database.Path)
	p := tea.NewProgram(tui.New(ctx, cfg,
		tui.Services{
			History:   drawings,
			Posts:     drawings,
			Navigator: tui.ExecNavigator{Command: cfg.Navigation.Opener},
		},
		picker.Pick,
	), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}
