package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/LFroesch/dirman/internal/config"
	"github.com/LFroesch/dirman/internal/fileops"
	"github.com/LFroesch/dirman/internal/logger"
	"github.com/LFroesch/dirman/internal/watch"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "dirman: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if err := logger.Init(config.ConfigDir()); err != nil {
		// logging is optional; keep going without it
		fmt.Fprintf(os.Stderr, "dirman: %v\n", err)
	}
	defer logger.Close()

	cfg := config.Load()
	if err := logger.SetLevel(cfg.LogLevel); err != nil {
		logger.Warn("Ignoring log level: %v", err)
	}

	var opts []fileops.Option
	if cfg.UseTrash {
		opts = append(opts, fileops.WithTrash(fileops.MoveToTrash))
	}
	nav, err := fileops.NewFromWorkingDir(opts...)
	if err != nil {
		return err
	}

	var watcher *watch.Watcher
	if cfg.Watch {
		watcher, err = watch.New()
		if err != nil {
			logger.Warn("Directory watching disabled: %v", err)
			watcher = nil
		} else {
			defer watcher.Close()
		}
	}

	logger.Info("Starting in %s", nav.Path())
	m := newModel(cfg, nav, watcher)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal: %w", err)
	}
	return nil
}
