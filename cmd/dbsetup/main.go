// Package main is a database setup tool.
//
// Usage:
//
//	dbsetup         create the schema and seed the demo dataset
//	dbsetup reset   drop everything, recreate, and reseed
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/userdesk/userdesk/internal/config"
	"github.com/userdesk/userdesk/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	st := store.New(cfg.DatabasePath)
	if err := st.Open(); err != nil {
		slog.Error("failed to open database", "error", err, "path", cfg.DatabasePath)
		os.Exit(1)
	}
	defer st.Close()

	ctx := context.Background()

	if len(os.Args) > 1 && os.Args[1] == "reset" {
		slog.Info("resetting database", "path", cfg.DatabasePath)
		if err := st.Reset(ctx); err != nil {
			slog.Error("reset failed", "error", err)
			os.Exit(1)
		}
		slog.Info("database reset complete")
		return
	}

	slog.Info("setting up database", "path", cfg.DatabasePath)
	if err := st.Initialize(ctx); err != nil {
		slog.Error("setup failed", "error", err)
		os.Exit(1)
	}
	slog.Info("database setup complete")
}
