package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordbot-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wordbot-backend/internal/app"
	"github.com/heartmarshall/wordbot-backend/internal/config"
	"github.com/heartmarshall/wordbot-backend/internal/domain"
)

func loadConfig() (*config.Config, *slog.Logger, error) {
	path := configFile
	if path == "" {
		path = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, nil, err
	}
	return cfg, app.NewLogger(cfg.Log), nil
}

func connect(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}
	return pool, nil
}

func addOwnerFlag(cmd *cobra.Command, owner *int64) {
	cmd.Flags().Int64Var(owner, "owner", 0, "owner id (required, positive)")
	_ = cmd.MarkFlagRequired("owner")
}

func checkOwner(owner int64) error {
	if owner <= 0 {
		return fmt.Errorf("--owner must be positive (got %d)", owner)
	}
	return nil
}

func printRecord(w io.Writer, rec domain.EnrichmentRecord) {
	fmt.Fprintf(w, "word:          %s\n", rec.Word)
	printField(w, "transcription", rec.Transcription)
	printField(w, "translation", rec.Translation)
	printField(w, "example", rec.Example)
	printField(w, "audio", rec.AudioURL)
}

func printField(w io.Writer, name string, value *string) {
	v := "-"
	if value != nil {
		v = *value
	}
	fmt.Fprintf(w, "%-14s %s\n", name+":", v)
}
