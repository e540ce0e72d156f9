package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordbot-backend/internal/adapter/postgres/lexicon"
	"github.com/heartmarshall/wordbot-backend/internal/service/dictionary"
	"github.com/heartmarshall/wordbot-backend/internal/service/session"
	"github.com/heartmarshall/wordbot-backend/pkg/ctxutil"
)

// newDictionary builds a dictionary service for storage-only commands.
// Lookup is never called on it, so no resolver is wired.
func newDictionary(pool *pgxpool.Pool, logger *slog.Logger) *dictionary.Service {
	return dictionary.NewService(logger, nil, lexicon.New(pool), session.NewStore(1, 0))
}

func newExportCommand() *cobra.Command {
	var (
		owner int64
		out   string
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Export an owner's dictionary as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOwner(owner); err != nil {
				return err
			}
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			pool, err := connect(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			ctx := ctxutil.WithOwnerID(cmd.Context(), owner)
			data, err := newDictionary(pool, logger).Export(ctx)
			if err != nil {
				return fmt.Errorf("export: %w", err)
			}
			if len(data) == 0 {
				fmt.Fprintf(cmd.ErrOrStderr(), "owner %d has no saved words\n", owner)
				return nil
			}

			if out == "" || out == "-" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}
			if err := os.WriteFile(out, data, 0o644); err != nil {
				return fmt.Errorf("write %s: %w", out, err)
			}
			fmt.Fprintf(cmd.ErrOrStderr(), "exported to %s\n", out)
			return nil
		},
	}
	addOwnerFlag(cmd, &owner)
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default stdout)")
	return cmd
}

func newClearCommand() *cobra.Command {
	var owner int64

	cmd := &cobra.Command{
		Use:   "clear",
		Short: "Remove every saved word of an owner",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := checkOwner(owner); err != nil {
				return err
			}
			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}
			pool, err := connect(cmd.Context(), cfg)
			if err != nil {
				return err
			}
			defer pool.Close()

			ctx := ctxutil.WithOwnerID(cmd.Context(), owner)
			n, err := newDictionary(pool, logger).Clear(ctx)
			if err != nil {
				return fmt.Errorf("clear: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %d words\n", n)
			return nil
		},
	}
	addOwnerFlag(cmd, &owner)
	return cmd
}
