package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/wordbot-backend/internal/app"
	"github.com/heartmarshall/wordbot-backend/internal/domain"
	"github.com/heartmarshall/wordbot-backend/internal/service/enrichment"
)

// noCache makes every lookup go to the external sources.
type noCache struct{}

func (noCache) Get(context.Context, int64, string) (*domain.EnrichmentRecord, error) {
	return nil, domain.ErrNotFound
}

func newLookupCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <word>",
		Short: "Resolve a word against the external sources without saving it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			word, reason := domain.ValidateWord(args[0])
			if reason != domain.RejectNone {
				return fmt.Errorf("%w: %s", domain.NewInputRejectedError(reason), reason.Message())
			}

			cfg, logger, err := loadConfig()
			if err != nil {
				return err
			}

			resolver := enrichment.NewService(logger, noCache{}, app.NewSources(cfg.Sources, logger), app.NewRetryPolicy(cfg.Sources))

			// Owner 1 is never used for storage here; the cache is a no-op.
			rec, err := resolver.Resolve(cmd.Context(), 1, word)
			if errors.Is(err, domain.ErrWordNotFound) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: not found\n", word)
				return nil
			}
			if err != nil {
				return fmt.Errorf("lookup %q: %w", word, err)
			}

			printRecord(cmd.OutOrStdout(), *rec)
			return nil
		},
	}
}
