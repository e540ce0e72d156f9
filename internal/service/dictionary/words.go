package dictionary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wordbot-backend/internal/domain"
	"github.com/heartmarshall/wordbot-backend/pkg/ctxutil"
)

// Save persists the owner's pending lookup for word. The record saved is
// exactly the one the owner was shown; saving it again reports
// domain.SaveAlreadyExists and leaves the stored record untouched.
func (s *Service) Save(ctx context.Context, word string) (domain.SaveOutcome, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	canonical := domain.Canonicalize(word)
	rec, ok := s.pending.Pending(ownerID)
	if !ok || rec.Word != canonical {
		return 0, fmt.Errorf("save %q: %w", canonical, ErrNoPendingLookup)
	}

	outcome, err := s.words.Save(ctx, ownerID, rec)
	if err != nil {
		return 0, fmt.Errorf("save %q: %w", canonical, err)
	}

	s.log.InfoContext(ctx, "word saved",
		slog.String("word", canonical),
		slog.String("outcome", outcome.String()),
	)
	return outcome, nil
}

// List returns the owner's saved records ordered by word.
func (s *Service) List(ctx context.Context) ([]domain.EnrichmentRecord, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	records, err := s.words.List(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("list words: %w", err)
	}
	return records, nil
}

// Delete removes word from the owner's dictionary.
// Returns domain.ErrWordNotFound if it was not saved.
func (s *Service) Delete(ctx context.Context, word string) error {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	canonical := domain.Canonicalize(word)
	removed, err := s.words.Delete(ctx, ownerID, canonical)
	if err != nil {
		return fmt.Errorf("delete %q: %w", canonical, err)
	}
	if !removed {
		return fmt.Errorf("delete %q: %w", canonical, domain.ErrWordNotFound)
	}

	s.log.InfoContext(ctx, "word deleted", slog.String("word", canonical))
	return nil
}

// Clear removes every saved word of the owner and returns how many were removed.
func (s *Service) Clear(ctx context.Context) (int, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return 0, domain.ErrUnauthorized
	}

	n, err := s.words.Clear(ctx, ownerID)
	if err != nil {
		return 0, fmt.Errorf("clear words: %w", err)
	}

	s.log.InfoContext(ctx, "dictionary cleared", slog.Int("removed", n))
	return n, nil
}
