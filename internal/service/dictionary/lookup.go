package dictionary

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/wordbot-backend/internal/domain"
	"github.com/heartmarshall/wordbot-backend/pkg/ctxutil"
)

// Lookup validates text, resolves it and remembers the result as the
// owner's pending lookup. Nothing is persisted.
func (s *Service) Lookup(ctx context.Context, text string) (*domain.EnrichmentRecord, error) {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	word, reason := domain.ValidateWord(text)
	if reason != domain.RejectNone {
		s.log.DebugContext(ctx, "input rejected",
			slog.String("reason", reason.String()),
		)
		return nil, domain.NewInputRejectedError(reason)
	}

	rec, err := s.resolver.Resolve(ctx, ownerID, word)
	if err != nil {
		return nil, fmt.Errorf("resolve %q: %w", word, err)
	}

	s.pending.Remember(ownerID, *rec)
	return rec, nil
}

// ForgetLookup drops the owner's pending lookup, if any.
func (s *Service) ForgetLookup(ctx context.Context) error {
	ownerID, ok := ctxutil.OwnerIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	s.pending.Forget(ownerID)
	return nil
}
