// Package dictionary implements the owner-facing word operations: lookup,
// save of the pending lookup, listing, removal and CSV export.
package dictionary

import (
	"context"
	"log/slog"

	"github.com/heartmarshall/wordbot-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type resolver interface {
	Resolve(ctx context.Context, ownerID int64, word string) (*domain.EnrichmentRecord, error)
}

type wordRepo interface {
	Save(ctx context.Context, ownerID int64, rec domain.EnrichmentRecord) (domain.SaveOutcome, error)
	List(ctx context.Context, ownerID int64) ([]domain.EnrichmentRecord, error)
	Delete(ctx context.Context, ownerID int64, word string) (bool, error)
	Clear(ctx context.Context, ownerID int64) (int, error)
}

type pendingStore interface {
	Remember(ownerID int64, rec domain.EnrichmentRecord)
	Pending(ownerID int64) (domain.EnrichmentRecord, bool)
	Forget(ownerID int64) bool
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the dictionary business logic. The owner is always
// taken from the context.
type Service struct {
	log      *slog.Logger
	resolver resolver
	words    wordRepo
	pending  pendingStore
}

// NewService creates a new Dictionary service.
func NewService(logger *slog.Logger, resolver resolver, words wordRepo, pending pendingStore) *Service {
	return &Service{
		log:      logger.With("service", "dictionary"),
		resolver: resolver,
		words:    words,
		pending:  pending,
	}
}
