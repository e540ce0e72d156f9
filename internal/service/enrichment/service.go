// Package enrichment resolves a canonical word into an EnrichmentRecord by
// consulting the owner's cache first and the external sources on a miss.
package enrichment

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/avast/retry-go"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/wordbot-backend/internal/domain"
	"github.com/heartmarshall/wordbot-backend/internal/provider"
)

type lexiconCache interface {
	Get(ctx context.Context, ownerID int64, word string) (*domain.EnrichmentRecord, error)
}

type definitionSource interface {
	FetchDefinition(ctx context.Context, word string) (*provider.DefinitionResult, error)
}

type translationSource interface {
	Translate(ctx context.Context, word string) (*string, error)
}

type exampleSource interface {
	Example(ctx context.Context, word string) (*string, error)
}

type referenceSource interface {
	ReferenceURL(word string) string
	Exists(ctx context.Context, reference string) (bool, error)
}

// RetryPolicy controls how failed source calls are repeated.
// Attempts counts the first call; absent results are never retried.
// Budget bounds all source calls of one Resolve; a stage still running when
// it expires counts as absent. Zero means unbounded.
type RetryPolicy struct {
	Attempts uint
	Delay    time.Duration
	Budget   time.Duration
}

// Sources groups the external clients the service fans out to.
type Sources struct {
	Definitions  definitionSource
	Translations translationSource
	Examples     exampleSource
	References   referenceSource
}

// Service is the enrichment orchestrator.
type Service struct {
	log     *slog.Logger
	cache   lexiconCache
	sources Sources
	retry   RetryPolicy
}

// NewService creates a new enrichment service.
func NewService(logger *slog.Logger, cache lexiconCache, sources Sources, policy RetryPolicy) *Service {
	if policy.Attempts == 0 {
		policy.Attempts = 1
	}
	return &Service{
		log:     logger.With("service", "enrichment"),
		cache:   cache,
		sources: sources,
		retry:   policy,
	}
}

// Resolve returns the record for word as seen by ownerID. word must already
// be canonical. A cached record is returned without any network call.
// Nothing is persisted here.
//
// Returns domain.ErrWordNotFound only when the definitions source has
// nothing and the existence check is negative.
func (s *Service) Resolve(ctx context.Context, ownerID int64, word string) (*domain.EnrichmentRecord, error) {
	cached, err := s.cache.Get(ctx, ownerID, word)
	if err == nil {
		s.log.DebugContext(ctx, "cache hit", slog.String("word", word))
		return cached, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, fmt.Errorf("lexicon get: %w", err)
	}

	sctx := ctx
	if s.retry.Budget > 0 {
		var cancel context.CancelFunc
		sctx, cancel = context.WithTimeout(ctx, s.retry.Budget)
		defer cancel()
	}

	def := s.fetchDefinition(sctx, word)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if def == nil {
		return s.resolveReference(ctx, sctx, word)
	}

	rec := &domain.EnrichmentRecord{
		Word:          word,
		Transcription: def.Transcription,
		AudioURL:      def.AudioURL,
		Example:       def.Example,
	}

	var (
		g           errgroup.Group
		translation *string
		fallback    *string
	)
	g.Go(func() error {
		translation = fetch(sctx, s, "translation", word, s.sources.Translations.Translate)
		return nil
	})
	if rec.Example == nil {
		g.Go(func() error {
			fallback = fetch(sctx, s, "example", word, s.sources.Examples.Example)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rec.Translation = translation
	if rec.Example == nil {
		rec.Example = fallback
	}

	s.log.InfoContext(ctx, "word resolved",
		slog.String("word", word),
		slog.Bool("transcription", rec.Transcription != nil),
		slog.Bool("translation", rec.Translation != nil),
		slog.Bool("example", rec.Example != nil),
		slog.Bool("audio", rec.AudioURL != nil),
	)

	return rec, nil
}

func (s *Service) fetchDefinition(ctx context.Context, word string) *provider.DefinitionResult {
	return fetch(ctx, s, "definitions", word, s.sources.Definitions.FetchDefinition)
}

// resolveReference handles words no dictionary knows: proper nouns get a
// record pointing at their encyclopedia article. Source calls run under
// sctx; ctx decides whether the caller is still waiting.
func (s *Service) resolveReference(ctx, sctx context.Context, word string) (*domain.EnrichmentRecord, error) {
	ref := s.sources.References.ReferenceURL(word)

	exists := fetch(sctx, s, "existence", word, func(ctx context.Context, _ string) (*bool, error) {
		ok, err := s.sources.References.Exists(ctx, ref)
		if err != nil || !ok {
			return nil, err
		}
		return &ok, nil
	})
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if exists == nil {
		s.log.InfoContext(ctx, "word not found", slog.String("word", word))
		return nil, domain.ErrWordNotFound
	}

	pointer := "proper noun, see " + ref
	return &domain.EnrichmentRecord{Word: word, Translation: &pointer}, nil
}

// fetch calls fn(ctx, word) under the retry policy. A nil result is final;
// an error is retried and, once attempts run out, logged and reported as nil.
func fetch[T any](
	ctx context.Context,
	s *Service,
	source, word string,
	fn func(ctx context.Context, word string) (*T, error),
) *T {
	var result *T
	err := retry.Do(
		func() error {
			var err error
			result, err = fn(ctx, word)
			return err
		},
		retry.Context(ctx),
		retry.Attempts(s.retry.Attempts),
		retry.Delay(s.retry.Delay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.RetryIf(func(error) bool { return ctx.Err() == nil }),
		retry.OnRetry(func(n uint, err error) {
			s.log.DebugContext(ctx, "source call failed, retrying",
				slog.String("source", source),
				slog.String("word", word),
				slog.Uint64("attempt", uint64(n+1)),
				slog.String("error", err.Error()),
			)
		}),
	)
	if err != nil {
		level := slog.LevelWarn
		if !errors.Is(err, provider.ErrSourceUnavailable) && !errors.Is(err, context.DeadlineExceeded) {
			level = slog.LevelDebug
		}
		s.log.Log(ctx, level, "source unavailable, treating as absent",
			slog.String("source", source),
			slog.String("word", word),
			slog.String("error", err.Error()),
		)
		return nil
	}
	return result
}
