package app

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordbot-backend/internal/adapter/provider/freedict"
	"github.com/heartmarshall/wordbot-backend/internal/adapter/provider/tatoeba"
	"github.com/heartmarshall/wordbot-backend/internal/adapter/provider/translate"
	"github.com/heartmarshall/wordbot-backend/internal/adapter/provider/wikipedia"
	"github.com/heartmarshall/wordbot-backend/internal/config"
	"github.com/heartmarshall/wordbot-backend/internal/domain"
	"github.com/heartmarshall/wordbot-backend/internal/service/enrichment"
)

func testSourcesConfig() config.SourcesConfig {
	return config.SourcesConfig{
		DictionaryURL:      "http://dict.local",
		TranslateURL:       "http://translate.local",
		ExamplesURL:        "http://examples.local",
		ReferenceURL:       "http://wiki.local",
		Timeout:            time.Second,
		RetryAttempts:      4,
		RetryDelay:         25 * time.Millisecond,
		LookupTimeout:      3 * time.Second,
		TranslationEnabled: true,
		TranslationSource:  "en",
		TranslationTarget:  "ru",
	}
}

func TestNewSources(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	sources := NewSources(testSourcesConfig(), logger)

	assert.IsType(t, &freedict.Provider{}, sources.Definitions)
	assert.IsType(t, &translate.Provider{}, sources.Translations)
	assert.IsType(t, &tatoeba.Provider{}, sources.Examples)
	assert.IsType(t, &wikipedia.Provider{}, sources.References)
}

func TestNewSources_TranslationDisabled(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := testSourcesConfig()
	cfg.TranslationEnabled = false

	sources := NewSources(cfg, logger)

	assert.IsType(t, &translate.Stub{}, sources.Translations)
}

func TestNewSources_ReferenceUsesConfiguredBase(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	sources := NewSources(testSourcesConfig(), logger)

	assert.Equal(t, "http://wiki.local/wiki/London", sources.References.ReferenceURL("london"))
}

func TestNewRetryPolicy(t *testing.T) {
	policy := NewRetryPolicy(testSourcesConfig())

	assert.Equal(t, uint(4), policy.Attempts)
	assert.Equal(t, 25*time.Millisecond, policy.Delay)
	assert.Equal(t, 3*time.Second, policy.Budget)
}

type missCache struct{}

func (missCache) Get(context.Context, int64, string) (*domain.EnrichmentRecord, error) {
	return nil, domain.ErrNotFound
}

func TestResolve_HangingSourcesReturnWithinLookupTimeout(t *testing.T) {
	t.Parallel()

	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-release:
		}
	}))
	defer srv.Close()
	defer close(release)

	cfg := config.SourcesConfig{
		DictionaryURL: srv.URL + "/dict",
		TranslateURL:  srv.URL,
		ExamplesURL:   srv.URL,
		ReferenceURL:  srv.URL,
		Timeout:       time.Second,
		RetryAttempts: 3,
		RetryDelay:    50 * time.Millisecond,
		LookupTimeout: 500 * time.Millisecond,
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := enrichment.NewService(logger, missCache{}, NewSources(cfg, logger), NewRetryPolicy(cfg))

	start := time.Now()
	got, err := svc.Resolve(context.Background(), 1, "hello")
	elapsed := time.Since(start)

	require.ErrorIs(t, err, domain.ErrWordNotFound)
	assert.Nil(t, got)
	assert.Less(t, elapsed, 2*time.Second, "lookup must stop at the lookup timeout, took %v", elapsed)
}
