// Package wikipedia implements the existence check used to recognise
// proper nouns that dictionaries do not cover.
package wikipedia

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/heartmarshall/wordbot-backend/internal/provider"
)

const (
	defaultBaseURL = "https://en.wikipedia.org"
	defaultTimeout = 5 * time.Second
	articlePrefix  = "/wiki/"
)

// Provider checks whether an encyclopedia article exists.
type Provider struct {
	baseURL string
	client  *resty.Client
	limiter *rate.Limiter
	log     *slog.Logger
}

// NewProvider creates a Provider. Wikipedia rejects requests without a
// descriptive User-Agent, so one should be configured.
func NewProvider(opts provider.ClientOptions, logger *slog.Logger) *Provider {
	baseURL := strings.TrimRight(opts.BaseURLOr(defaultBaseURL), "/")
	client := resty.New().
		SetTimeout(opts.TimeoutOr(defaultTimeout)).
		SetRedirectPolicy(resty.FlexibleRedirectPolicy(5))
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}

	return &Provider{
		baseURL: baseURL,
		client:  client,
		limiter: opts.Limiter(),
		log:     logger.With("adapter", "wikipedia"),
	}
}

// ReferenceURL returns the article URL for word, capitalizing its first
// letter the way article titles are stored.
func (p *Provider) ReferenceURL(word string) string {
	return p.baseURL + articlePrefix + url.PathEscape(articleTitle(word))
}

// Exists reports whether reference resolves to an article.
// 404 means false; any other non-2xx status or transport failure wraps
// provider.ErrSourceUnavailable.
func (p *Provider) Exists(ctx context.Context, reference string) (bool, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return false, fmt.Errorf("wikipedia: rate limit: %w: %w", provider.ErrSourceUnavailable, err)
	}

	resp, err := p.client.R().
		SetContext(ctx).
		Head(reference)
	if err != nil {
		return false, fmt.Errorf("wikipedia: request failed: %w: %w", provider.ErrSourceUnavailable, err)
	}

	p.log.DebugContext(ctx, "wikipedia response",
		slog.String("reference", reference),
		slog.Int("status", resp.StatusCode()),
	)

	switch {
	case resp.StatusCode() == http.StatusNotFound:
		return false, nil
	case resp.StatusCode() >= 200 && resp.StatusCode() < 300:
		return true, nil
	default:
		return false, fmt.Errorf("wikipedia: unexpected status %d: %w", resp.StatusCode(), provider.ErrSourceUnavailable)
	}
}

func articleTitle(word string) string {
	r, size := utf8.DecodeRuneInString(word)
	if r == utf8.RuneError {
		return word
	}
	return string(unicode.ToUpper(r)) + word[size:]
}
