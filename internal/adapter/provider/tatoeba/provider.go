// Package tatoeba implements the fallback usage-example source backed by
// the Tatoeba sentence corpus search API.
package tatoeba

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/heartmarshall/wordbot-backend/internal/provider"
)

const (
	defaultBaseURL = "https://tatoeba.org"
	defaultTimeout = 5 * time.Second
	searchPath     = "/en/api_v0/search"
)

// searchResponse is the subset of the search payload we read.
type searchResponse struct {
	Results []searchResult `json:"results"`
}

type searchResult struct {
	Text string `json:"text"`
	Lang string `json:"lang"`
}

// Provider finds example sentences for English words.
type Provider struct {
	client  *resty.Client
	limiter *rate.Limiter
	log     *slog.Logger
}

// NewProvider creates a Provider.
func NewProvider(opts provider.ClientOptions, logger *slog.Logger) *Provider {
	client := resty.New().
		SetBaseURL(strings.TrimRight(opts.BaseURLOr(defaultBaseURL), "/")).
		SetTimeout(opts.TimeoutOr(defaultTimeout)).
		SetHeader("Accept", "application/json")
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}

	return &Provider{
		client:  client,
		limiter: opts.Limiter(),
		log:     logger.With("adapter", "tatoeba"),
	}
}

// Example returns the most relevant English sentence using word as an
// exact token, or nil when the corpus has none.
func (p *Provider) Example(ctx context.Context, word string) (*string, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("tatoeba: rate limit: %w: %w", provider.ErrSourceUnavailable, err)
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"from":       "eng",
			"query":      "=" + word,
			"orphans":    "no",
			"unapproved": "no",
			"sort":       "relevance",
		}).
		Get(searchPath)
	if err != nil {
		return nil, fmt.Errorf("tatoeba: request failed: %w: %w", provider.ErrSourceUnavailable, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("tatoeba: unexpected status %d: %w", resp.StatusCode(), provider.ErrSourceUnavailable)
	}

	var payload searchResponse
	if err := json.Unmarshal(resp.Body(), &payload); err != nil {
		return nil, fmt.Errorf("tatoeba: decode json: %w: %w", provider.ErrSourceUnavailable, err)
	}

	sentence := firstSentence(payload.Results, word)

	p.log.DebugContext(ctx, "tatoeba response",
		slog.String("word", word),
		slog.Int("results", len(payload.Results)),
	)

	return sentence, nil
}

// firstSentence returns the first English sentence that has word as a
// whole token.
func firstSentence(results []searchResult, word string) *string {
	for _, r := range results {
		if r.Lang != "" && r.Lang != "eng" {
			continue
		}
		text := strings.TrimSpace(r.Text)
		if text != "" && containsWord(text, word) {
			return &text
		}
	}
	return nil
}

// containsWord reports whether text has word as a token. Tokens are runs of
// letters and inner hyphens; comparison ignores case.
func containsWord(text, word string) bool {
	tokens := strings.FieldsFunc(text, func(r rune) bool {
		return !unicode.IsLetter(r) && r != '-'
	})
	for _, tok := range tokens {
		if strings.EqualFold(strings.Trim(tok, "-"), word) {
			return true
		}
	}
	return false
}
