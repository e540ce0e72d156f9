// Package translate implements the single-pair word translation source
// on top of the public Google Translate web endpoint.
package translate

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/time/rate"

	"github.com/heartmarshall/wordbot-backend/internal/provider"
)

const (
	defaultBaseURL = "https://translate.googleapis.com"
	defaultTimeout = 5 * time.Second
	translatePath  = "/translate_a/single"
)

// Provider translates single words from one configured language to another.
type Provider struct {
	client  *resty.Client
	limiter *rate.Limiter
	source  string
	target  string
	log     *slog.Logger
}

// NewProvider creates a Provider translating from source to target
// (ISO 639-1 codes, e.g. "en" and "ru").
func NewProvider(opts provider.ClientOptions, source, target string, logger *slog.Logger) *Provider {
	client := resty.New().
		SetBaseURL(strings.TrimRight(opts.BaseURLOr(defaultBaseURL), "/")).
		SetTimeout(opts.TimeoutOr(defaultTimeout))
	if opts.UserAgent != "" {
		client.SetHeader("User-Agent", opts.UserAgent)
	}

	return &Provider{
		client:  client,
		limiter: opts.Limiter(),
		source:  source,
		target:  target,
		log:     logger.With("adapter", "translate"),
	}
}

// Translate returns the translation of word, or nil if the service
// returned nothing. Failures wrap provider.ErrSourceUnavailable.
func (p *Provider) Translate(ctx context.Context, word string) (*string, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("translate: rate limit: %w: %w", provider.ErrSourceUnavailable, err)
	}

	resp, err := p.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"client": "gtx",
			"sl":     p.source,
			"tl":     p.target,
			"dt":     "t",
			"q":      word,
		}).
		Get(translatePath)
	if err != nil {
		return nil, fmt.Errorf("translate: request failed: %w: %w", provider.ErrSourceUnavailable, err)
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, fmt.Errorf("translate: unexpected status %d: %w", resp.StatusCode(), provider.ErrSourceUnavailable)
	}

	text, err := parseResponse(resp.Body())
	if err != nil {
		return nil, fmt.Errorf("translate: decode json: %w: %w", provider.ErrSourceUnavailable, err)
	}

	p.log.DebugContext(ctx, "translate response",
		slog.String("word", word),
		slog.String("translation", text),
	)

	if text == "" {
		return nil, nil
	}
	return &text, nil
}

// parseResponse extracts the translated text from the positional array
// payload: [[["<translated>","<original>",...], ...], ...].
// Segments are concatenated in order.
func parseResponse(body []byte) (string, error) {
	var top []json.RawMessage
	if err := json.Unmarshal(body, &top); err != nil {
		return "", err
	}
	if len(top) == 0 {
		return "", nil
	}

	var segments [][]json.RawMessage
	if err := json.Unmarshal(top[0], &segments); err != nil {
		return "", err
	}

	var b strings.Builder
	for _, seg := range segments {
		if len(seg) == 0 {
			continue
		}
		var part string
		if err := json.Unmarshal(seg[0], &part); err != nil {
			continue
		}
		b.WriteString(part)
	}
	return strings.TrimSpace(b.String()), nil
}
