package freedict

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/heartmarshall/wordbot-backend/internal/provider"
)

const (
	defaultBaseURL = "https://api.dictionaryapi.dev/api/v2/entries/en"
	defaultTimeout = 10 * time.Second
)

// Provider fetches definitions, phonetics and examples from the FreeDictionary API.
type Provider struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
	userAgent  string
	log        *slog.Logger
}

// NewProvider creates a Provider. Unset options fall back to the public
// FreeDictionary endpoint and a 10s timeout.
func NewProvider(opts provider.ClientOptions, logger *slog.Logger) *Provider {
	return &Provider{
		baseURL:    strings.TrimRight(opts.BaseURLOr(defaultBaseURL), "/"),
		httpClient: &http.Client{Timeout: opts.TimeoutOr(defaultTimeout)},
		limiter:    opts.Limiter(),
		userAgent:  opts.UserAgent,
		log:        logger.With("adapter", "freedict"),
	}
}

// FetchDefinition fetches the dictionary entry for word and extracts the
// transcription, audio link and usage example from it.
// Returns nil, nil if the API has no usable entry for the word.
// Any other failure wraps provider.ErrSourceUnavailable.
func (p *Provider) FetchDefinition(ctx context.Context, word string) (*provider.DefinitionResult, error) {
	if err := p.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("freedict: rate limit: %w: %w", provider.ErrSourceUnavailable, err)
	}

	reqURL := p.baseURL + "/" + url.PathEscape(word)

	p.log.DebugContext(ctx, "freedict request", slog.String("word", word))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("freedict: create request: %w: %w", provider.ErrSourceUnavailable, err)
	}
	if p.userAgent != "" {
		req.Header.Set("User-Agent", p.userAgent)
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("freedict: request failed: %w: %w", provider.ErrSourceUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("freedict: unexpected status %d: %w", resp.StatusCode, provider.ErrSourceUnavailable)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("freedict: read body: %w: %w", provider.ErrSourceUnavailable, err)
	}

	var entries []apiEntry
	if err := json.Unmarshal(body, &entries); err != nil {
		return nil, fmt.Errorf("freedict: decode json: %w: %w", provider.ErrSourceUnavailable, err)
	}

	result := mapAPIResponse(entries)

	p.log.DebugContext(ctx, "freedict response",
		slog.String("word", word),
		slog.Int("entries", len(entries)),
		slog.Bool("usable", result != nil),
	)

	return result, nil
}

// mapAPIResponse extracts a DefinitionResult from the first usable entry
// (the first one with a word). Transcription and audio are taken
// independently, each from the first phonetic variant that has it; the
// example is the first non-empty one scanning meanings, then definitions,
// in order. Returns nil when no entry is usable.
func mapAPIResponse(entries []apiEntry) *provider.DefinitionResult {
	for _, entry := range entries {
		if strings.TrimSpace(entry.Word) == "" {
			continue
		}
		return &provider.DefinitionResult{
			Word:          strings.TrimSpace(entry.Word),
			Transcription: firstTranscription(entry),
			AudioURL:      firstAudio(entry.Phonetics),
			Example:       firstExample(entry.Meanings),
		}
	}
	return nil
}

func firstTranscription(entry apiEntry) *string {
	for _, ph := range entry.Phonetics {
		if t := strings.TrimSpace(ph.Text); t != "" {
			return &t
		}
	}
	// Some entries only carry the headline phonetic.
	if t := strings.TrimSpace(entry.Phonetic); t != "" {
		return &t
	}
	return nil
}

func firstAudio(phonetics []apiPhonetic) *string {
	for _, ph := range phonetics {
		if a := strings.TrimSpace(ph.Audio); a != "" {
			abs := absoluteAudioURL(a)
			return &abs
		}
	}
	return nil
}

func firstExample(meanings []apiMeaning) *string {
	for _, m := range meanings {
		for _, def := range m.Definitions {
			if ex := strings.TrimSpace(def.Example); ex != "" {
				return &ex
			}
		}
	}
	return nil
}

// absoluteAudioURL rewrites protocol-relative links ("//host/a.mp3") to https.
func absoluteAudioURL(raw string) string {
	if strings.HasPrefix(raw, "//") {
		return "https:" + raw
	}
	return raw
}
