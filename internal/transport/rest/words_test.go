package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordbot-backend/internal/domain"
	"github.com/heartmarshall/wordbot-backend/internal/service/dictionary"
)

// ---------------------------------------------------------------------------
// Mock (moq-style with func fields)
// ---------------------------------------------------------------------------

type dictionaryServiceMock struct {
	LookupFunc       func(ctx context.Context, text string) (*domain.EnrichmentRecord, error)
	ForgetLookupFunc func(ctx context.Context) error
	SaveFunc         func(ctx context.Context, word string) (domain.SaveOutcome, error)
	ListFunc         func(ctx context.Context) ([]domain.EnrichmentRecord, error)
	DeleteFunc       func(ctx context.Context, word string) error
	ClearFunc        func(ctx context.Context) (int, error)
	ExportFunc       func(ctx context.Context) ([]byte, error)
}

func (m *dictionaryServiceMock) Lookup(ctx context.Context, text string) (*domain.EnrichmentRecord, error) {
	return m.LookupFunc(ctx, text)
}

func (m *dictionaryServiceMock) ForgetLookup(ctx context.Context) error {
	return m.ForgetLookupFunc(ctx)
}

func (m *dictionaryServiceMock) Save(ctx context.Context, word string) (domain.SaveOutcome, error) {
	return m.SaveFunc(ctx, word)
}

func (m *dictionaryServiceMock) List(ctx context.Context) ([]domain.EnrichmentRecord, error) {
	return m.ListFunc(ctx)
}

func (m *dictionaryServiceMock) Delete(ctx context.Context, word string) error {
	return m.DeleteFunc(ctx, word)
}

func (m *dictionaryServiceMock) Clear(ctx context.Context) (int, error) {
	return m.ClearFunc(ctx)
}

func (m *dictionaryServiceMock) Export(ctx context.Context) ([]byte, error) {
	return m.ExportFunc(ctx)
}

func newTestRouter(svc *dictionaryServiceMock) http.Handler {
	mux := http.NewServeMux()
	NewWordHandler(svc, slog.New(slog.NewTextHandler(io.Discard, nil))).Register(mux)
	return mux
}

func serve(h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func ptr(s string) *string { return &s }

// ---------------------------------------------------------------------------
// Lookup
// ---------------------------------------------------------------------------

func TestWordHandler_Lookup_Success(t *testing.T) {
	t.Parallel()

	svc := &dictionaryServiceMock{
		LookupFunc: func(_ context.Context, text string) (*domain.EnrichmentRecord, error) {
			assert.Equal(t, "  Hello ", text)
			return &domain.EnrichmentRecord{
				Word:          "hello",
				Transcription: ptr("/həˈləʊ/"),
				Translation:   ptr("привет"),
			}, nil
		},
	}

	rec := serve(newTestRouter(svc), http.MethodPost, "/v1/lookup", `{"text":"  Hello "}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, "hello", body["word"])
	assert.Equal(t, "привет", body["translation"])
	assert.NotContains(t, body, "example")
	assert.NotContains(t, body, "audio_url")
}

func TestWordHandler_Lookup_InvalidBody(t *testing.T) {
	t.Parallel()

	rec := serve(newTestRouter(&dictionaryServiceMock{}), http.MethodPost, "/v1/lookup", `{not json`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestWordHandler_Lookup_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantReason string
	}{
		{
			name:       "rejected input",
			err:        domain.NewInputRejectedError(domain.RejectInvalidHyphenation),
			wantStatus: http.StatusUnprocessableEntity,
			wantReason: "invalid_hyphenation",
		},
		{
			name:       "word not found",
			err:        fmt.Errorf("resolve %q: %w", "qwzx", domain.ErrWordNotFound),
			wantStatus: http.StatusNotFound,
		},
		{
			name:       "storage unavailable",
			err:        fmt.Errorf("lexicon get: %w", domain.ErrStorageUnavailable),
			wantStatus: http.StatusServiceUnavailable,
		},
		{
			name:       "unauthorized",
			err:        domain.ErrUnauthorized,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unexpected",
			err:        errors.New("boom"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &dictionaryServiceMock{
				LookupFunc: func(context.Context, string) (*domain.EnrichmentRecord, error) {
					return nil, tt.err
				},
			}

			rec := serve(newTestRouter(svc), http.MethodPost, "/v1/lookup", `{"text":"x"}`)

			require.Equal(t, tt.wantStatus, rec.Code)
			var body errorResponse
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.NotEmpty(t, body.Error)
			assert.Equal(t, tt.wantReason, body.Reason)
			if tt.wantReason != "" {
				assert.Equal(t, domain.RejectReason(tt.wantReason).Message(), body.Message)
			}
			if tt.wantStatus == http.StatusServiceUnavailable {
				assert.Equal(t, "5", rec.Header().Get("Retry-After"))
			}
		})
	}
}

func TestWordHandler_ForgetLookup(t *testing.T) {
	t.Parallel()

	called := false
	svc := &dictionaryServiceMock{
		ForgetLookupFunc: func(context.Context) error {
			called = true
			return nil
		},
	}

	rec := serve(newTestRouter(svc), http.MethodDelete, "/v1/lookup", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, called)
}

// ---------------------------------------------------------------------------
// Save
// ---------------------------------------------------------------------------

func TestWordHandler_Save(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		outcome    domain.SaveOutcome
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "created", outcome: domain.SaveCreated, wantStatus: http.StatusCreated, wantBody: "created"},
		{name: "already exists", outcome: domain.SaveAlreadyExists, wantStatus: http.StatusOK, wantBody: "already_exists"},
		{name: "no pending lookup", err: fmt.Errorf("save %q: %w", "hello", dictionary.ErrNoPendingLookup), wantStatus: http.StatusConflict},
		{name: "storage unavailable", err: domain.ErrStorageUnavailable, wantStatus: http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &dictionaryServiceMock{
				SaveFunc: func(_ context.Context, word string) (domain.SaveOutcome, error) {
					assert.Equal(t, "hello", word)
					return tt.outcome, tt.err
				},
			}

			rec := serve(newTestRouter(svc), http.MethodPost, "/v1/words", `{"word":"hello"}`)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				var body saveResponse
				require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
				assert.Equal(t, tt.wantBody, body.Status)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// List / Delete / Clear
// ---------------------------------------------------------------------------

func TestWordHandler_List(t *testing.T) {
	t.Parallel()

	svc := &dictionaryServiceMock{
		ListFunc: func(context.Context) ([]domain.EnrichmentRecord, error) {
			return []domain.EnrichmentRecord{
				{Word: "apple", Translation: ptr("яблоко")},
				{Word: "zebra"},
			}, nil
		},
	}

	rec := serve(newTestRouter(svc), http.MethodGet, "/v1/words", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var body listResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	require.Len(t, body.Words, 2)
	assert.Equal(t, "apple", body.Words[0].Word)
	assert.Equal(t, "zebra", body.Words[1].Word)
	assert.Nil(t, body.Words[1].Translation)
}

func TestWordHandler_List_EmptyIsArray(t *testing.T) {
	t.Parallel()

	svc := &dictionaryServiceMock{
		ListFunc: func(context.Context) ([]domain.EnrichmentRecord, error) { return nil, nil },
	}

	rec := serve(newTestRouter(svc), http.MethodGet, "/v1/words", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"words":[]}`, rec.Body.String())
}

func TestWordHandler_Delete(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "removed", wantStatus: http.StatusNoContent},
		{name: "not saved", err: domain.ErrWordNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			svc := &dictionaryServiceMock{
				DeleteFunc: func(_ context.Context, word string) error {
					assert.Equal(t, "mother-in-law", word)
					return tt.err
				},
			}

			rec := serve(newTestRouter(svc), http.MethodDelete, "/v1/words/mother-in-law", "")

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

func TestWordHandler_Clear(t *testing.T) {
	t.Parallel()

	svc := &dictionaryServiceMock{
		ClearFunc: func(context.Context) (int, error) { return 3, nil },
	}

	rec := serve(newTestRouter(svc), http.MethodDelete, "/v1/words", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"removed":3}`, rec.Body.String())
}

// ---------------------------------------------------------------------------
// Export
// ---------------------------------------------------------------------------

func TestWordHandler_Export(t *testing.T) {
	t.Parallel()

	csv := []byte("word,translation\napple,яблоко\n")
	svc := &dictionaryServiceMock{
		ExportFunc: func(context.Context) ([]byte, error) { return csv, nil },
	}

	rec := serve(newTestRouter(svc), http.MethodGet, "/v1/words/export", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "words.csv")
	assert.Equal(t, string(csv), rec.Body.String())
}

func TestWordHandler_Export_Empty(t *testing.T) {
	t.Parallel()

	svc := &dictionaryServiceMock{
		ExportFunc: func(context.Context) ([]byte, error) { return nil, nil },
	}

	rec := serve(newTestRouter(svc), http.MethodGet, "/v1/words/export", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
}

func TestWordHandler_MethodNotAllowed(t *testing.T) {
	t.Parallel()

	rec := serve(newTestRouter(&dictionaryServiceMock{}), http.MethodPut, "/v1/words", "")

	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
