package rest

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/wordbot-backend/internal/domain"
)

// dictionaryService defines the minimal interface needed by WordHandler.
type dictionaryService interface {
	Lookup(ctx context.Context, text string) (*domain.EnrichmentRecord, error)
	ForgetLookup(ctx context.Context) error
	Save(ctx context.Context, word string) (domain.SaveOutcome, error)
	List(ctx context.Context) ([]domain.EnrichmentRecord, error)
	Delete(ctx context.Context, word string) error
	Clear(ctx context.Context) (int, error)
	Export(ctx context.Context) ([]byte, error)
}

// WordHandler serves the lookup and dictionary endpoints.
type WordHandler struct {
	svc dictionaryService
	log *slog.Logger
}

// NewWordHandler creates a WordHandler.
func NewWordHandler(svc dictionaryService, logger *slog.Logger) *WordHandler {
	return &WordHandler{svc: svc, log: logger.With("handler", "words")}
}

// Register mounts the handler's routes on mux.
func (h *WordHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /v1/lookup", h.Lookup)
	mux.HandleFunc("DELETE /v1/lookup", h.ForgetLookup)
	mux.HandleFunc("POST /v1/words", h.Save)
	mux.HandleFunc("GET /v1/words", h.List)
	mux.HandleFunc("DELETE /v1/words", h.Clear)
	mux.HandleFunc("DELETE /v1/words/{word}", h.Delete)
	mux.HandleFunc("GET /v1/words/export", h.Export)
}

type lookupRequest struct {
	Text string `json:"text"`
}

type saveRequest struct {
	Word string `json:"word"`
}

type recordResponse struct {
	Word          string  `json:"word"`
	Transcription *string `json:"transcription,omitempty"`
	Translation   *string `json:"translation,omitempty"`
	Example       *string `json:"example,omitempty"`
	AudioURL      *string `json:"audio_url,omitempty"`
}

type saveResponse struct {
	Status string `json:"status"`
}

type listResponse struct {
	Words []recordResponse `json:"words"`
}

type clearResponse struct {
	Removed int `json:"removed"`
}

// Lookup handles POST /v1/lookup.
func (h *WordHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	var req lookupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	rec, err := h.svc.Lookup(r.Context(), req.Text)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusOK, toRecordResponse(*rec))
}

// ForgetLookup handles DELETE /v1/lookup.
func (h *WordHandler) ForgetLookup(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.ForgetLookup(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Save handles POST /v1/words.
func (h *WordHandler) Save(w http.ResponseWriter, r *http.Request) {
	var req saveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	outcome, err := h.svc.Save(r.Context(), req.Word)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	status := http.StatusCreated
	if outcome == domain.SaveAlreadyExists {
		status = http.StatusOK
	}
	writeJSON(w, status, saveResponse{Status: outcome.String()})
}

// List handles GET /v1/words.
func (h *WordHandler) List(w http.ResponseWriter, r *http.Request) {
	records, err := h.svc.List(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := listResponse{Words: make([]recordResponse, 0, len(records))}
	for _, rec := range records {
		resp.Words = append(resp.Words, toRecordResponse(rec))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Delete handles DELETE /v1/words/{word}.
func (h *WordHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.Delete(r.Context(), r.PathValue("word")); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Clear handles DELETE /v1/words.
func (h *WordHandler) Clear(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.Clear(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, clearResponse{Removed: n})
}

// Export handles GET /v1/words/export.
func (h *WordHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.svc.Export(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if len(data) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="words.csv"`)
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data) //nolint:errcheck
}

func toRecordResponse(rec domain.EnrichmentRecord) recordResponse {
	return recordResponse{
		Word:          rec.Word,
		Transcription: rec.Transcription,
		Translation:   rec.Translation,
		Example:       rec.Example,
		AudioURL:      rec.AudioURL,
	}
}
