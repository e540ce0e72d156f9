package rest

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/wordbot-backend/internal/domain"
	"github.com/heartmarshall/wordbot-backend/internal/service/dictionary"
)

// storageRetryAfter is the Retry-After hint sent with 503 responses.
const storageRetryAfter = 5

type errorResponse struct {
	Error   string `json:"error"`
	Reason  string `json:"reason,omitempty"`
	Message string `json:"message,omitempty"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// handleError maps a service error to an HTTP response.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	var rejected *domain.InputRejectedError

	switch {
	case errors.As(err, &rejected):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:   "input rejected",
			Reason:  string(rejected.Reason),
			Message: rejected.Reason.Message(),
		})
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, "unauthorized")
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "word not found")
	case errors.Is(err, dictionary.ErrNoPendingLookup):
		writeError(w, http.StatusConflict, "look the word up before saving it")
	case errors.Is(err, domain.ErrStorageUnavailable):
		log.WarnContext(r.Context(), "storage unavailable", slog.String("error", err.Error()))
		w.Header().Set("Retry-After", strconv.Itoa(storageRetryAfter))
		writeError(w, http.StatusServiceUnavailable, "storage unavailable, try again later")
	default:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, http.StatusInternalServerError, "internal server error")
	}
}
