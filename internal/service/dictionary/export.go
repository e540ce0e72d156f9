package dictionary

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"

	"github.com/heartmarshall/wordbot-backend/internal/domain"
)

var exportHeader = []string{"word", "translation"}

// Export renders the owner's dictionary as CSV with a word,translation
// header. Returns nil when the dictionary is empty.
func (s *Service) Export(ctx context.Context) ([]byte, error) {
	records, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}

	return encodeCSV(records)
}

func encodeCSV(records []domain.EnrichmentRecord) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(exportHeader); err != nil {
		return nil, fmt.Errorf("write csv header: %w", err)
	}
	for _, rec := range records {
		translation := ""
		if rec.Translation != nil {
			translation = *rec.Translation
		}
		if err := w.Write([]string{rec.Word, translation}); err != nil {
			return nil, fmt.Errorf("write csv row %q: %w", rec.Word, err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("flush csv: %w", err)
	}
	return buf.Bytes(), nil
}
