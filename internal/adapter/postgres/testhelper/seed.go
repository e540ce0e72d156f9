package testhelper

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/wordbot-backend/internal/domain"
)

var ownerSeq atomic.Int64

// NewOwnerID returns an owner id no other test in this process uses, so
// parallel tests sharing one database never see each other's rows.
func NewOwnerID() int64 {
	return time.Now().UnixNano()/1000 + ownerSeq.Add(1)
}

// SeedWord inserts a user_words row directly and returns the stored record.
func SeedWord(t *testing.T, pool *pgxpool.Pool, ownerID int64, rec domain.EnrichmentRecord) domain.EnrichmentRecord {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO user_words (owner_id, word, transcription, translation, example, audio_url)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		ownerID, rec.Word, rec.Transcription, rec.Translation, rec.Example, rec.AudioURL,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedWord insert %q: %v", rec.Word, err)
	}

	return rec
}

// CountWords returns how many rows ownerID has.
func CountWords(t *testing.T, pool *pgxpool.Pool, ownerID int64) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM user_words WHERE owner_id = $1`, ownerID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountWords: %v", err)
	}
	return n
}
