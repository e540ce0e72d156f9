// Package lexicon implements the per-owner lexical cache on PostgreSQL.
// Rows are keyed by (owner_id, word) and never updated after insert.
package lexicon

import (
	"context"
	"fmt"
	"strconv"

	"github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"

	postgres "github.com/heartmarshall/wordbot-backend/internal/adapter/postgres"
	"github.com/heartmarshall/wordbot-backend/internal/domain"
)

const (
	tableName = "user_words"
	entity    = "user_word"
)

var recordColumns = []string{"word", "transcription", "translation", "example", "audio_url"}

// wordRow is the scan target for user_words.
type wordRow struct {
	Word          string  `db:"word"`
	Transcription *string `db:"transcription"`
	Translation   *string `db:"translation"`
	Example       *string `db:"example"`
	AudioURL      *string `db:"audio_url"`
}

// Repo provides lexical cache persistence backed by PostgreSQL.
type Repo struct {
	q  postgres.Querier
	sb squirrel.StatementBuilderType
}

// New creates a new lexicon repository.
func New(q postgres.Querier) *Repo {
	return &Repo{
		q:  q,
		sb: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// Get returns the cached record for (ownerID, word).
// Returns domain.ErrNotFound if the owner has not saved the word.
func (r *Repo) Get(ctx context.Context, ownerID int64, word string) (*domain.EnrichmentRecord, error) {
	query, args, err := r.sb.
		Select(recordColumns...).
		From(tableName).
		Where(squirrel.Eq{"owner_id": ownerID, "word": word}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get %s: %w", entity, err)
	}

	var row wordRow
	if err := pgxscan.Get(ctx, r.q, &row, query, args...); err != nil {
		if pgxscan.NotFound(err) {
			return nil, fmt.Errorf("%s %s: %w", entity, key(ownerID, word), domain.ErrNotFound)
		}
		return nil, postgres.MapError(err, entity, key(ownerID, word))
	}

	rec := toDomain(row)
	return &rec, nil
}

// List returns every record of ownerID ordered by word.
// Returns an empty slice when the owner has nothing saved.
func (r *Repo) List(ctx context.Context, ownerID int64) ([]domain.EnrichmentRecord, error) {
	query, args, err := r.sb.
		Select(recordColumns...).
		From(tableName).
		Where(squirrel.Eq{"owner_id": ownerID}).
		OrderBy("word ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build list %s: %w", entity, err)
	}

	var rows []wordRow
	if err := pgxscan.Select(ctx, r.q, &rows, query, args...); err != nil {
		return nil, postgres.MapError(err, entity, ownerKey(ownerID))
	}

	records := make([]domain.EnrichmentRecord, len(rows))
	for i, row := range rows {
		records[i] = toDomain(row)
	}
	return records, nil
}

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Save inserts rec for ownerID unless the pair already exists. The unique
// constraint decides the outcome, so concurrent saves of the same pair
// produce exactly one SaveCreated. An existing row is never overwritten.
func (r *Repo) Save(ctx context.Context, ownerID int64, rec domain.EnrichmentRecord) (domain.SaveOutcome, error) {
	query, args, err := r.sb.
		Insert(tableName).
		Columns("owner_id", "word", "transcription", "translation", "example", "audio_url").
		Values(ownerID, rec.Word, rec.Transcription, rec.Translation, rec.Example, rec.AudioURL).
		Suffix("ON CONFLICT (owner_id, word) DO NOTHING").
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build insert %s: %w", entity, err)
	}

	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, entity, key(ownerID, rec.Word))
	}

	if tag.RowsAffected() == 0 {
		return domain.SaveAlreadyExists, nil
	}
	return domain.SaveCreated, nil
}

// Delete removes (ownerID, word). Reports whether a row was removed.
func (r *Repo) Delete(ctx context.Context, ownerID int64, word string) (bool, error) {
	query, args, err := r.sb.
		Delete(tableName).
		Where(squirrel.Eq{"owner_id": ownerID, "word": word}).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("build delete %s: %w", entity, err)
	}

	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return false, postgres.MapError(err, entity, key(ownerID, word))
	}

	return tag.RowsAffected() > 0, nil
}

// Clear removes every record of ownerID. Idempotent: clearing an empty
// dictionary is not an error. Returns the number of removed rows.
func (r *Repo) Clear(ctx context.Context, ownerID int64) (int, error) {
	query, args, err := r.sb.
		Delete(tableName).
		Where(squirrel.Eq{"owner_id": ownerID}).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("build clear %s: %w", entity, err)
	}

	tag, err := r.q.Exec(ctx, query, args...)
	if err != nil {
		return 0, postgres.MapError(err, entity, ownerKey(ownerID))
	}

	return int(tag.RowsAffected()), nil
}

// ---------------------------------------------------------------------------
// Mapping helpers
// ---------------------------------------------------------------------------

func toDomain(row wordRow) domain.EnrichmentRecord {
	return domain.EnrichmentRecord{
		Word:          row.Word,
		Transcription: row.Transcription,
		Translation:   row.Translation,
		Example:       row.Example,
		AudioURL:      row.AudioURL,
	}
}

func key(ownerID int64, word string) string {
	return ownerKey(ownerID) + "/" + word
}

func ownerKey(ownerID int64) string {
	return strconv.FormatInt(ownerID, 10)
}
