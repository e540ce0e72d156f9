// Package session keeps the last looked-up record per owner so a later
// save persists exactly what the owner was shown.
package session

import (
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/heartmarshall/wordbot-backend/internal/domain"
)

// Store is an in-memory, size-bounded, expiring map from owner to their
// pending lookup. Safe for concurrent use.
type Store struct {
	pending *expirable.LRU[int64, domain.EnrichmentRecord]
}

// NewStore creates a Store holding at most size owners, each entry
// expiring ttl after it was remembered. ttl <= 0 disables expiry.
func NewStore(size int, ttl time.Duration) *Store {
	if size <= 0 {
		size = 1
	}
	return &Store{
		pending: expirable.NewLRU[int64, domain.EnrichmentRecord](size, nil, ttl),
	}
}

// Remember replaces the owner's pending record.
func (s *Store) Remember(ownerID int64, rec domain.EnrichmentRecord) {
	s.pending.Add(ownerID, rec)
}

// Pending returns the owner's pending record, if any.
func (s *Store) Pending(ownerID int64) (domain.EnrichmentRecord, bool) {
	return s.pending.Get(ownerID)
}

// Forget drops the owner's pending record. Reports whether one existed.
func (s *Store) Forget(ownerID int64) bool {
	return s.pending.Remove(ownerID)
}

// Len returns the number of owners with a pending record.
func (s *Store) Len() int {
	return s.pending.Len()
}
