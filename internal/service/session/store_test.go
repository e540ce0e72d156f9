package session

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/wordbot-backend/internal/domain"
)

func TestStore_RememberPendingForget(t *testing.T) {
	t.Parallel()

	s := NewStore(10, time.Minute)

	_, ok := s.Pending(1)
	assert.False(t, ok)

	s.Remember(1, domain.EnrichmentRecord{Word: "hello"})
	s.Remember(1, domain.EnrichmentRecord{Word: "world"})

	got, ok := s.Pending(1)
	require.True(t, ok)
	assert.Equal(t, "world", got.Word, "a newer lookup replaces the pending one")

	assert.True(t, s.Forget(1))
	assert.False(t, s.Forget(1))
	_, ok = s.Pending(1)
	assert.False(t, ok)
}

func TestStore_OwnersIsolated(t *testing.T) {
	t.Parallel()

	s := NewStore(10, time.Minute)
	s.Remember(1, domain.EnrichmentRecord{Word: "one"})
	s.Remember(2, domain.EnrichmentRecord{Word: "two"})

	got, _ := s.Pending(1)
	assert.Equal(t, "one", got.Word)
	got, _ = s.Pending(2)
	assert.Equal(t, "two", got.Word)
	assert.Equal(t, 2, s.Len())
}

func TestStore_EvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	s := NewStore(2, time.Minute)
	s.Remember(1, domain.EnrichmentRecord{Word: "a"})
	s.Remember(2, domain.EnrichmentRecord{Word: "b"})
	s.Remember(3, domain.EnrichmentRecord{Word: "c"})

	_, ok := s.Pending(1)
	assert.False(t, ok)
	assert.Equal(t, 2, s.Len())
}

func TestStore_Expires(t *testing.T) {
	t.Parallel()

	s := NewStore(10, 20*time.Millisecond)
	s.Remember(1, domain.EnrichmentRecord{Word: "brief"})

	assert.Eventually(t, func() bool {
		_, ok := s.Pending(1)
		return !ok
	}, time.Second, 10*time.Millisecond)
}

func TestStore_ConcurrentUse(t *testing.T) {
	t.Parallel()

	s := NewStore(100, time.Minute)
	var wg sync.WaitGroup
	for i := range 50 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			owner := int64(i % 5)
			s.Remember(owner, domain.EnrichmentRecord{Word: "w"})
			s.Pending(owner)
			if i%7 == 0 {
				s.Forget(owner)
			}
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, s.Len(), 5)
}
