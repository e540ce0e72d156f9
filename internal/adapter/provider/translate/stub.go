package translate

import "context"

// Stub is a no-op translation provider used when translation is disabled
// in configuration. It knows no translations.
type Stub struct{}

// NewStub creates a new no-op translation provider.
func NewStub() *Stub { return &Stub{} }

// Translate always returns nil.
func (s *Stub) Translate(ctx context.Context, word string) (*string, error) {
	return nil, nil
}
