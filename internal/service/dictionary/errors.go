package dictionary

import "errors"

// ErrNoPendingLookup indicates a save was requested for a word the owner
// has not just looked up.
var ErrNoPendingLookup = errors.New("no pending lookup for word")
