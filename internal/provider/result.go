package provider

import "errors"

// ErrSourceUnavailable marks any failure of an external source: transport
// errors, timeouts, non-success statuses and undecodable bodies. Callers
// treat it as "no data" and never surface it to the user.
var ErrSourceUnavailable = errors.New("source unavailable")

// DefinitionResult is what the definitions source knows about a word.
// Every field is optional; a nil result means the source has no entry.
type DefinitionResult struct {
	Word          string
	Transcription *string
	AudioURL      *string
	Example       *string
}
