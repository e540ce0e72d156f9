package domain

// EnrichmentRecord is everything known about one word: the unit that is
// looked up, shown to the user and, on request, saved to their dictionary.
// Word is always set; every other field is independently optional.
type EnrichmentRecord struct {
	Word          string
	Transcription *string
	Translation   *string
	Example       *string
	AudioURL      *string
}
