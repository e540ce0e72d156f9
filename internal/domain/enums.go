package domain

// RejectReason explains why input was not accepted by ValidateWord.
type RejectReason string

const (
	RejectNone               RejectReason = ""
	RejectEmpty              RejectReason = "empty"
	RejectTooLong            RejectReason = "too_long"
	RejectNotAlphabetic      RejectReason = "not_alphabetic"
	RejectInvalidHyphenation RejectReason = "invalid_hyphenation"
)

func (r RejectReason) String() string {
	if r == RejectNone {
		return "valid"
	}
	return string(r)
}

// Message returns the default user-facing text for the reason.
// Front-ends are free to render their own.
func (r RejectReason) Message() string {
	switch r {
	case RejectEmpty:
		return "Enter the word you are interested in."
	case RejectTooLong:
		return "The word is too long. Try another one."
	case RejectNotAlphabetic:
		return "Use English letters only (a hyphen is allowed inside the word)."
	case RejectInvalidHyphenation:
		return "Each part of a hyphenated word must have at least 2 letters."
	default:
		return ""
	}
}

// SaveOutcome is the result of persisting a word into a user's dictionary.
type SaveOutcome int

const (
	SaveCreated SaveOutcome = iota + 1
	SaveAlreadyExists
)

func (o SaveOutcome) String() string {
	switch o {
	case SaveCreated:
		return "created"
	case SaveAlreadyExists:
		return "already_exists"
	default:
		return "unknown"
	}
}
