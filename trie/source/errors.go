package source

import "errors"

// DownloadHint tells the user where the source table comes from.
const DownloadHint = "download it from https://html.spec.whatwg.org/entities.json"

var (
	// ErrSourceNotFound indicates the source table file does not exist.
	ErrSourceNotFound = errors.New("source: entities.json not found")
	// ErrMalformed indicates the source is not a JSON object of entity records.
	ErrMalformed = errors.New("source: malformed entity table")
	// ErrEmptyKey indicates a key has nothing left after the sigil.
	ErrEmptyKey = errors.New("source: empty key")
	// ErrEmptyValue indicates an entity decodes to the empty string.
	ErrEmptyValue = errors.New("source: empty value")
	// ErrDuplicateKey indicates the same key appears twice.
	ErrDuplicateKey = errors.New("source: duplicate key")
	// ErrCodepointMismatch indicates "characters" disagrees with "codepoints".
	ErrCodepointMismatch = errors.New("source: characters do not match codepoints")
)
