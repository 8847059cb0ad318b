package storage

import (
	"babiprep/vocab"
)

// VocabReader defines read operations for vocabulary storage
type VocabReader interface {
	// Read loads the persisted token-to-id mapping
	Read() (*vocab.Vocab, error)
}

// VocabWriter defines write operations for vocabulary storage
type VocabWriter interface {
	// Write persists the token-to-id mapping
	Write(v *vocab.Vocab) error
}

// VocabRepository combines read and write operations
type VocabRepository interface {
	VocabReader
	VocabWriter
}
