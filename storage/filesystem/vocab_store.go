package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"babiprep/storage"
	"babiprep/vocab"
)

// VocabStore persists the token-to-id mapping as a flat JSON object.
type VocabStore struct {
	path string
}

var _ storage.VocabRepository = (*VocabStore)(nil)

// NewVocabStore creates a vocabulary store backed by the given file path.
func NewVocabStore(path string) *VocabStore {
	return &VocabStore{path: path}
}

// Write serializes the mapping. The file is written to a temporary name
// first and renamed, so readers never see a partial mapping.
func (s *VocabStore) Write(v *vocab.Vocab) error {
	data, err := json.MarshalIndent(v.Mapping(), "", "  ")
	if err != nil {
		return fmt.Errorf("JSON encoding error: %w", err)
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*")
	if err != nil {
		return fmt.Errorf("IO error: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("IO error: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("IO error: %w", err)
	}

	return os.Rename(tmp.Name(), s.path)
}

// Read loads and validates the persisted mapping.
func (s *VocabStore) Read() (*vocab.Vocab, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("IO error: %w", err)
	}

	var m map[string]int
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("JSON decoding error: %w", err)
	}

	return vocab.FromMapping(m)
}
