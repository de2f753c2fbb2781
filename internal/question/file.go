package question

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"

	"github.com/samber/oops"
)

const CurrentVersion = "1.0.0"

type storeFile struct {
	Version   string     `json:"version"`
	Questions []Question `json:"questions"`
}

// Load reads a store file. A missing file yields a store holding the seed
// questions so a fresh workspace has something to browse.
func Load(path string, perPage int) (*Store, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return NewStore(Seed(), perPage), nil
		}

		return nil, oops.
			Code("STORE_READ_ERROR").
			With("path", path).
			Wrapf(err, "reading question store")
	}

	f := &storeFile{}
	if unmarshalErr := json.Unmarshal(data, f); unmarshalErr != nil {
		return nil, oops.
			Code("STORE_CORRUPTED").
			With("path", path).
			Hint("Fix or delete the store file; it is recreated from the seed questions").
			Wrapf(unmarshalErr, "parsing question store")
	}

	return NewStore(f.Questions, perPage), nil
}

// Save writes every question to path, replacing the file atomically.
// Concurrent saves are serialized, and each one snapshots the store after
// the previous save finished, so the file never goes back to older state.
func (s *Store) Save(path string) error {
	if s == nil {
		return oops.
			Code("STORE_WRITE_ERROR").
			Errorf("cannot save nil store")
	}

	s.saveMu.Lock()
	defer s.saveMu.Unlock()

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return oops.
			Code("STORE_WRITE_ERROR").
			With("path", dir).
			Wrapf(err, "creating store directory")
	}

	f := storeFile{Version: CurrentVersion, Questions: s.All()}
	if f.Questions == nil {
		f.Questions = []Question{}
	}

	data, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return oops.
			Code("STORE_WRITE_ERROR").
			Wrapf(err, "encoding question store")
	}
	data = append(data, '\n')

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return oops.
			Code("STORE_WRITE_ERROR").
			With("path", dir).
			Wrapf(err, "creating temporary store file")
	}

	tempPath := tempFile.Name()
	defer func() {
		_ = os.Remove(tempPath)
	}()

	if _, writeErr := tempFile.Write(data); writeErr != nil {
		_ = tempFile.Close()
		return oops.
			Code("STORE_WRITE_ERROR").
			With("path", tempPath).
			Wrapf(writeErr, "writing temporary store file")
	}

	if closeErr := tempFile.Close(); closeErr != nil {
		return oops.
			Code("STORE_WRITE_ERROR").
			With("path", tempPath).
			Wrapf(closeErr, "closing temporary store file")
	}

	if renameErr := os.Rename(tempPath, path); renameErr != nil {
		return oops.
			Code("STORE_WRITE_ERROR").
			With("from", tempPath).
			With("to", path).
			Wrapf(renameErr, "replacing store file")
	}

	return nil
}
