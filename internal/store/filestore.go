package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"

	"github.com/rs/zerolog"

	apperrors "github.com/mennaheldaly/Daytrader/internal/errors"
	"github.com/mennaheldaly/Daytrader/internal/logging"
)

// FileStore implements Documents on top of one JSON file per document,
// namespaced by username when one is set.
type FileStore struct {
	dir      string
	username string
	logger   zerolog.Logger
}

// NewFileStore creates a file-backed document store rooted at dir, creating
// the directory if needed. An empty username gives the single-user layout
// (no filename prefix).
func NewFileStore(dir, username string, logger zerolog.Logger) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, apperrors.NewStorageError(dir, "mkdir", err)
	}
	return &FileStore{
		dir:      dir,
		username: username,
		logger:   logger,
	}, nil
}

// Path returns the backing file for a document kind.
func (s *FileStore) Path(name string) string {
	file := name + ".json"
	if s.username != "" {
		file = s.username + "_" + file
	}
	return filepath.Join(s.dir, file)
}

// Load reads the named document into v. Missing, unreadable, or malformed
// files leave v untouched and return false, so the caller's default
// survives any failure.
func (s *FileStore) Load(name string, v interface{}) bool {
	log := logging.WithDocument(s.logger, name)

	data, err := os.ReadFile(s.Path(name))
	if err != nil {
		if !os.IsNotExist(err) {
			log.Warn().Err(err).Msg("Document unreadable, using default")
		}
		return false
	}

	// Decode into a scratch value first so a failed decode never leaves v
	// half-filled or zeroed.
	scratch := reflect.New(reflect.ValueOf(v).Elem().Type())
	if err := json.Unmarshal(data, scratch.Interface()); err != nil {
		log.Warn().Err(err).Msg("Document malformed, using default")
		return false
	}
	reflect.ValueOf(v).Elem().Set(scratch.Elem())
	return true
}

// Save serializes v and overwrites the named document. The write goes
// through a temp file and rename so readers never observe a partial
// document. Failures are logged, not returned.
func (s *FileStore) Save(name string, v interface{}) {
	if err := s.writeDocument(name, v); err != nil {
		log := logging.WithDocument(s.logger, name)
		log.Warn().Err(err).Msg("Document write failed, keeping previous contents")
	}
}

func (s *FileStore) writeDocument(name string, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return apperrors.NewStorageError(name, "encode", err)
	}

	path := s.Path(name)
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return apperrors.NewStorageError(name, "write", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		os.Remove(tmp)
		return apperrors.NewStorageError(name, "rename", err)
	}
	return nil
}
