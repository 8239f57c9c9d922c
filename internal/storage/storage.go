// ABOUTME: Storage interface and JSON file implementation for record collections
// ABOUTME: One file per source, written whole on every ingest run and read whole by consumers

package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/harper/newsroom/internal/models"
)

const (
	dirPerms  = 0755
	filePerms = 0644
)

// Store defines how collections are persisted per source.
type Store interface {
	// Path returns the file a source's collection lives in.
	Path(source models.Source) string

	// Save overwrites the collection for a source.
	Save(source models.Source, records models.Collection) error

	// Load reads the collection for a source.
	Load(source models.Source) (models.Collection, error)
}

// FileStore keeps collections as JSON arrays inside a data directory.
type FileStore struct {
	dataDir string
}

// Compile-time check that FileStore implements Store.
var _ Store = (*FileStore)(nil)

// NewFileStore creates a store rooted at dataDir. The directory is created on first Save.
func NewFileStore(dataDir string) *FileStore {
	return &FileStore{dataDir: dataDir}
}

// DataDir returns the root directory of the store.
func (s *FileStore) DataDir() string {
	return s.dataDir
}

// Path returns the collection file path for source.
func (s *FileStore) Path(source models.Source) string {
	return filepath.Join(s.dataDir, source.Filename)
}

// Save writes records to the source's file, replacing any previous content.
func (s *FileStore) Save(source models.Source, records models.Collection) error {
	return Persist(records, s.Path(source))
}

// Load reads the source's collection file.
func (s *FileStore) Load(source models.Source) (models.Collection, error) {
	return LoadCollection(s.Path(source))
}

// Persist serializes records as a JSON array at path, overwriting any existing file.
// The write is not atomic: a crash mid-write can leave a truncated file.
func Persist(records models.Collection, path string) error {
	if records == nil {
		records = models.Collection{}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("encode collection: %w", err)
	}

	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, dirPerms); err != nil {
			return fmt.Errorf("create data directory: %w", err)
		}
	}

	if err := os.WriteFile(path, data, filePerms); err != nil {
		return fmt.Errorf("write collection %s: %w", path, err)
	}
	return nil
}

// LoadCollection reads and decodes a collection file.
// A missing or malformed file is an error; there is no empty fallback.
func LoadCollection(path string) (models.Collection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read collection: %w", err)
	}

	var records models.Collection
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse collection %s: %w", path, err)
	}
	if records == nil {
		return nil, fmt.Errorf("parse collection %s: expected a JSON array", path)
	}
	return records, nil
}
