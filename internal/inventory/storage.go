package inventory

import (
	"path/filepath"

	"github.com/MiguelRM25/v0-cafeteria-system-interface/internal/storage"
)

// Store is the persistence interface for the inventory ledger. Every
// mutation rewrites the whole document.
type Store interface {
	Load() ([]Entry, bool, error)
	Save(entries []Entry) error
}

// DocumentName is the stable name of the inventory document inside the
// data directory.
const DocumentName = "cafeteria-inventory.json"

// FileStore persists the ledger as a single JSON document on disk.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore rooted at the given data directory.
func NewFileStore(dataDir string) *FileStore {
	return &FileStore{path: filepath.Join(dataDir, DocumentName)}
}

func (f *FileStore) Load() ([]Entry, bool, error) {
	var entries []Entry
	ok, err := storage.ReadDocument(f.path, &entries)
	if err != nil {
		return nil, false, err
	}
	return entries, ok, nil
}

func (f *FileStore) Save(entries []Entry) error {
	return storage.WriteDocument(f.path, entries)
}

// MemoryStore provides an in-memory Store for tests.
type MemoryStore struct {
	entries []Entry
	seeded  bool
}

// NewMemoryStore instantiates an empty MemoryStore; a ledger opened on it
// will seed itself.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

// NewMemoryStoreWith instantiates a MemoryStore that already holds a
// persisted ledger, so opening it skips seeding.
func NewMemoryStoreWith(entries []Entry) *MemoryStore {
	return &MemoryStore{entries: entries, seeded: true}
}

func (m *MemoryStore) Load() ([]Entry, bool, error) {
	if !m.seeded {
		return nil, false, nil
	}
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out, true, nil
}

func (m *MemoryStore) Save(entries []Entry) error {
	m.entries = make([]Entry, len(entries))
	copy(m.entries, entries)
	m.seeded = true
	return nil
}

// Entries returns what the store currently holds.
func (m *MemoryStore) Entries() []Entry {
	out := make([]Entry, len(m.entries))
	copy(out, m.entries)
	return out
}
