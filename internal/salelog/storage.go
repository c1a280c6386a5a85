package salelog

import (
	"path/filepath"

	"github.com/MiguelRM25/v0-cafeteria-system-interface/internal/storage"
)

// Store is the persistence interface for the sale log. The full log is
// rewritten on every append.
type Store interface {
	Load() ([]Sale, bool, error)
	Save(sales []Sale) error
}

// DocumentName is the stable name of the sales document inside the data
// directory.
const DocumentName = "cafeteria-sales.json"

// FileStore persists the sale log as a single JSON document on disk.
type FileStore struct {
	path string
}

// NewFileStore creates a FileStore rooted at the given data directory.
func NewFileStore(dataDir string) *FileStore {
	return &FileStore{path: filepath.Join(dataDir, DocumentName)}
}

func (f *FileStore) Load() ([]Sale, bool, error) {
	var sales []Sale
	ok, err := storage.ReadDocument(f.path, &sales)
	if err != nil {
		return nil, false, err
	}
	return sales, ok, nil
}

func (f *FileStore) Save(sales []Sale) error {
	return storage.WriteDocument(f.path, sales)
}

// MemoryStore provides an in-memory Store for tests.
type MemoryStore struct {
	sales []Sale
}

// NewMemoryStore instantiates a new MemoryStore with an empty log.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load() ([]Sale, bool, error) {
	if m.sales == nil {
		return nil, false, nil
	}
	out := make([]Sale, len(m.sales))
	copy(out, m.sales)
	return out, true, nil
}

func (m *MemoryStore) Save(sales []Sale) error {
	m.sales = make([]Sale, len(sales))
	copy(m.sales, sales)
	return nil
}

// Sales returns what the store currently holds.
func (m *MemoryStore) Sales() []Sale {
	out := make([]Sale, len(m.sales))
	copy(out, m.sales)
	return out
}
