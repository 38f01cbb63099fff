package catalog

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Store abstracts the backing collection of song documents. Identifiers are
// storage names without extension; Enumerate returns them in storage order.
type Store interface {
	Enumerate() ([]string, error)
	Read(id string) ([]byte, error)
}

// FSStore implements Store over a flat directory of .json song files.
type FSStore struct {
	dir string
}

// NewFSStore creates an FSStore rooted at dir. The directory must already exist.
func NewFSStore(dir string) (*FSStore, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("catalog: resolve songs dir: %w", err)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, fmt.Errorf("catalog: stat songs dir: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("catalog: songs path is not a directory: %s", abs)
	}
	return &FSStore{dir: abs}, nil
}

// Enumerate lists the identifiers of every .json document in the directory.
// os.ReadDir sorts by filename, so the order is stable within a call.
func (s *FSStore) Enumerate() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("catalog: read songs dir: %w", err)
	}
	var ids []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		ids = append(ids, strings.TrimSuffix(e.Name(), ".json"))
	}
	return ids, nil
}

// Read returns the raw bytes of one song document.
func (s *FSStore) Read(id string) ([]byte, error) {
	// Identifiers come from Enumerate, but reject separators anyway so a
	// crafted name cannot escape the songs directory.
	if strings.ContainsAny(id, "/\\") {
		return nil, fmt.Errorf("catalog: invalid identifier: %s", id)
	}
	data, err := os.ReadFile(filepath.Join(s.dir, id+".json"))
	if err != nil {
		return nil, fmt.Errorf("catalog: read %s: %w", id, err)
	}
	return data, nil
}
