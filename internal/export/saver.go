package export

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// Saver delivers finished document bytes under a filename. Exporters build
// the bytes; where they end up (disk, HTTP response, memory) is the saver's
// concern.
type Saver interface {
	Save(filename string, data []byte) error
}

// DirSaver writes documents into a directory, creating it on first use.
type DirSaver struct {
	Dir string
}

func (s *DirSaver) Save(filename string, data []byte) error {
	if err := os.MkdirAll(s.Dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	path := filepath.Join(s.Dir, filepath.Base(filename))
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// MemorySaver keeps saved documents in memory. Safe for concurrent use.
type MemorySaver struct {
	mu    sync.Mutex
	files map[string][]byte
}

func (s *MemorySaver) Save(filename string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.files == nil {
		s.files = make(map[string][]byte)
	}
	s.files[filename] = append([]byte(nil), data...)
	return nil
}

// File returns the bytes saved under filename, or nil if nothing was saved.
func (s *MemorySaver) File(filename string) []byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.files[filename]
}

// Len reports the number of saved documents.
func (s *MemorySaver) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.files)
}
