package source

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

// ErrNotFound is returned when a named object does not exist.
// The default maps to `os.ErrNotExist`.
var ErrNotFound = os.ErrNotExist

// ErrInvalidName is returned for names that escape the source root.
var ErrInvalidName = errors.New("invalid name")

// Source fetches whole NRRD files by name.
type Source interface {
	// Fetch returns the complete contents of the named object.
	Fetch(ctx context.Context, name string) ([]byte, error)
}

// Local implements Source using the local file system.
type Local struct {
	root string
}

// NewLocal creates a Local source rooted at the given directory.
// An empty root resolves names relative to the working directory.
func NewLocal(root string) *Local {
	return &Local{root: root}
}

// Fetch reads the named file.
func (s *Local) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	path, err := s.resolve(name)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

func (s *Local) resolve(name string) (string, error) {
	if s.root == "" {
		return name, nil
	}
	if !filepath.IsLocal(name) {
		return "", fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return filepath.Join(s.root, name), nil
}

// Memory implements Source over an in-memory map. It is safe for
// concurrent use.
type Memory struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

// NewMemory creates an empty Memory source.
func NewMemory() *Memory {
	return &Memory{blobs: make(map[string][]byte)}
}

// Put stores a copy of data under name.
func (s *Memory) Put(name string, data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.blobs[name] = append([]byte(nil), data...)
}

// Fetch returns a copy of the data stored under name.
func (s *Memory) Fetch(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	data, ok := s.blobs[name]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, ErrNotFound)
	}
	return append([]byte(nil), data...), nil
}
