// Package storage persists the quotation record between runs.
// Supports two backends: a JSON file and process memory.
package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"go.uber.org/zap"

	"solar-quote/core/types"
	"solar-quote/internal/errors"
	"solar-quote/internal/logging"
)

// Backend is a storage backend type
type Backend string

const (
	BackendFile   Backend = "file"
	BackendMemory Backend = "memory"
)

// Store is the storage interface
type Store interface {
	// Load returns the persisted record. A missing or unreadable record is
	// returned as an empty record; Load never fails.
	Load(ctx context.Context) types.Record

	// Save replaces the persisted record
	Save(ctx context.Context, record types.Record) error

	// Backend identifies the store kind
	Backend() Backend
}

// FileStore is a file-based storage backend holding a single JSON object
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a file store at path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the file the record is stored in
func (s *FileStore) Path() string {
	return s.path
}

// Backend implements Store
func (s *FileStore) Backend() Backend {
	return BackendFile
}

// Load implements Store
func (s *FileStore) Load(ctx context.Context) types.Record {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logging.Warn("cannot read quotation record, starting empty",
				zap.String("path", s.path), zap.Error(err))
		}
		return types.Record{}
	}

	var record types.Record
	if err := json.Unmarshal(data, &record); err != nil {
		logging.Warn("malformed quotation record, starting empty",
			zap.String("path", s.path), zap.Error(err))
		return types.Record{}
	}

	return record
}

// Save implements Store. The record is written to a temporary file in the
// same directory and renamed over the target.
func (s *FileStore) Save(ctx context.Context, record types.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(record, "", "    ")
	if err != nil {
		return errors.Persistence("failed to marshal record", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Persistence("failed to create data directory", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*")
	if err != nil {
		return errors.Persistence("failed to create temp file", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.Persistence("failed to write record", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.Persistence("failed to write record", err)
	}
	if err := os.Chmod(tmpName, 0644); err != nil {
		os.Remove(tmpName)
		return errors.Persistence("failed to write record", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errors.Persistence(fmt.Sprintf("failed to replace %s", s.path), err)
	}

	return nil
}

// MemoryStore is an in-memory storage backend
type MemoryStore struct {
	record types.Record
	saves  int
	mu     sync.Mutex
}

// NewMemoryStore creates a memory store, optionally seeded with a record
func NewMemoryStore(seed ...types.Record) *MemoryStore {
	s := &MemoryStore{}
	if len(seed) > 0 {
		s.record = seed[0].Clone()
	}
	return s
}

// Backend implements Store
func (s *MemoryStore) Backend() Backend {
	return BackendMemory
}

// Load implements Store
func (s *MemoryStore) Load(ctx context.Context) types.Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.record.Clone()
}

// Save implements Store
func (s *MemoryStore) Save(ctx context.Context, record types.Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.record = record.Clone()
	s.saves++
	return nil
}

// Saves returns how many times Save was called
func (s *MemoryStore) Saves() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

// StoreFactory creates a store for a data file path. An empty path keeps
// the record in memory for the lifetime of the process.
func StoreFactory(path string) Store {
	if path == "" {
		return NewMemoryStore()
	}
	return NewFileStore(path)
}
