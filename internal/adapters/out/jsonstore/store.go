// Package jsonstore persists every collection as a JSON array on disk, one
// file per collection, the way small deployments run without a database.
// All access is serialized behind a store-wide lock; a unit of work holds the
// write half of that lock from Begin to Commit or Rollback so multi-aggregate
// writes never interleave. Writes go through a temp file and rename so a
// crash never leaves a half-written collection.
package jsonstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

const (
	ordersFile     = "orders.json"
	couriersFile   = "couriers.json"
	businessesFile = "businesses.json"
	productsFile   = "products.json"
	paymentsFile   = "payments.json"
)

// ErrNoActiveTransaction is returned by Commit and Rollback when Begin was
// never called or the unit of work already finished.
var ErrNoActiveTransaction = errors.New("jsonstore: no active transaction")

// Store owns a data directory of JSON collection files and the lock that
// serializes access to them.
type Store struct {
	dir string
	mu  sync.RWMutex
}

// NewStore opens (creating if needed) the data directory.
func NewStore(dir string) (*Store, error) {
	if dir == "" {
		return nil, errors.New("jsonstore: data directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("jsonstore: create data dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the data directory path.
func (s *Store) Dir() string {
	return s.dir
}

// readCollection decodes one collection file into out (a pointer to a DTO
// slice). A missing file yields an empty collection. Callers must hold the
// lock.
func (s *Store) readCollection(name string, out any) error {
	raw, err := os.ReadFile(filepath.Join(s.dir, name))
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("jsonstore: read %s: %w", name, err)
	}
	if len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("jsonstore: decode %s: %w", name, err)
	}
	return nil
}

// writeCollection encodes a DTO slice to its collection file atomically.
// Callers must hold the write lock.
func (s *Store) writeCollection(name string, in any) error {
	raw, err := json.MarshalIndent(in, "", "  ")
	if err != nil {
		return fmt.Errorf("jsonstore: encode %s: %w", name, err)
	}

	path := filepath.Join(s.dir, name)
	tmp, err := os.CreateTemp(s.dir, name+".tmp-*")
	if err != nil {
		return fmt.Errorf("jsonstore: temp file for %s: %w", name, err)
	}

	_, writeErr := tmp.Write(raw)
	closeErr := tmp.Close()
	if writeErr != nil || closeErr != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("jsonstore: write %s: %w", name, errors.Join(writeErr, closeErr))
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("jsonstore: replace %s: %w", name, err)
	}
	return nil
}
