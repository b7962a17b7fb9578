package store

import (
	"context"
	"fmt"
	"sort"
	"sync"
)

// Backend persists the state document as one unit.
type Backend interface {
	Load(ctx context.Context) (*Document, error)
	Save(ctx context.Context, doc *Document) error
	Name() string
}

// Store owns the in-memory state document and is the sole writer of the
// backing persistence. It guards map access only; there is no per-sender
// mutual exclusion across requests, and every save writes the whole
// snapshot (last completed write wins).
type Store struct {
	backend Backend
	mu      sync.RWMutex
	doc     *Document
}

// Open loads the persisted document (or starts fresh when the backend has
// nothing) and returns a ready store.
func Open(ctx context.Context, backend Backend) (*Store, error) {
	doc, err := backend.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load %s store: %w", backend.Name(), err)
	}
	if doc == nil {
		doc = &Document{}
	}
	if doc.Users == nil {
		doc.Users = make(map[string]*UserRecord)
	}
	for _, rec := range doc.Users {
		rec.normalize()
	}
	return &Store{backend: backend, doc: doc}, nil
}

// User returns the record for senderID, creating it with defaults on first
// contact. The returned pointer is the live record; callers mutate it in
// place and then call Save.
func (s *Store) User(senderID string) *UserRecord {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec, ok := s.doc.Users[senderID]
	if !ok {
		rec = NewUserRecord()
		s.doc.Users[senderID] = rec
	}
	return rec
}

// SenderIDs returns all known sender ids, sorted.
func (s *Store) SenderIDs() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := make([]string, 0, len(s.doc.Users))
	for id := range s.doc.Users {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Save writes the full current snapshot to the backend.
func (s *Store) Save(ctx context.Context) error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.backend.Save(ctx, s.doc); err != nil {
		return fmt.Errorf("save %s store: %w", s.backend.Name(), err)
	}
	return nil
}

// Snapshot returns the live document. Read-only callers (CLI inspection)
// should not mutate it.
func (s *Store) Snapshot() *Document {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.doc
}
