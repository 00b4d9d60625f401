package store

import (
	"sync"

	"github.com/soettl/fluentui/internal/domain"
)

// DocumentStore is the read side used by the list when rendering rows
type DocumentStore interface {
	Get(index int) (domain.Document, bool)
	IsLoaded(index int) bool
	IsRangeLoaded(r domain.ItemRange) bool
	Len() int
}

// MemoryDocumentStore is an in-memory, thread-safe document store keyed by
// item index
type MemoryDocumentStore struct {
	mu   sync.RWMutex
	docs map[int]domain.Document
}

// NewMemoryDocumentStore creates a new memory-based document store
func NewMemoryDocumentStore() *MemoryDocumentStore {
	return &MemoryDocumentStore{
		docs: make(map[int]domain.Document),
	}
}

func (s *MemoryDocumentStore) Get(index int) (domain.Document, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.docs[index]
	return doc, ok
}

func (s *MemoryDocumentStore) IsLoaded(index int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.docs[index]
	return ok
}

// IsRangeLoaded reports whether every index of r is present
func (s *MemoryDocumentStore) IsRangeLoaded(r domain.ItemRange) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := r.Start; i < r.End; i++ {
		if _, ok := s.docs[i]; !ok {
			return false
		}
	}
	return true
}

// Put stores documents under their own index
func (s *MemoryDocumentStore) Put(docs ...domain.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, doc := range docs {
		s.docs[doc.Index] = doc
	}
}

// Len returns the number of loaded documents
func (s *MemoryDocumentStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.docs)
}

// Truncate drops every document at or beyond count
func (s *MemoryDocumentStore) Truncate(count int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.docs {
		if i >= count {
			delete(s.docs, i)
		}
	}
}
