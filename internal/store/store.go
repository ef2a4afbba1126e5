// Package store keeps the last accepted submission of each form variant in
// process memory.
package store

import (
	"sync"

	"github.com/getmentor/formsdemo/internal/models"
	"github.com/getmentor/formsdemo/pkg/metrics"
)

// Entry is a populated slot
type Entry struct {
	Variant    models.Variant
	Submission models.FormSubmission
}

// Store holds one slot per form variant. Slots start empty, are overwritten
// by every accepted submit and are never cleared.
type Store struct {
	mu    sync.RWMutex
	slots map[models.Variant]models.FormSubmission
}

// New creates an empty store
func New() *Store {
	return &Store{slots: make(map[models.Variant]models.FormSubmission, len(models.Variants))}
}

// Set overwrites the slot of variant
func (s *Store) Set(variant models.Variant, submission *models.FormSubmission) {
	s.mu.Lock()
	s.slots[variant] = *submission
	s.mu.Unlock()

	metrics.StoreWrites.WithLabelValues(string(variant)).Inc()
}

// Get returns a copy of the slot of variant, or false when it is empty
func (s *Store) Get(variant models.Variant) (*models.FormSubmission, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	submission, ok := s.slots[variant]
	if !ok {
		return nil, false
	}
	return &submission, true
}

// Snapshot returns the populated slots in landing page order
func (s *Store) Snapshot() []Entry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entries := make([]Entry, 0, len(s.slots))
	for _, variant := range models.Variants {
		if submission, ok := s.slots[variant]; ok {
			entries = append(entries, Entry{Variant: variant, Submission: submission})
		}
	}
	return entries
}
