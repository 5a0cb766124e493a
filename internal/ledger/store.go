package ledger

import "sync"

// Store holds the session's two record collections: staging, the freshly
// parsed or keyed batch the user can still discard, and committed, the
// accumulated ledger. Both always share the store's schema. The HTTP surface
// makes concurrent access possible, so every operation runs under one lock;
// in particular a commit is never observable half-applied.
type Store struct {
	mu         sync.Mutex
	schema     Schema
	staging    []Record
	committed  []Record
	resetArmed bool
}

// NewStore creates an empty store for the given schema.
func NewStore(schema Schema) *Store {
	return &Store{schema: schema}
}

// Schema returns the schema both collections share.
func (s *Store) Schema() Schema {
	return s.schema
}

// AppendToStaging concatenates records onto staging in arrival order. No
// de-duplication is performed; the user reviews staging before committing.
func (s *Store) AppendToStaging(records []Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staging = append(s.staging, records...)
}

// Staging returns a copy of the staged records.
func (s *Store) Staging() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Record(nil), s.staging...)
}

// Committed returns a copy of the committed ledger.
func (s *Store) Committed() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Record(nil), s.committed...)
}

// ResetStaging discards the staged batch.
func (s *Store) ResetStaging() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.staging = nil
}

// Commit moves staging onto the end of the committed ledger, preserving
// arrival order, and clears staging. It returns the batch that was moved;
// committing an empty staging is a no-op.
func (s *Store) Commit() []Record {
	s.mu.Lock()
	defer s.mu.Unlock()
	moved := s.staging
	s.committed = append(s.committed, s.staging...)
	s.staging = nil
	return moved
}

// RestoreCommitted replaces the committed ledger, used to reload a previous
// session from the database at startup.
func (s *Store) RestoreCommitted(records []Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.committed = append([]Record(nil), records...)
}

// ArmCommittedReset acknowledges the destructive-reset confirmation. Wiping
// the committed ledger is a two-step contract: a reset that was not armed
// first is a guaranteed no-op.
func (s *Store) ArmCommittedReset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetArmed = true
}

// ResetCommitted wipes the committed ledger if a confirmation was armed, and
// reports whether the wipe happened. The armed flag is consumed either way.
func (s *Store) ResetCommitted() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.resetArmed {
		return false
	}
	s.resetArmed = false
	s.committed = nil
	return true
}
