// Package records holds the active set of address records between edits.
//
// REFERENZ values are positional: after a delete the remaining records are
// renumbered 1..N so that the set never carries a gap or a stale duplicate.
package records

import (
	"errors"
	"fmt"
	"sync"

	"github.com/ginjaninja78/address-label-converter/internal/types"
	"github.com/ginjaninja78/address-label-converter/internal/validation"
)

// ErrIndexOutOfRange is returned for an index outside the record set.
var ErrIndexOutOfRange = errors.New("record index out of range")

// Set is the active record set. All methods are safe for concurrent use;
// mutations are serialised.
type Set struct {
	mu      sync.RWMutex
	records []types.MappedAddress
}

// New returns a set holding a copy of records.
func New(records []types.MappedAddress) *Set {
	s := &Set{}
	s.Reset(records)
	return s
}

// Reset replaces the whole set, for example after a re-mapping.
func (s *Set) Reset(records []types.MappedAddress) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append([]types.MappedAddress(nil), records...)
}

// Len returns the number of records.
func (s *Set) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}

// Records returns a copy of the records.
func (s *Set) Records() []types.MappedAddress {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]types.MappedAddress(nil), s.records...)
}

// Get returns the record at index i.
func (s *Set) Get(i int) (types.MappedAddress, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if err := s.check(i); err != nil {
		return types.MappedAddress{}, err
	}
	return s.records[i], nil
}

// Replace overwrites the record at index i with rec, including its REFERENZ.
func (s *Set) Replace(i int, rec types.MappedAddress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(i); err != nil {
		return err
	}
	s.records[i] = rec
	return nil
}

// Delete removes the record at index i and renumbers the rest from 1.
func (s *Set) Delete(i int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.check(i); err != nil {
		return err
	}
	s.records = append(s.records[:i], s.records[i+1:]...)
	for j := range s.records {
		s.records[j].Referenz = j + 1
	}
	return nil
}

// Clear discards every record.
func (s *Set) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = nil
}

// Warnings validates the whole set.
func (s *Set) Warnings() types.Warnings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return validation.Validate(s.records)
}

func (s *Set) check(i int) error {
	if i < 0 || i >= len(s.records) {
		return fmt.Errorf("%w: %d (have %d)", ErrIndexOutOfRange, i, len(s.records))
	}
	return nil
}
