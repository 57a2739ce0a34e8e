// Package session persists the interactive record set between command
// invocations.
//
// The whole state is one JSON document in one file. A missing or unreadable
// document is treated as "no prior state".
package session

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/ginjaninja78/address-label-converter/internal/logging"
	"github.com/ginjaninja78/address-label-converter/internal/types"
)

// State is everything needed to resume editing after a restart.
type State struct {
	// ID identifies the import the state was created from.
	ID string `json:"id"`

	// Source is the input file the records were imported from.
	Source string `json:"source"`

	// Headers and RawRows are kept so the batch can be re-mapped with a
	// different alias table without reading the file again.
	Headers []string       `json:"headers"`
	RawRows []types.RawRow `json:"raw_rows"`

	// Aliases is the alias table the records were mapped with.
	Aliases map[string]string `json:"aliases,omitempty"`

	Records []types.MappedAddress `json:"records"`
	Sender  *types.MappedAddress  `json:"sender,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

// Empty reports whether the state holds no import.
func (s *State) Empty() bool {
	return s.ID == "" && len(s.Records) == 0 && len(s.RawRows) == 0
}

// NewState starts a state for a fresh import.
func NewState(source string) *State {
	return &State{
		ID:     uuid.NewString(),
		Source: source,
	}
}

// Store reads and writes the state file.
type Store struct {
	path string
	log  logging.Logger
}

// NewStore returns a store backed by path.
func NewStore(path string, log logging.Logger) *Store {
	if log == nil {
		log = logging.Nop()
	}
	return &Store{path: path, log: log}
}

// Path returns the state file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the saved state. A missing or corrupt file yields an empty
// state; corruption is logged.
func (s *Store) Load() *State {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.log.Warnf("session: cannot read %s, starting empty: %v", s.path, err)
		}
		return &State{}
	}

	var st State
	if err := json.Unmarshal(data, &st); err != nil {
		s.log.Warnf("session: cannot parse %s, starting empty: %v", s.path, err)
		return &State{}
	}

	s.log.Debugf("session: loaded %d records from %s", len(st.Records), s.path)
	return &st
}

// Save writes st atomically and stamps UpdatedAt.
func (s *Store) Save(st *State) error {
	st.UpdatedAt = time.Now().UTC()

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create session directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*.json")
	if err != nil {
		return fmt.Errorf("failed to create session file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("failed to replace session file: %w", err)
	}

	s.log.Debugf("session: saved %d records to %s", len(st.Records), s.path)
	return nil
}

// Clear deletes the state file. Clearing an absent session is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
