// Package mapping gives :map and :abbreviate somewhere real to land: a
// Store of key-to-expansion definitions, persisted as TOML and watchable
// for external edits. The ex command table's map/abbreviate entries have
// no handler body in the retrieved source; this package supplies one.
package mapping

import (
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/fsnotify/fsnotify"
)

// MappingEntry is one :map or :abbreviate definition.
type MappingEntry struct {
	Lhs        string `toml:"lhs"`
	Rhs        string `toml:"rhs"`
	Abbreviate bool   `toml:"abbreviate"`
}

type fileFormat struct {
	Entries []MappingEntry `toml:"entries"`
}

// Store holds the current set of mappings, keyed by Lhs, and optionally
// keeps them in sync with a backing TOML file.
type Store struct {
	mu      sync.RWMutex
	path    string
	entries map[string]MappingEntry
	watcher *fsnotify.Watcher
}

// NewStore creates an empty, unpersisted Store.
func NewStore() *Store {
	return &Store{entries: make(map[string]MappingEntry)}
}

// Put inserts or replaces a mapping.
func (s *Store) Put(e MappingEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[e.Lhs] = e
}

// Path returns the file path set by the most recent Load, or "" if none.
func (s *Store) Path() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.path
}

// Get looks up a mapping by its left-hand side.
func (s *Store) Get(lhs string) (MappingEntry, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.entries[lhs]
	return e, ok
}

// All returns a snapshot of every stored mapping.
func (s *Store) All() []MappingEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]MappingEntry, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e)
	}
	return out
}

// Load reads path as TOML and replaces the Store's contents with it. path
// is recorded even when the read fails, so a caller that tolerates a
// missing file (errors.Is(err, os.ErrNotExist); the error is wrapped, so
// os.IsNotExist does not see it) can still Save/Watch against it later.
func (s *Store) Load(path string) error {
	s.mu.Lock()
	s.path = path
	s.mu.Unlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("mapping: read %s: %w", path, err)
	}
	var ff fileFormat
	if err := toml.Unmarshal(data, &ff); err != nil {
		return fmt.Errorf("mapping: parse %s: %w", path, err)
	}
	s.mu.Lock()
	s.entries = make(map[string]MappingEntry, len(ff.Entries))
	for _, e := range ff.Entries {
		s.entries[e.Lhs] = e
	}
	s.mu.Unlock()
	return nil
}

// Save writes the Store's current contents to path as TOML.
func (s *Store) Save(path string) error {
	s.mu.RLock()
	ff := fileFormat{Entries: make([]MappingEntry, 0, len(s.entries))}
	for _, e := range s.entries {
		ff.Entries = append(ff.Entries, e)
	}
	s.mu.RUnlock()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("mapping: create %s: %w", path, err)
	}
	defer f.Close()
	if err := toml.NewEncoder(f).Encode(ff); err != nil {
		return fmt.Errorf("mapping: encode %s: %w", path, err)
	}
	return nil
}

// Watch reloads the Store whenever its backing file (set by a prior Load)
// changes on disk, until stop is closed. Reload errors are reported on
// the returned channel rather than killing the watch loop.
func (s *Store) Watch(stop <-chan struct{}) (<-chan error, error) {
	s.mu.RLock()
	path := s.path
	s.mu.RUnlock()
	if path == "" {
		return nil, fmt.Errorf("mapping: Watch called before Load")
	}

	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("mapping: new watcher: %w", err)
	}
	if err := w.Add(path); err != nil {
		w.Close()
		return nil, fmt.Errorf("mapping: watch %s: %w", path, err)
	}
	s.watcher = w

	errs := make(chan error, 1)
	go func() {
		defer w.Close()
		for {
			select {
			case <-stop:
				return
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
					if err := s.Load(path); err != nil {
						select {
						case errs <- err:
						default:
						}
					}
				}
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				select {
				case errs <- err:
				default:
				}
			}
		}
	}()
	return errs, nil
}

// ParseDefinition splits a :map/:abbreviate argument string into its
// left- and right-hand sides: the first whitespace run separates lhs from
// rhs, and rhs is the remainder verbatim. Vim's own documentation gives
// this shape for simple mappings; the retrieved source has no tokenizer
// of its own to follow here.
func ParseDefinition(raw string, abbreviate bool) (MappingEntry, error) {
	trimmed := strings.TrimLeft(raw, " \t")
	if trimmed == "" {
		return MappingEntry{}, fmt.Errorf("mapping: empty definition")
	}
	i := strings.IndexAny(trimmed, " \t")
	if i < 0 {
		return MappingEntry{}, fmt.Errorf("mapping: %q has no rhs", raw)
	}
	lhs := trimmed[:i]
	rhs := strings.TrimLeft(trimmed[i:], " \t")
	return MappingEntry{Lhs: lhs, Rhs: rhs, Abbreviate: abbreviate}, nil
}
