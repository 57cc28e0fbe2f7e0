// Package preset keeps named rename sequences in a TOML file
package preset

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/lithammer/fuzzysearch/fuzzy"
	"github.com/pelletier/go-toml/v2"

	"github.com/pstuifzand/tui-renamer/internal/sequence"
)

var (
	// ErrPresetNotFound is returned when no preset has the given name
	ErrPresetNotFound = errors.New("preset not found")
	// ErrPresetExists is returned when saving over a preset without overwrite
	ErrPresetExists = errors.New("preset already exists")
	// ErrInvalidName is returned for an empty or blank preset name
	ErrInvalidName = errors.New("preset name must not be empty")
)

// presetFile is the layout of the presets TOML file
type presetFile struct {
	Presets []presetEntry `toml:"presets"`
}

type presetEntry struct {
	Name     string `toml:"name"`
	Sequence string `toml:"sequence"`
}

// Store is a set of named sequences backed by one file. Every change is
// written to disk before the call returns.
type Store struct {
	mu      sync.Mutex
	path    string
	presets map[string]string
}

// Open loads the store at path. A missing file gives an empty store.
func Open(path string) (*Store, error) {
	s := &Store{path: path, presets: make(map[string]string)}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			slog.Debug("preset file not found, starting empty", "path", path)
			return s, nil
		}
		return nil, fmt.Errorf("failed to read preset file: %w", err)
	}

	var file presetFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse preset file %s: %w", path, err)
	}
	for _, p := range file.Presets {
		s.presets[p.Name] = p.Sequence
	}
	slog.Debug("loaded presets", "path", path, "count", len(s.presets))
	return s, nil
}

// Path returns the file the store is saved to
func (s *Store) Path() string {
	return s.path
}

// Names returns the preset names, sorted
func (s *Store) Names() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.namesLocked()
}

func (s *Store) namesLocked() []string {
	names := make([]string, 0, len(s.presets))
	for name := range s.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of presets
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.presets)
}

// Get decodes the preset stored under name
func (s *Store) Get(name string) (*sequence.Pipeline, error) {
	name = strings.TrimSpace(name)
	s.mu.Lock()
	data, ok := s.presets[name]
	s.mu.Unlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}

	seq, err := sequence.Deserialize(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode preset %q: %w", name, err)
	}
	return seq, nil
}

// Raw returns the serialized form of the preset stored under name
func (s *Store) Raw(name string) (string, error) {
	name = strings.TrimSpace(name)
	s.mu.Lock()
	defer s.mu.Unlock()
	data, ok := s.presets[name]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}
	return data, nil
}

// Save stores seq under name. An existing preset is only replaced when
// overwrite is set.
func (s *Store) Save(name string, seq *sequence.Pipeline, overwrite bool) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidName
	}

	data, err := seq.Serialize()
	if err != nil {
		return fmt.Errorf("failed to serialize preset %q: %w", name, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous, exists := s.presets[name]
	if exists && !overwrite {
		return fmt.Errorf("%w: %q", ErrPresetExists, name)
	}

	s.presets[name] = data
	if err := s.writeLocked(); err != nil {
		if exists {
			s.presets[name] = previous
		} else {
			delete(s.presets, name)
		}
		return err
	}
	slog.Info("saved preset", "name", name, "operations", seq.Len(), "overwrite", exists)
	return nil
}

// Delete removes the preset stored under name
func (s *Store) Delete(name string) error {
	name = strings.TrimSpace(name)
	s.mu.Lock()
	defer s.mu.Unlock()

	previous, ok := s.presets[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrPresetNotFound, name)
	}

	delete(s.presets, name)
	if err := s.writeLocked(); err != nil {
		s.presets[name] = previous
		return err
	}
	slog.Info("deleted preset", "name", name)
	return nil
}

// Find returns the names that fuzzily match query, best match first.
// Matching ignores case.
func (s *Store) Find(query string) []string {
	names := s.Names()
	if query == "" {
		return names
	}

	ranks := fuzzy.RankFindFold(query, names)
	sort.Sort(ranks)

	found := make([]string, len(ranks))
	for i, r := range ranks {
		found[i] = r.Target
	}
	return found
}

// writeLocked saves all presets to a temporary file next to the store
// and renames it into place
func (s *Store) writeLocked() error {
	file := presetFile{}
	for _, name := range s.namesLocked() {
		file.Presets = append(file.Presets, presetEntry{Name: name, Sequence: s.presets[name]})
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("failed to marshal presets: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create preset directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary preset file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("failed to write preset file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to write preset file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("failed to replace preset file: %w", err)
	}
	return nil
}
