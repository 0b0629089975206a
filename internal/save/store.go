// Package save persists the player's progress to a single JSON file.
package save

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/streamer/internal/economy"
	"github.com/samdwyer/streamer/internal/telemetry"
)

const (
	// FileName is the save file's name inside the data directory.
	FileName = "streamer_save.json"

	appDir = "streamer"
)

// ErrNoSavePath is returned when no per-user data directory can be found.
var ErrNoSavePath = errors.New("no save path available")

// Source describes where a loaded state came from.
type Source int

const (
	// SourceFile means the state was read from the save file.
	SourceFile Source = iota
	// SourceMissing means there was no save file; the default state was used.
	SourceMissing
	// SourceCorrupt means the file could not be read or parsed; the default state was used.
	SourceCorrupt
)

// String returns a human-readable source name.
func (s Source) String() string {
	switch s {
	case SourceFile:
		return "file"
	case SourceMissing:
		return "missing"
	case SourceCorrupt:
		return "corrupt"
	default:
		return "unknown"
	}
}

// DefaultPath returns the save file location in the per-user config directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrNoSavePath, err)
	}
	return filepath.Join(dir, appDir, FileName), nil
}

// Store reads and writes one save file. It does no locking: two processes
// sharing a path overwrite each other.
type Store struct {
	path string
}

// NewStore creates a store for the file at path.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, ErrNoSavePath
	}
	return &Store{path: path}, nil
}

// Path returns the save file location.
func (s *Store) Path() string {
	return s.path
}

// Load reads the save file. Any failure yields a fresh default state; the
// returned Source says which case applied. Load never writes.
func (s *Store) Load(ctx context.Context) (economy.State, Source) {
	_, span := telemetry.Tracer("save").Start(ctx, "save.load")
	defer span.End()

	state, src, err := s.load()
	span.SetAttributes(
		attribute.String("save.path", s.path),
		attribute.String("save.source", src.String()),
	)
	if err != nil {
		log.Printf("save: using new game, %s save at %s: %v", src, s.path, err)
	}
	return state, src
}

func (s *Store) load() (economy.State, Source, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return economy.Default(), SourceMissing, err
	}
	if err != nil {
		return economy.Default(), SourceCorrupt, err
	}

	state, err := decode(data)
	if err != nil {
		return economy.Default(), SourceCorrupt, err
	}
	return state, SourceFile, nil
}

// Save overwrites the save file with state, creating its directory if needed.
// The write is not atomic: a crash mid-write can leave a truncated file, which
// the next Load treats as corrupt.
func (s *Store) Save(ctx context.Context, state economy.State) error {
	_, span := telemetry.Tracer("save").Start(ctx, "save.write")
	defer span.End()

	err := s.save(state)
	telemetry.RecordError(span, err)
	return err
}

func (s *Store) save(state economy.State) error {
	data, err := encode(state)
	if err != nil {
		return fmt.Errorf("encode save: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create save directory: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0o644); err != nil {
		return fmt.Errorf("write save file: %w", err)
	}
	return nil
}
