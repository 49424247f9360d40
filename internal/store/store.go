package store

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"sync"
	"time"

	"github.com/gofrs/flock"

	"disclot/internal/config"
	"disclot/internal/listing"
	"disclot/internal/logging"
	"disclot/internal/schema"
	"disclot/internal/template"
	"disclot/internal/validation"
)

// utf8BOM prefixes the snapshot so the file doubles as a ready upload file.
var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// Entry pairs an accepted record with its projected template row. The row is
// the canonical persisted form; the record is rebuilt from it on reload.
type Entry struct {
	Record listing.Record
	Row    template.Row
}

// Store is the ordered collection of accepted listings.
type Store struct {
	mu       sync.RWMutex
	cfg      *config.Config
	logger   *slog.Logger
	lock     *flock.Flock
	readOnly bool
	entries  []Entry
}

// Open acquires the store lock exclusively, loads any existing snapshot, and
// returns a store that accepts mutations. Callers must Close it.
func Open(cfg *config.Config, logger *slog.Logger) (*Store, error) {
	return open(cfg, logger, false)
}

// OpenShared acquires the store lock in shared mode for read-only access.
// Mutating operations on the returned store fail with ErrReadOnly.
func OpenShared(cfg *config.Config, logger *slog.Logger) (*Store, error) {
	return open(cfg, logger, true)
}

func open(cfg *config.Config, logger *slog.Logger, readOnly bool) (*Store, error) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, err
	}

	lock := flock.New(cfg.SnapshotLockPath())
	var (
		acquired bool
		err      error
	)
	if readOnly {
		acquired, err = lock.TryRLock()
	} else {
		acquired, err = lock.TryLock()
	}
	if err != nil {
		return nil, fmt.Errorf("acquire store lock: %w", err)
	}
	if !acquired {
		return nil, ErrLocked
	}

	s := &Store{
		cfg:      cfg,
		logger:   logging.WithComponent(logger, "store"),
		lock:     lock,
		readOnly: readOnly,
	}
	if err := s.load(); err != nil {
		_ = lock.Unlock()
		return nil, err
	}
	return s, nil
}

// Close releases the store lock.
func (s *Store) Close() error {
	if s.lock == nil {
		return nil
	}
	if err := s.lock.Unlock(); err != nil {
		return fmt.Errorf("release store lock: %w", err)
	}
	s.lock = nil
	return nil
}

// Add validates a record, appends it, and rewrites the snapshot. On a persist
// failure the append is rolled back and the error wraps ErrPersistence. The
// returned count includes the new record.
func (s *Store) Add(ctx context.Context, rec *listing.Record) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s.readOnly {
		return 0, ErrReadOnly
	}

	row := template.BuildRow(rec, s.cfg)
	if err := validation.Check(rec, row); err != nil {
		return 0, err
	}
	rec.MarkSubmitted(time.Now())

	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, Entry{Record: *rec, Row: row})
	if err := s.persistLocked(); err != nil {
		s.entries = s.entries[:len(s.entries)-1]
		return 0, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	s.logger.Info("listing accepted",
		slog.String("title", rec.Identity.Title),
		slog.Int("count", len(s.entries)))
	return len(s.entries), nil
}

// All returns the accepted entries in submission order. The slice is a copy;
// callers cannot disturb store state through it.
func (s *Store) All(ctx context.Context) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]Entry, len(s.entries))
	copy(out, s.entries)
	return out, nil
}

// Len reports the number of accepted listings.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Clear removes every listing and rewrites the snapshot empty. On a persist
// failure the previous entries are restored. It returns the number removed.
func (s *Store) Clear(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s.readOnly {
		return 0, ErrReadOnly
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	previous := s.entries
	s.entries = nil
	if err := s.persistLocked(); err != nil {
		s.entries = previous
		return 0, fmt.Errorf("%w: %v", ErrPersistence, err)
	}

	s.logger.Info("listings cleared", slog.Int("removed", len(previous)))
	return len(previous), nil
}

// load reads the snapshot, if present, into memory. A snapshot whose header
// does not match the current template layout is rejected rather than
// reinterpreted.
func (s *Store) load() error {
	file, err := os.Open(s.cfg.SnapshotPath())
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("%w: open snapshot: %v", ErrSnapshot, err)
	}
	defer file.Close()

	reader := csv.NewReader(stripBOM(file))
	reader.FieldsPerRecord = schema.Count()

	header, err := reader.Read()
	if err != nil {
		if err == io.EOF {
			return nil
		}
		return fmt.Errorf("%w: read header: %v", ErrSnapshot, err)
	}
	if !matchesHeader(header) {
		return fmt.Errorf("%w: header does not match template layout", ErrSnapshot)
	}

	for {
		cells, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return fmt.Errorf("%w: read row: %v", ErrSnapshot, err)
		}
		row := template.Row(cells)
		s.entries = append(s.entries, Entry{Record: template.RecordFromRow(row), Row: row})
	}

	if len(s.entries) > 0 {
		s.logger.Debug("snapshot loaded", slog.Int("count", len(s.entries)))
	}
	return nil
}

// persistLocked rewrites the full snapshot atomically. Callers hold s.mu.
func (s *Store) persistLocked() error {
	path := s.cfg.SnapshotPath()
	tmp, err := os.CreateTemp(s.cfg.Paths.DataDir, ".listings-*.tmp")
	if err != nil {
		return fmt.Errorf("create snapshot temp file: %w", err)
	}
	tmpPath := tmp.Name()
	defer func() {
		if tmpPath != "" {
			_ = os.Remove(tmpPath)
		}
	}()

	if err := writeSnapshot(tmp, s.entries); err != nil {
		_ = tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("sync snapshot: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close snapshot: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("replace snapshot: %w", err)
	}
	tmpPath = ""
	if err := os.Chmod(path, fs.FileMode(0o644)); err != nil {
		return fmt.Errorf("chmod snapshot: %w", err)
	}
	return nil
}

func writeSnapshot(w io.Writer, entries []Entry) error {
	buffered := bufio.NewWriter(w)
	if _, err := buffered.Write(utf8BOM); err != nil {
		return fmt.Errorf("write snapshot: %w", err)
	}

	writer := csv.NewWriter(buffered)
	if err := writer.Write(schema.Names()); err != nil {
		return fmt.Errorf("write snapshot header: %w", err)
	}
	for _, entry := range entries {
		if err := writer.Write(entry.Row); err != nil {
			return fmt.Errorf("write snapshot row: %w", err)
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return fmt.Errorf("flush snapshot: %w", err)
	}
	return buffered.Flush()
}

func matchesHeader(header []string) bool {
	names := schema.Names()
	if len(header) != len(names) {
		return false
	}
	for i, name := range names {
		if header[i] != name {
			return false
		}
	}
	return true
}

// stripBOM skips a leading UTF-8 byte-order mark if present.
func stripBOM(r io.Reader) io.Reader {
	buffered := bufio.NewReader(r)
	prefix, err := buffered.Peek(len(utf8BOM))
	if err == nil && bytes.Equal(prefix, utf8BOM) {
		_, _ = buffered.Discard(len(utf8BOM))
	}
	return buffered
}
