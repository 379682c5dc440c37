package store

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"patternlab/internal/domain"
)

const (
	runsDir   = "runs"
	indexFile = "index.jsonl"
)

// FileStore stores run records on disk.
type FileStore struct {
	dir string
	mu  sync.Mutex
	now func() time.Time
}

// Option customizes a FileStore.
type Option func(*FileStore)

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *FileStore) { s.now = now }
}

// NewFileStore returns a store rooted at <home>/runs.
func NewFileStore(home string, opts ...Option) *FileStore {
	s := &FileStore{
		dir: filepath.Join(home, runsDir),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Append persists rec as its own file and appends it to the index. It fills
// in the record ID and start time when unset, and returns the record ID.
func (s *FileStore) Append(rec domain.RunRecord) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return "", fmt.Errorf("create runs dir: %w", err)
	}

	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.StartedAt.IsZero() {
		rec.StartedAt = s.now()
	}
	rec.StartedAt = rec.StartedAt.UTC()

	suffix := rec.ID
	if len(suffix) > 8 {
		suffix = suffix[:8]
	}
	name := fmt.Sprintf("%s_%s_%s.json",
		rec.StartedAt.Format("20060102T150405Z"),
		slugify(string(rec.Pattern)),
		suffix,
	)
	if err := writeJSONAtomic(filepath.Join(s.dir, name), rec); err != nil {
		return "", err
	}
	if err := appendJSONLine(filepath.Join(s.dir, indexFile), rec); err != nil {
		return "", err
	}
	return rec.ID, nil
}

// Recent returns the last n records, newest first. A missing index means no
// history yet, not an error.
func (s *FileStore) Recent(n int) ([]domain.RunRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f, err := os.Open(filepath.Join(s.dir, indexFile))
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("open history index: %w", err)
	}
	defer f.Close()

	var records []domain.RunRecord
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var rec domain.RunRecord
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			// A torn line (crash mid-append) is skipped, not fatal.
			continue
		}
		records = append(records, rec)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read history index: %w", err)
	}

	if n > 0 && len(records) > n {
		records = records[len(records)-n:]
	}
	for i, j := 0, len(records)-1; i < j; i, j = i+1, j-1 {
		records[i], records[j] = records[j], records[i]
	}
	return records, nil
}

// slugify keeps filenames to lowercase letters, digits and underscores.
func slugify(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	out := strings.Trim(b.String(), "_")
	if out == "" {
		out = "run"
	}
	return out
}

// Compile-time assertion that FileStore implements domain.HistoryStore.
var _ domain.HistoryStore = (*FileStore)(nil)
