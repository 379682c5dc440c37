package store_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patternlab/internal/domain"
	"patternlab/internal/store"
)

func fixedNow() time.Time {
	return time.Date(2026, 8, 23, 12, 30, 0, 0, time.UTC)
}

func TestAppendAndRecent_RoundTrip(t *testing.T) {
	home := t.TempDir()
	s := store.NewFileStore(home, store.WithNow(fixedNow))

	id, err := s.Append(domain.RunRecord{
		Pattern: "observer",
		Args:    []string{"hello"},
		Trace:   domain.Trace{"User1 received message: hello"},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	records, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, id, records[0].ID)
	assert.Equal(t, domain.ID("observer"), records[0].Pattern)
	assert.Equal(t, fixedNow(), records[0].StartedAt)
	assert.Equal(t, domain.Trace{"User1 received message: hello"}, records[0].Trace)
}

func TestAppend_WritesRunFileAndIndex(t *testing.T) {
	home := t.TempDir()
	s := store.NewFileStore(home, store.WithNow(fixedNow))

	_, err := s.Append(domain.RunRecord{Pattern: "facade", Trace: domain.Trace{"Dimming lights."}})
	require.NoError(t, err)

	entries, err := os.ReadDir(filepath.Join(home, "runs"))
	require.NoError(t, err)

	var runFiles, indexFiles int
	for _, e := range entries {
		switch {
		case e.Name() == "index.jsonl":
			indexFiles++
		case filepath.Ext(e.Name()) == ".json":
			runFiles++
			assert.Contains(t, e.Name(), "20260823T123000Z_facade_")
		}
	}
	assert.Equal(t, 1, runFiles)
	assert.Equal(t, 1, indexFiles)
}

func TestRecent_NewestFirstAndLimited(t *testing.T) {
	home := t.TempDir()
	s := store.NewFileStore(home, store.WithNow(fixedNow))

	for _, p := range []domain.ID{"adapter", "bridge", "proxy"} {
		_, err := s.Append(domain.RunRecord{Pattern: p, Trace: domain.Trace{"x"}})
		require.NoError(t, err)
	}

	records, err := s.Recent(2)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, domain.ID("proxy"), records[0].Pattern)
	assert.Equal(t, domain.ID("bridge"), records[1].Pattern)
}

func TestRecent_NoHistoryYet(t *testing.T) {
	s := store.NewFileStore(t.TempDir())

	records, err := s.Recent(5)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestRecent_SkipsTornIndexLines(t *testing.T) {
	home := t.TempDir()
	s := store.NewFileStore(home, store.WithNow(fixedNow))

	_, err := s.Append(domain.RunRecord{Pattern: "visitor", Trace: domain.Trace{"Drawing a square."}})
	require.NoError(t, err)

	idx := filepath.Join(home, "runs", "index.jsonl")
	f, err := os.OpenFile(idx, os.O_APPEND|os.O_WRONLY, 0o600)
	require.NoError(t, err)
	_, err = f.WriteString(`{"id":"torn`)
	require.NoError(t, err)
	require.NoError(t, f.Close())

	records, err := s.Recent(10)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, domain.ID("visitor"), records[0].Pattern)
}
