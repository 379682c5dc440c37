package runner_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"patternlab/internal/catalog"
	"patternlab/internal/domain"
	"patternlab/internal/runner"
)

// recordingStore captures appended records; failWith makes Append fail.
type recordingStore struct {
	records  []domain.RunRecord
	failWith error
}

func (s *recordingStore) Append(rec domain.RunRecord) (string, error) {
	if s.failWith != nil {
		return "", s.failWith
	}
	s.records = append(s.records, rec)
	return "rec-1", nil
}

func (s *recordingStore) Recent(n int) ([]domain.RunRecord, error) {
	return s.records, nil
}

func TestRun_ProducesDocumentedTrace(t *testing.T) {
	svc := runner.New(catalog.New(catalog.Options{}), nil, nil)

	trace, err := svc.Run("chain_of_responsibility", domain.Input{Args: []string{"moderator"}})
	require.NoError(t, err)
	assert.Equal(t, domain.Trace{"Request handled by Moderator."}, trace)
}

func TestRun_UnknownPatternFailsWithNoTrace(t *testing.T) {
	hist := &recordingStore{}
	svc := runner.New(catalog.New(catalog.Options{}), hist, nil)

	trace, err := svc.Run("monostate", domain.Input{})
	require.Error(t, err)
	assert.True(t, domain.IsUnknownPattern(err))
	assert.Nil(t, trace)
	assert.Empty(t, hist.records, "failed lookups must not be recorded")
}

func TestRun_EmptyInputUsesEntryDefault(t *testing.T) {
	svc := runner.New(catalog.New(catalog.Options{}), nil, nil)

	trace, err := svc.Run("observer", domain.Input{})
	require.NoError(t, err)
	assert.Equal(t, domain.Trace{
		"User1 received message: New update available!",
		"User2 received message: New update available!",
	}, trace)
}

func TestRun_RecordsHistory(t *testing.T) {
	hist := &recordingStore{}
	started := time.Date(2026, 8, 23, 10, 0, 0, 0, time.UTC)
	svc := runner.New(catalog.New(catalog.Options{}), hist, nil,
		runner.WithNow(func() time.Time { return started }))

	_, err := svc.Run("facade", domain.Input{Args: []string{"Dune"}})
	require.NoError(t, err)

	require.Len(t, hist.records, 1)
	rec := hist.records[0]
	assert.Equal(t, domain.ID("facade"), rec.Pattern)
	assert.Equal(t, []string{"Dune"}, rec.Args)
	assert.Equal(t, started, rec.StartedAt)
	assert.Equal(t, domain.Trace{
		"Dimming lights.",
		"Starting projector.",
		"Playing movie: Dune.",
	}, rec.Trace)
}

func TestRun_HistoryFailureDoesNotFailTheRun(t *testing.T) {
	hist := &recordingStore{failWith: errors.New("disk full")}
	svc := runner.New(catalog.New(catalog.Options{}), hist, nil)

	trace, err := svc.Run("proxy", domain.Input{})
	require.NoError(t, err)
	assert.NotEmpty(t, trace)
}
