package runner

import (
	"time"

	"go.uber.org/zap"

	"patternlab/internal/domain"
)

// Service runs demonstrations from a registry and records them.
type Service struct {
	registry domain.Registry
	history  domain.HistoryStore // nil when history is disabled
	log      *zap.Logger
	now      func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// New returns a runner over the registry. history may be nil to disable
// recording; log may be nil for a no-op logger.
func New(registry domain.Registry, history domain.HistoryStore, log *zap.Logger, opts ...Option) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Service{
		registry: registry,
		history:  history,
		log:      log,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Run resolves id, executes the demonstration and returns its trace. An
// identifier outside the catalog fails with domain.UnknownPatternError and
// produces no trace. History recording is best-effort: a failed write is
// logged, never surfaced as a run failure.
func (s *Service) Run(id domain.ID, in domain.Input) (domain.Trace, error) {
	entry, err := s.registry.Lookup(id)
	if err != nil {
		s.log.Warn("pattern lookup failed", zap.String("pattern", string(id)), zap.Error(err))
		return nil, err
	}
	if in.IsZero() {
		in = entry.DefaultInput
	}

	started := s.now()
	trace := entry.Run(in)
	elapsed := s.now().Sub(started)

	s.log.Info("pattern run",
		zap.String("pattern", string(id)),
		zap.Strings("args", in.Args),
		zap.Int("lines", len(trace)),
		zap.Duration("duration", elapsed),
	)

	if s.history != nil {
		rec := domain.RunRecord{
			Pattern:   id,
			Args:      in.Args,
			Trace:     trace,
			StartedAt: started,
			Duration:  elapsed,
		}
		if _, err := s.history.Append(rec); err != nil {
			s.log.Warn("history write failed", zap.String("pattern", string(id)), zap.Error(err))
		}
	}
	return trace, nil
}

// Compile-time assertion that Service implements domain.Runner.
var _ domain.Runner = (*Service)(nil)
