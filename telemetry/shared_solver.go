// Package telemetry wraps ctl.Solver with the pieces it deliberately
// leaves out: cross-goroutine synchronization, coalescing of
// concurrent identical queries, correlation IDs, and structured
// logging. ctl.Solver itself stays single-threaded and dependency-free
// by design; this package is where a caller opts into sharing one
// solver across goroutines.
package telemetry

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rfielding/ctlcheck/ctl"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// SharedSolver makes a *ctl.Solver safe to call from multiple
// goroutines, and collapses concurrent calls for the same formula
// into a single underlying solve.
type SharedSolver struct {
	mu      sync.Mutex
	solver  *ctl.Solver
	group   singleflight.Group
	log     *zap.Logger
}

// NewSharedSolver wraps solver. A nil logger is replaced with
// zap.NewNop, matching the library convention of never forcing a
// caller to configure logging just to use the type.
func NewSharedSolver(solver *ctl.Solver, log *zap.Logger) *SharedSolver {
	if log == nil {
		log = zap.NewNop()
	}
	return &SharedSolver{solver: solver, log: log}
}

// Satisfies evaluates f, serializing access to the underlying solver
// and coalescing concurrent calls keyed by f's structural string so
// that two goroutines asking the same question in flight at once only
// pay for one solve.
func (s *SharedSolver) Satisfies(f ctl.Formula) map[string]struct{} {
	correlationID := uuid.NewString()
	key := f.(interface{ String() string }).String()

	logger := s.log.With(zap.String("correlation_id", correlationID), zap.String("formula", key))
	logger.Debug("satisfies: start")

	v, err, shared := s.group.Do(key, func() (interface{}, error) {
		s.mu.Lock()
		defer s.mu.Unlock()
		return s.solver.Satisfies(f), nil
	})
	if err != nil {
		// s.solver.Satisfies never returns an error; this branch exists
		// because singleflight.Do's signature requires one.
		logger.Error("satisfies: unexpected error", zap.Error(err))
		return nil
	}

	logger.Debug("satisfies: done", zap.Bool("coalesced", shared))
	return v.(map[string]struct{})
}

// CacheSize reports the underlying solver's persistent cache size.
func (s *SharedSolver) CacheSize() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.solver.CacheSize()
}
