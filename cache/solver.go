// SPDX-License-Identifier: MIT

package cache

import (
	"github.com/apex/log"

	"github.com/katalvlaran/matcache/matrix"
)

// MsgCacheHit is the notice logged (Info level) when Solve returns a cached inverse.
const MsgCacheHit = "returning cached result"

// Stats counts Solve outcomes for one Solver.
type Stats struct {
	Hits     int // served from the container's cache
	Misses   int // inverter invoked and result stored
	Failures int // inverter invoked and failed; nothing stored
}

// Solver returns matrix inverses, consulting the container's cache first.
type Solver struct {
	inverter Inverter
	logger   log.Interface
	stats    Stats
}

// NewSolver returns a Solver using DefaultInverter and the apex/log package
// logger unless overridden by opts.
func NewSolver(opts ...Option) *Solver {
	s := &Solver{
		inverter: DefaultInverter,
		logger:   log.Log,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(s)
		}
	}

	return s
}

// Solve returns the inverse of c's matrix.
//
// On a hit the cached inverse is returned, MsgCacheHit is logged, and opts
// are ignored; the inverter is not called. On a miss the inverter runs on the
// current matrix with opts, and a successful result is stored in c before it
// is returned. Inverter errors are returned as-is and leave c without an
// inverse, so a later call retries.
func (s *Solver) Solve(c *CachedMatrix, opts ...matrix.InverseOption) (matrix.Matrix, error) {
	if c == nil {
		return nil, ErrNilContainer
	}

	if inv, ok := c.Inverse(); ok {
		s.stats.Hits++
		s.logger.WithFields(log.Fields{
			"rows": inv.Rows(),
			"cols": inv.Cols(),
		}).Info(MsgCacheHit)

		return inv, nil
	}

	inv, err := s.inverter.Invert(c.Matrix(), opts...)
	if err != nil {
		s.stats.Failures++
		s.logger.WithError(err).Debug("inversion failed")

		return nil, err
	}
	if matrix.ValidateNotNil(inv) != nil {
		s.stats.Failures++

		return nil, ErrNoResult
	}

	c.SetInverse(inv)
	s.stats.Misses++
	s.logger.WithFields(log.Fields{
		"rows": inv.Rows(),
		"cols": inv.Cols(),
	}).Debug("inverse computed and cached")

	return inv, nil
}

// Stats returns a snapshot of the solver's counters.
func (s *Solver) Stats() Stats { return s.stats }

// Solve is a convenience wrapper around NewSolver().Solve(c, opts...).
func Solve(c *CachedMatrix, opts ...matrix.InverseOption) (matrix.Matrix, error) {
	return NewSolver().Solve(c, opts...)
}
