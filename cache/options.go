// SPDX-License-Identifier: MIT

package cache

import "github.com/apex/log"

// Option configures a Solver.
type Option func(*Solver)

// WithInverter sets the routine used on cache misses. Nil keeps DefaultInverter.
func WithInverter(inv Inverter) Option {
	return func(s *Solver) {
		if inv != nil {
			s.inverter = inv
		}
	}
}

// WithLogger sets the logger that receives the cache-hit notice and debug
// traces. Nil keeps the apex/log package logger.
func WithLogger(l log.Interface) Option {
	return func(s *Solver) {
		if l != nil {
			s.logger = l
		}
	}
}
