// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the inversion kernels.
// This file defines:
//   - InverseOption / inverseOptions (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherInverseOptions helper that applies setters over defaults.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag changes kernel behavior and is covered by tests.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultPivotTolerance is the largest |pivot| still treated as singular.
	// Zero means only an exact zero pivot fails, matching the classic
	// no-pivoting Doolittle kernel.
	DefaultPivotTolerance = 0.0

	// DefaultPartialPivoting keeps the deterministic no-pivoting LU path.
	DefaultPartialPivoting = false
)

// Panic messages (stable for tests).
const (
	panicPivotTolInvalid = "matrix: WithPivotTolerance: tol must be finite and >= 0"
)

// InverseOption configures Inverse.
type InverseOption func(*inverseOptions)

// inverseOptions is the resolved configuration; fields are unexported so the
// only way to change them is through WithX setters.
type inverseOptions struct {
	pivotTol     float64 // DefaultPivotTolerance
	partialPivot bool    // DefaultPartialPivoting
}

// WithPivotTolerance treats any pivot with |pivot| <= tol as singular.
// Panics when tol is NaN, ±Inf or negative (programmer error).
//
// Notes:
//   - A small positive tol (e.g. 1e-12) turns near-singular inputs into
//     ErrSingular instead of an inverse full of huge values.
func WithPivotTolerance(tol float64) InverseOption {
	if isNonFinite(tol) || tol < 0 {
		panic(panicPivotTolInvalid)
	}

	return func(o *inverseOptions) { o.pivotTol = tol }
}

// WithPartialPivoting enables row-swapping Gauss-Jordan elimination.
// Inputs with a zero leading entry (e.g. [[0,1],[1,0]]) become invertible;
// results stay deterministic (first max-|v| row wins ties).
func WithPartialPivoting() InverseOption {
	return func(o *inverseOptions) { o.partialPivot = true }
}

// WithoutPivoting restores the default Doolittle path.
func WithoutPivoting() InverseOption {
	return func(o *inverseOptions) { o.partialPivot = false }
}

// gatherInverseOptions applies setters on top of defaults (last-writer-wins).
// Nil setters are skipped.
func gatherInverseOptions(user ...InverseOption) inverseOptions {
	o := inverseOptions{
		pivotTol:     DefaultPivotTolerance,
		partialPivot: DefaultPartialPivoting,
	}
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
