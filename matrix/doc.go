// Package matrix provides the dense linear-algebra kernels that matcache
// delegates inversion to.
//
// The matrix package provides:
//
//   - Matrix, a minimal two-dimensional float64 interface with bounds-checked
//     accessors and deep Clone.
//   - Dense, a row-major implementation backed by a single flat slice.
//   - Inverse and LU, deterministic O(n³) kernels that fail with ErrSingular
//     on a zero (or sub-tolerance) pivot and ErrNonSquare on non-square input.
//   - Mul and AllClose for checking A·A⁻¹ ≈ I in callers and tests.
//
// Inverse is configured through functional options (WithPartialPivoting,
// WithPivotTolerance). Without options it runs Doolittle LU with no
// pivoting, so identical inputs always produce bit-identical inverses.
//
// All kernels return package sentinels wrapped with an operation tag;
// match them with errors.Is.
package matrix
