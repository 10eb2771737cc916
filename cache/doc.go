// Package cache memoizes the inverse of a square matrix.
//
// Two pieces, strictly layered:
//
//   - CachedMatrix holds one matrix and an optional cached inverse. Replacing
//     the matrix always drops the cached inverse in the same call, so the
//     cache never holds an inverse computed for an overwritten value.
//   - Solver returns the inverse of a CachedMatrix, delegating to an Inverter
//     (matrix.Inverse by default) only on a cache miss and storing the result.
//     A hit logs "returning cached result" at Info level through apex/log.
//
// Inverter failures (singular or non-square input) are returned unchanged and
// are never cached; the next Solve retries the computation.
//
// Neither type is safe for concurrent use. Solve's read-check-compute-store
// sequence is not atomic; callers sharing a container across goroutines must
// guard it themselves.
//
// Quick example:
//
//	A, _ := matrix.NewDenseFrom([][]float64{{2, 0}, {0, 2}})
//	cm, _ := cache.NewCachedMatrix(A)
//	s := cache.NewSolver()
//	inv, _ := s.Solve(cm) // computes
//	inv, _ = s.Solve(cm)  // cache hit
package cache
