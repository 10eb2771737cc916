// Package matcache memoizes matrix inversion for interactive, single-user
// analysis sessions where the same matrix is inverted again and again.
//
// Under the hood, everything is organized under two subpackages:
//
//	cache/  — CachedMatrix (a matrix plus its optional cached inverse) and
//	          Solver (cache-first inversion with apex/log notices on hits)
//	matrix/ — Dense storage and the deterministic LU / Gauss-Jordan kernels
//	          the solver falls back to on a miss
//
// Quick example:
//
//	A, _ := matrix.NewDenseFrom([][]float64{{2, 0}, {0, 2}})
//	cm, _ := cache.NewCachedMatrix(A)
//	s := cache.NewSolver()
//	inv, _ := s.Solve(cm) // computed: [[0.5 0] [0 0.5]]
//	inv, _ = s.Solve(cm)  // cached, logs "returning cached result"
//	cm.SetMatrix(B)       // drops the cached inverse
//
// Nothing here is safe for concurrent use; a container belongs to one caller.
//
// SPDX-License-Identifier: MIT
package matcache
