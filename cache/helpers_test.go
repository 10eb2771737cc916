// SPDX-License-Identifier: MIT

package cache_test

import (
	"testing"

	"github.com/apex/log"
	"github.com/apex/log/handlers/memory"

	"github.com/katalvlaran/matcache/matrix"
)

// dense builds a *matrix.Dense from rows or fails the test.
func dense(t *testing.T, rows [][]float64) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDenseFrom(rows)
	if err != nil {
		t.Fatalf("NewDenseFrom(%v): %v", rows, err)
	}

	return d
}

// memLogger returns a debug-level logger that records entries in memory.
func memLogger() (*log.Logger, *memory.Handler) {
	h := memory.New()

	return &log.Logger{Handler: h, Level: log.DebugLevel}, h
}

// messages extracts entry messages at or above lvl.
func messages(h *memory.Handler, lvl log.Level) []string {
	var out []string
	for _, e := range h.Entries {
		if e.Level >= lvl {
			out = append(out, e.Message)
		}
	}

	return out
}

// assertClose fails unless got ≈ want element-wise.
func assertClose(t *testing.T, want [][]float64, got matrix.Matrix) {
	t.Helper()
	ok, err := matrix.AllClose(got, dense(t, want), 0, 1e-12)
	if err != nil {
		t.Fatalf("AllClose: %v", err)
	}
	if !ok {
		t.Fatalf("want %v, got\n%v", want, got)
	}
}

// countingInverter wraps matrix.Inverse and records each call.
type countingInverter struct {
	calls    int
	lastOpts int
}

func (c *countingInverter) Invert(m matrix.Matrix, opts ...matrix.InverseOption) (matrix.Matrix, error) {
	c.calls++
	c.lastOpts = len(opts)

	return matrix.Inverse(m, opts...)
}
