// SPDX-License-Identifier: MIT
//
// Purpose:
//   - Dense int APSP over a network.Network with deterministic loop order.
//   - Flat row-major buffer, O(n²) memory, O(n³) build time.
//
// Contract:
//   - Diagonal 0, direct tunnels 1, everything else the sentinel before closure.
//   - Sentinel entries never participate in a relaxation.

package distance

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvroute/network"
)

// Sentinel errors reported by Validate.
var (
	// ErrNonZeroDiagonal signals dist[i][i] != 0.
	ErrNonZeroDiagonal = errors.New("distance: diagonal not zero")

	// ErrAsymmetry signals dist[i][j] != dist[j][i] on an undirected network.
	ErrAsymmetry = errors.New("distance: matrix is not symmetric")

	// ErrTriangle signals dist[i][j] > dist[i][k] + dist[k][j] for a reachable triple.
	ErrTriangle = errors.New("distance: triangle inequality violated")
)

// Matrix is a square shortest-path matrix. Build it with Build.
type Matrix struct {
	n    int   // order
	inf  int   // unreachable sentinel
	data []int // row-major: data[i*n+j]
}

// Build computes the shortest-path matrix of net.
//
// Complexity: Time O(n³), Space O(n²).
func Build(net *network.Network) *Matrix {
	n := net.Len()
	m := &Matrix{n: n, inf: n, data: make([]int, n*n)}

	var i, j int
	for i = 0; i < n; i++ {
		base := i * n
		for j = 0; j < n; j++ {
			m.data[base+j] = m.inf
		}
		m.data[base+i] = 0
		for _, j = range net.Neighbors(i) {
			m.data[base+j] = 1
		}
	}

	m.closeInPlace()

	return m
}

// closeInPlace runs the Floyd–Warshall relaxation.
// Loop order is fixed (k → i → j); improvements are strict.
func (m *Matrix) closeInPlace() {
	var (
		n            = m.n
		data         = m.data
		k, i, j      int
		baseK, baseI int
		ik, kj, cand int
	)

	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if ik >= m.inf { // i cannot reach k
				continue
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if kj >= m.inf { // k cannot reach j
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}
}

// N returns the matrix order (the node count).
func (m *Matrix) N() int { return m.n }

// At returns dist[i][j]. Unreachable pairs return the sentinel.
func (m *Matrix) At(i, j int) int { return m.data[i*m.n+j] }

// Reachable reports whether j can be reached from i.
func (m *Matrix) Reachable(i, j int) bool { return m.data[i*m.n+j] < m.inf }

// Unreachable returns the sentinel stored for disconnected pairs.
func (m *Matrix) Unreachable() int { return m.inf }

// Row returns a copy of row i.
func (m *Matrix) Row(i int) []int {
	out := make([]int, m.n)
	copy(out, m.data[i*m.n:(i+1)*m.n])

	return out
}

// Validate checks the invariants every closed matrix must satisfy:
// zero diagonal, symmetry, and the triangle inequality over reachable
// triples. The first violation is returned, wrapped with its indices.
//
// Complexity: O(n³).
func Validate(m *Matrix) error {
	var i, j, k int
	for i = 0; i < m.n; i++ {
		if m.At(i, i) != 0 {
			return fmt.Errorf("dist[%d][%d]=%d: %w", i, i, m.At(i, i), ErrNonZeroDiagonal)
		}
		for j = i + 1; j < m.n; j++ {
			if m.At(i, j) != m.At(j, i) {
				return fmt.Errorf("dist[%d][%d]=%d dist[%d][%d]=%d: %w",
					i, j, m.At(i, j), j, i, m.At(j, i), ErrAsymmetry)
			}
		}
	}
	for k = 0; k < m.n; k++ {
		for i = 0; i < m.n; i++ {
			if !m.Reachable(i, k) {
				continue
			}
			for j = 0; j < m.n; j++ {
				if !m.Reachable(k, j) {
					continue
				}
				if m.At(i, j) > m.At(i, k)+m.At(k, j) {
					return fmt.Errorf("i=%d j=%d k=%d: %w", i, j, k, ErrTriangle)
				}
			}
		}
	}

	return nil
}
