// SPDX-License-Identifier: MIT

package distance

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/lvroute/network"
)

// ErrRowMismatch signals a matrix row that disagrees with a breadth-first walk.
var ErrRowMismatch = errors.New("distance: row disagrees with BFS")

// Hops returns unit-length distances from src to every node using a
// breadth-first walk. Unreachable nodes get the same sentinel as Build (n).
//
// Complexity: O(V + E).
func Hops(net *network.Network, src int) []int {
	n := net.Len()
	depth := make([]int, n)
	for i := range depth {
		depth[i] = n
	}
	depth[src] = 0

	queue := make([]int, 0, n)
	queue = append(queue, src)
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		for _, v := range net.Neighbors(u) {
			if depth[v] != n {
				continue
			}
			depth[v] = depth[u] + 1
			queue = append(queue, v)
		}
	}

	return depth
}

// CrossCheck compares every row of m against Hops from that row's node.
// The first differing row is reported with ErrRowMismatch.
//
// Complexity: O(V·(V + E)).
func CrossCheck(net *network.Network, m *Matrix) error {
	if net.Len() != m.N() {
		return fmt.Errorf("network has %d nodes, matrix %d: %w", net.Len(), m.N(), ErrRowMismatch)
	}
	for i := range m.N() {
		want := Hops(net, i)
		for j, d := range want {
			if m.At(i, j) != d {
				return fmt.Errorf("dist[%d][%d]=%d, bfs=%d: %w", i, j, m.At(i, j), d, ErrRowMismatch)
			}
		}
	}

	return nil
}
