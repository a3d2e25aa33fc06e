// Package distance builds the all-pairs shortest-path matrix the route
// engine searches over.
//
// Tunnels have unit length, so dist[i][j] is the minimum number of tunnel
// traversals from node i to node j. The closure is the classic Floyd–Warshall
// relaxation with a fixed k → i → j loop order; a single pass over every
// intermediate is sufficient.
//
// Pairs with no connecting path keep a sentinel value equal to the node count
// (no simple path is longer than n-1 edges). Callers must test Reachable
// before using a distance; the sentinel is not a usable length.
//
// A Matrix is immutable after Build and safe for concurrent reads.
package distance
