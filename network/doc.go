// Package network holds the immutable node set consumed by the route engine.
//
// A Network is a list of named nodes, each with a non-negative reward rate
// and a list of tunnels to other nodes. Tunnels have unit length and are
// undirected: a tunnel listed on either endpoint connects both.
//
// Nodes are addressed by their position in the input (index 0..n-1). The
// engine packages (distance, explore, pairing) work exclusively with indices;
// Index and Names translate between indices and node names at the edges.
//
// Input formats:
//
//   - Report lines, one node per line:
//     Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
//   - YAML:
//     nodes:
//     - {name: AA, rate: 0, tunnels: [DD, II, BB]}
//
// A Network is never mutated after New returns, so it is safe for concurrent
// read access from any number of goroutines.
package network
