// SPDX-License-Identifier: MIT

package network

import (
	"errors"
	"fmt"
	"slices"
)

// Sentinel errors for network construction and lookup.
var (
	// ErrEmptyNetwork indicates that New received no nodes.
	ErrEmptyNetwork = errors.New("network: no nodes")

	// ErrEmptyName indicates a node with a zero-length name.
	ErrEmptyName = errors.New("network: node name is empty")

	// ErrDuplicateName indicates two nodes sharing one name.
	ErrDuplicateName = errors.New("network: duplicate node name")

	// ErrNegativeRate indicates a node with a reward rate below zero.
	ErrNegativeRate = errors.New("network: negative reward rate")

	// ErrUnknownTunnel indicates a tunnel pointing at a node that does not exist.
	ErrUnknownTunnel = errors.New("network: tunnel to unknown node")

	// ErrUnknownNode indicates a lookup of a name that is not in the network.
	ErrUnknownNode = errors.New("network: unknown node")

	// ErrMalformedLine indicates a report line that does not match the grammar.
	ErrMalformedLine = errors.New("network: malformed report line")
)

// Node is one parsed input record.
type Node struct {
	// Name uniquely identifies the node.
	Name string `yaml:"name"`

	// Rate is the reward earned per unit of time remaining after activation.
	Rate int `yaml:"rate"`

	// Tunnels lists the names of directly connected nodes.
	Tunnels []string `yaml:"tunnels"`
}

// Network is the read-only node set. Build it with New.
type Network struct {
	names     []string       // index → name
	rates     []int          // index → reward rate
	adjacency [][]int        // index → sorted unique neighbor indices
	index     map[string]int // name → index
}

// New validates nodes and builds a Network.
//
// Tunnels are mirrored so that the adjacency is undirected; self tunnels are
// dropped and duplicates collapsed. Node order is preserved: node i of the
// input is index i of the Network.
//
// Errors: ErrEmptyNetwork, ErrEmptyName, ErrDuplicateName, ErrNegativeRate,
// ErrUnknownTunnel (each wrapped with the offending name).
//
// Complexity: O(V + E·log E).
func New(nodes []Node) (*Network, error) {
	if len(nodes) == 0 {
		return nil, ErrEmptyNetwork
	}

	n := len(nodes)
	net := &Network{
		names:     make([]string, n),
		rates:     make([]int, n),
		adjacency: make([][]int, n),
		index:     make(map[string]int, n),
	}

	// Pass 1: names and rates, so tunnels can be resolved in any order.
	var i int
	for i = 0; i < n; i++ {
		nd := nodes[i]
		if nd.Name == "" {
			return nil, fmt.Errorf("node #%d: %w", i, ErrEmptyName)
		}
		if _, dup := net.index[nd.Name]; dup {
			return nil, fmt.Errorf("%q: %w", nd.Name, ErrDuplicateName)
		}
		if nd.Rate < 0 {
			return nil, fmt.Errorf("%q: %w", nd.Name, ErrNegativeRate)
		}
		net.names[i] = nd.Name
		net.rates[i] = nd.Rate
		net.index[nd.Name] = i
	}

	// Pass 2: tunnels, mirrored in both directions.
	for i = 0; i < n; i++ {
		for _, to := range nodes[i].Tunnels {
			j, ok := net.index[to]
			if !ok {
				return nil, fmt.Errorf("%q -> %q: %w", nodes[i].Name, to, ErrUnknownTunnel)
			}
			if j == i {
				continue
			}
			net.adjacency[i] = append(net.adjacency[i], j)
			net.adjacency[j] = append(net.adjacency[j], i)
		}
	}
	for i = 0; i < n; i++ {
		slices.Sort(net.adjacency[i])
		net.adjacency[i] = slices.Compact(net.adjacency[i])
	}

	return net, nil
}

// Len returns the node count.
func (n *Network) Len() int { return len(n.names) }

// Name returns the name of node i.
func (n *Network) Name(i int) string { return n.names[i] }

// Rate returns the reward rate of node i.
func (n *Network) Rate(i int) int { return n.rates[i] }

// Neighbors returns a copy of the sorted neighbor indices of node i.
func (n *Network) Neighbors(i int) []int { return slices.Clone(n.adjacency[i]) }

// Index resolves a node name. Unknown names yield ErrUnknownNode.
func (n *Network) Index(name string) (int, error) {
	i, ok := n.index[name]
	if !ok {
		return -1, fmt.Errorf("%q: %w", name, ErrUnknownNode)
	}

	return i, nil
}

// Rewarding returns the indices of nodes with a positive rate, ascending.
func (n *Network) Rewarding() []int {
	out := make([]int, 0, len(n.rates))
	for i, r := range n.rates {
		if r > 0 {
			out = append(out, i)
		}
	}

	return out
}

// Names maps an index path to node names.
func (n *Network) Names(path []int) []string {
	out := make([]string, len(path))
	for k, i := range path {
		out[k] = n.names[i]
	}

	return out
}
