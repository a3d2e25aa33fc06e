package explore_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/distance"
	"github.com/katalvlaran/lvroute/network"
)

// exampleReport is the 10-node reference network (best 1651 at T=30 from AA).
const exampleReport = `Valve AA has flow rate=0; tunnels lead to valves DD, II, BB
Valve BB has flow rate=13; tunnels lead to valves CC, AA
Valve CC has flow rate=2; tunnels lead to valves DD, BB
Valve DD has flow rate=20; tunnels lead to valves CC, AA, EE
Valve EE has flow rate=3; tunnels lead to valves FF, DD
Valve FF has flow rate=0; tunnels lead to valves EE, GG
Valve GG has flow rate=0; tunnels lead to valves FF, HH
Valve HH has flow rate=22; tunnel leads to valve GG
Valve II has flow rate=0; tunnels lead to valves AA, JJ
Valve JJ has flow rate=21; tunnel leads to valve II
`

// fixture bundles a parsed network, its matrix and the source index.
type fixture struct {
	net    *network.Network
	dist   *distance.Matrix
	source int
}

func mustFixture(t *testing.T, report, source string) fixture {
	t.Helper()
	nodes, err := network.ParseReport(strings.NewReader(report))
	require.NoError(t, err)
	net, err := network.New(nodes)
	require.NoError(t, err)
	src, err := net.Index(source)
	require.NoError(t, err)

	return fixture{net: net, dist: distance.Build(net), source: src}
}

// bruteForce is an independent recursive reference for the best single-actor
// score. It assumes the source has zero rate.
func bruteForce(f fixture, budget int) int {
	opened := make([]bool, f.net.Len())
	var walk func(cur, t int) int
	walk = func(cur, t int) int {
		best := 0
		for _, i := range f.net.Rewarding() {
			if opened[i] || !f.dist.Reachable(cur, i) {
				continue
			}
			d := f.dist.At(cur, i)
			if d >= t {
				continue
			}
			left := t - d - 1
			opened[i] = true
			if v := f.net.Rate(i)*left + walk(i, left); v > best {
				best = v
			}
			opened[i] = false
		}
		return best
	}

	return walk(f.source, budget)
}
