package pairing_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/distance"
	"github.com/katalvlaran/lvroute/explore"
	"github.com/katalvlaran/lvroute/network"
	"github.com/katalvlaran/lvroute/pairing"
)

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

func TestDisjoint(t *testing.T) {
	cases := []struct {
		a, b []int
		want bool
	}{
		{nil, nil, true},
		{[]int{1, 2}, nil, true},
		{[]int{1, 3, 5}, []int{2, 4, 6}, true},
		{[]int{1, 3, 5}, []int{0, 5}, false},
		{[]int{7}, []int{7}, false},
		{[]int{1, 2, 3}, []int{4, 5}, true},
	}
	for _, tc := range cases {
		assert.Equalf(t, tc.want, pairing.Disjoint(tc.a, tc.b), "%v vs %v", tc.a, tc.b)
		assert.Equalf(t, tc.want, pairing.Disjoint(tc.b, tc.a), "%v vs %v", tc.b, tc.a)
	}
}

func TestSortedSet_DoesNotMutate(t *testing.T) {
	in := []int{5, 1, 3}
	require.Equal(t, []int{1, 3, 5}, pairing.SortedSet(in))
	require.Equal(t, []int{5, 1, 3}, in)
}

func TestBest_Empty(t *testing.T) {
	p, ok := pairing.Best(nil)
	require.False(t, ok)
	require.Zero(t, p.Score)
}

func TestBest_NoDisjointPair(t *testing.T) {
	p, ok := pairing.Best([]explore.Entry{{Score: 4, Path: []int{1}}})
	require.False(t, ok)
	require.Equal(t, pairing.Pair{}, p)
}

func TestBest_PicksDisjointOverHigherOverlap(t *testing.T) {
	entries := []explore.Entry{
		{Score: 100, Path: []int{3, 1}},
		{Score: 90, Path: []int{1, 2}},
		{Score: 40, Path: []int{4}},
		{Score: 0},
	}
	p, ok := pairing.Best(entries)
	require.True(t, ok)
	require.Equal(t, 140, p.Score)
	require.Equal(t, entries[0], p.Left)
	require.Equal(t, entries[2], p.Right)
}

func TestBest_SentinelPairsWithItself(t *testing.T) {
	p, ok := pairing.Best([]explore.Entry{{Score: 0}})
	require.True(t, ok)
	require.Zero(t, p.Score)
}

func TestBestAcross_TwoFrontiers(t *testing.T) {
	left := []explore.Entry{{Score: 10, Path: []int{1}}, {Score: 6, Path: []int{2}}}
	right := []explore.Entry{{Score: 9, Path: []int{1}}, {Score: 5, Path: []int{3}}}

	p, ok := pairing.BestAcross(left, right)
	require.True(t, ok)
	require.Equal(t, 15, p.Score)
	require.Equal(t, left[0], p.Left)
	require.Equal(t, right[1], p.Right)
}

func TestBest_ExampleDuo(t *testing.T) {
	nodes, err := network.ParseReport(strings.NewReader(exampleReport))
	require.NoError(t, err)
	net, err := network.New(nodes)
	require.NoError(t, err)
	src, err := net.Index("AA")
	require.NoError(t, err)
	dist := distance.Build(net)

	duo, err := explore.Explore(net, dist, src, explore.WithBudget(26), explore.WithCapacity(2000))
	require.NoError(t, err)
	solo26, err := explore.Explore(net, dist, src, explore.WithBudget(26))
	require.NoError(t, err)

	p, ok := pairing.Best(duo.Frontier.Entries())
	require.True(t, ok)
	require.Equal(t, 1707, p.Score)
	require.True(t, pairing.Disjoint(pairing.SortedSet(p.Left.Path), pairing.SortedSet(p.Right.Path)))

	// Two actors never do worse than one and never better than two copies of one.
	single := solo26.Frontier.Best().Score
	require.GreaterOrEqual(t, p.Score, single)
	require.LessOrEqual(t, p.Score, 2*single)
}
