package distance_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/distance"
)

func TestHops_Example(t *testing.T) {
	net := mustNetwork(t, exampleReport)
	aa, err := net.Index("AA")
	require.NoError(t, err)

	// AA BB CC DD EE FF GG HH II JJ
	require.Equal(t, []int{0, 1, 2, 1, 2, 3, 4, 5, 1, 2}, distance.Hops(net, aa))
}

func TestCrossCheck_AgreesWithBuild(t *testing.T) {
	reports := map[string]string{
		"example": exampleReport,
		"split": "Valve AA has flow rate=0; tunnel leads to valve BB\n" +
			"Valve BB has flow rate=3; tunnel leads to valve AA\n" +
			"Valve CC has flow rate=5; tunnel leads to valve DD\n" +
			"Valve DD has flow rate=0; tunnel leads to valve CC\n",
		"ring": ring(12),
	}
	for name, report := range reports {
		t.Run(name, func(t *testing.T) {
			net := mustNetwork(t, report)
			require.NoError(t, distance.CrossCheck(net, distance.Build(net)))
		})
	}
}

// ring builds an n-node cycle report.
func ring(n int) string {
	var b strings.Builder
	for i := range n {
		fmt.Fprintf(&b, "Valve N%02d has flow rate=%d; tunnels lead to valves N%02d, N%02d\n",
			i, i%3, (i+1)%n, (i+n-1)%n)
	}
	return b.String()
}
