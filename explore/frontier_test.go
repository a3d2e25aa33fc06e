package explore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvroute/explore"
)

func scoresOf(f *explore.Frontier) []int {
	out := make([]int, 0, f.Len())
	for _, e := range f.Entries() {
		out = append(out, e.Score)
	}
	return out
}

func TestFrontier_SeededWithSentinel(t *testing.T) {
	f := explore.NewFrontier(3)
	require.Equal(t, 1, f.Len())
	require.Equal(t, 3, f.Cap())
	require.Equal(t, explore.Entry{Score: 0}, f.Best())
	require.False(t, f.Offer(0, []int{1}), "zero never beats the sentinel")
}

func TestFrontier_ClampsCapacity(t *testing.T) {
	require.Equal(t, 1, explore.NewFrontier(0).Cap())
	require.Equal(t, 1, explore.NewFrontier(-4).Cap())
}

func TestFrontier_TailRuleAndEviction(t *testing.T) {
	f := explore.NewFrontier(2)

	require.True(t, f.Offer(5, []int{1}))
	require.Equal(t, []int{5, 0}, scoresOf(f))

	require.True(t, f.Offer(3, []int{2}))
	require.Equal(t, []int{5, 3}, scoresOf(f))
	require.Equal(t, 1, f.Evicted())

	require.False(t, f.Offer(3, []int{3}), "ties with the tail are rejected")
	require.False(t, f.Offer(2, []int{4}))

	require.True(t, f.Offer(4, []int{5}))
	require.Equal(t, []int{5, 4}, scoresOf(f))
	require.Equal(t, 2, f.Evicted())
}

func TestFrontier_StableTies(t *testing.T) {
	f := explore.NewFrontier(4)
	require.True(t, f.Offer(7, []int{1}))
	require.True(t, f.Offer(7, []int{2}))
	require.True(t, f.Offer(9, []int{3}))

	got := f.Entries()
	require.Equal(t, []int{3}, got[0].Path)
	require.Equal(t, []int{1}, got[1].Path, "earlier equal score stays first")
	require.Equal(t, []int{2}, got[2].Path)
	require.Equal(t, 0, got[3].Score)
}

func TestFrontier_EntriesIsADeepCopy(t *testing.T) {
	f := explore.NewFrontier(2)
	f.Offer(10, []int{1, 2})

	got := f.Entries()
	got[0].Path[0] = 99
	got[0].Score = -1

	require.Equal(t, explore.Entry{Score: 10, Path: []int{1, 2}}, f.Best())
}
