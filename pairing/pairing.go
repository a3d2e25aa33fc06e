// SPDX-License-Identifier: MIT

// Package pairing selects two results with disjoint opened-node sets that
// together score the most, modelling two independent actors who must not
// duplicate work.
//
// Disjointness is a two-pointer merge over sorted index sets; no hash-set
// intersection is needed. The selector knows nothing about graphs: it only
// reads explore.Entry scores and paths.
//
// Complexity: O(K² · L) for K entries with paths of length ≤ L.
package pairing

import (
	"slices"

	"github.com/katalvlaran/lvroute/explore"
)

// Pair is the best disjoint combination found.
type Pair struct {
	// Score is Left.Score + Right.Score.
	Score int

	// Left and Right are the paired entries, as given by the caller.
	Left, Right explore.Entry
}

// SortedSet returns a sorted copy of path. The input is not modified.
func SortedSet(path []int) []int {
	out := slices.Clone(path)
	slices.Sort(out)

	return out
}

// Disjoint reports whether two ascending index sets share no element.
// Both inputs must be sorted.
func Disjoint(a, b []int) bool {
	var i, j int
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case b[j] < a[i]:
			j++
		default:
			return false
		}
	}

	return true
}

// Best returns the highest-scoring pair of entries from one frontier whose
// paths are disjoint. An entry may pair with itself only if its path is
// empty. The boolean is false, and the Pair zero, when entries is empty.
// Ties keep the first pair in row-major order.
func Best(entries []explore.Entry) (Pair, bool) {
	return BestAcross(entries, entries)
}

// BestAcross is Best over two independent frontiers, one per actor.
func BestAcross(left, right []explore.Entry) (Pair, bool) {
	if len(left) == 0 || len(right) == 0 {
		return Pair{}, false
	}

	ls := sortedSets(left)
	rs := ls
	if !sameBacking(left, right) {
		rs = sortedSets(right)
	}

	var (
		best  Pair
		found bool
		i, j  int
		sum   int
	)
	for i = range left {
		for j = range right {
			sum = left[i].Score + right[j].Score
			if found && sum <= best.Score {
				continue
			}
			if !Disjoint(ls[i], rs[j]) {
				continue
			}
			best = Pair{Score: sum, Left: left[i], Right: right[j]}
			found = true
		}
	}

	return best, found
}

func sortedSets(entries []explore.Entry) [][]int {
	out := make([][]int, len(entries))
	for i, e := range entries {
		out[i] = SortedSet(e.Path)
	}

	return out
}

// sameBacking reports whether a and b are the same slice.
func sameBacking(a, b []explore.Entry) bool {
	return len(a) == len(b) && &a[0] == &b[0]
}
