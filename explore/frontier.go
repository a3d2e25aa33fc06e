// SPDX-License-Identifier: MIT

package explore

import (
	"slices"
	"sort"
)

// Frontier is a bounded, score-descending list of retained results.
//
// It starts with a single zero-score, empty-path sentinel so the first
// positive score is always accepted. Offer compares against the current
// tail, not a global low-water mark; see the package documentation for what
// that means for secondary entries.
//
// A Frontier is not safe for concurrent mutation.
type Frontier struct {
	capacity int
	entries  []Entry
	evicted  int
}

// NewFrontier returns a frontier of capacity k (k < 1 is treated as 1).
func NewFrontier(k int) *Frontier {
	if k < 1 {
		k = 1
	}

	return &Frontier{
		capacity: k,
		entries:  []Entry{{Score: 0}},
	}
}

// Offer inserts (score, path) when score strictly exceeds the tail.
//
// The entry lands after every entry with an equal or higher score (stable),
// then the tail is evicted if the list is longer than the capacity. The
// frontier takes ownership of path; the caller must not modify it afterwards.
//
// Complexity: O(K).
func (f *Frontier) Offer(score int, path []int) bool {
	if score <= f.Tail() {
		return false
	}

	pos := sort.Search(len(f.entries), func(k int) bool { return f.entries[k].Score < score })
	f.entries = slices.Insert(f.entries, pos, Entry{Score: score, Path: path})
	if len(f.entries) > f.capacity {
		f.entries = f.entries[:len(f.entries)-1]
		f.evicted++
	}

	return true
}

// Tail returns the lowest retained score.
func (f *Frontier) Tail() int { return f.entries[len(f.entries)-1].Score }

// Best returns the highest-scoring entry. Its path is shared; do not modify it.
func (f *Frontier) Best() Entry { return f.entries[0] }

// Len returns the number of retained entries, sentinel included.
func (f *Frontier) Len() int { return len(f.entries) }

// Cap returns the capacity K.
func (f *Frontier) Cap() int { return f.capacity }

// Evicted returns how many entries have been dropped from the tail.
func (f *Frontier) Evicted() int { return f.evicted }

// Entries returns a deep copy of the retained entries, best first.
func (f *Frontier) Entries() []Entry {
	out := make([]Entry, len(f.entries))
	for i, e := range f.entries {
		out[i] = Entry{Score: e.Score, Path: slices.Clone(e.Path)}
	}

	return out
}
