// Package explore implements the time-budgeted state-space search at the
// heart of the route engine.
//
// Starting at a source node with a budget of T time units, the explorer
// enumerates every order in which reward-bearing nodes can be activated
// before time runs out. Moving between nodes costs their shortest-path
// distance; activating a node costs one more unit and from then on yields
// rate × (time remaining) reward. The search is an explicit LIFO work list of
// owned state snapshots (no recursion), so sibling branches never share an
// opened-set or a path buffer.
//
// Every popped state is offered to a Frontier: a score-descending list of at
// most K entries, seeded with a zero-score sentinel. A state is accepted when
// its score strictly exceeds the frontier's current tail; after insertion the
// tail is evicted if the list outgrew K. This keeps the true best state, but
// the retained secondary entries depend on discovery order and are not a
// strict top-K. Downstream pairing only needs a good diverse sample.
//
// Determinism: children are pushed in ascending node index, so the highest
// index is explored first. Identical inputs always produce identical frontiers
// in sequential mode.
//
// Options:
//
//	WithBudget(T)          total time budget (default 30)
//	WithCapacity(K)        frontier capacity (default 1)
//	WithContext(ctx)       cancellation, checked every 4096 pops
//	WithBoundPruning(on)   skip subtrees whose optimistic score cannot beat the tail
//	WithWorkers(n)         shard the root's children across n goroutines
//	WithOnRecord(fn)       hook for each accepted frontier entry
//
// Complexity: worst case O(m!) states for m reward-bearing nodes; in practice
// bounded far tighter by the time budget.
package explore
