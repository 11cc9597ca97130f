package search

// AStar runs a best-first search from start ordered by g+h, where g is
// the number of unit-cost transitions taken so far. h must never
// overestimate the remaining distance to a goal.
//
// A goal is only returned when it is taken off the frontier, at which
// point no cheaper path to any goal can remain. A state whose cost
// improves after expansion is expanded again, so a heuristic that is
// admissible but not consistent still yields a minimal result.
func AStar[S comparable](start S, next func(S) []S, goal func(S) bool, h func(S) int) (Result[S], error) {
	f := newFrontier(func(a, b astarNode[S]) bool {
		if a.f != b.f {
			return a.f < b.f
		}
		return a.g > b.g
	})
	best := map[S]int{start: 0}
	f.push(astarNode[S]{start, 0, h(start)})
	var explored int
	for f.len() > 0 {
		n := f.pop()
		if n.g > best[n.s] {
			continue // stale
		}
		explored++
		if goal(n.s) {
			return Result[S]{State: n.s, Steps: n.g, Explored: explored}, nil
		}
		for _, s := range next(n.s) {
			g := n.g + 1
			if old, ok := best[s]; ok && old <= g {
				continue
			}
			best[s] = g
			f.push(astarNode[S]{s, g, g + h(s)})
		}
	}
	return Result[S]{Explored: explored}, ErrUnreachable
}

type astarNode[S any] struct {
	s    S
	g, f int
}
