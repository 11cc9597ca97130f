package search

// ShortestPath is a breadth-first search that also remembers how each
// state was reached. It returns the states from start to the first goal
// found, both included.
func ShortestPath[S comparable](start S, next func(S) []S, goal func(S) bool) ([]S, error) {
	prev := map[S]S{}
	frontier := []S{start}
	seen := map[S]bool{start: true}
	for len(frontier) > 0 {
		s := frontier[0]
		frontier = frontier[1:]
		if goal(s) {
			// Walk back to start, then reverse into forward order.
			path := []S{s}
			for s != start {
				s = prev[s]
				path = append(path, s)
			}
			for i := 0; i < len(path)/2; i++ {
				path[i], path[len(path)-i-1] = path[len(path)-i-1], path[i]
			}
			return path, nil
		}
		for _, n := range next(s) {
			if seen[n] {
				continue
			}
			seen[n] = true
			prev[n] = s
			frontier = append(frontier, n)
		}
	}
	return nil, ErrUnreachable
}
