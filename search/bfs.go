// Package search implements the breadth-first, best-first, and
// cycle-finding searches used by the puzzle solvers.
//
// Every search is sequential and owns its frontier and visited set for
// the duration of a single call.
package search

import "errors"

// ErrUnreachable is returned when the frontier is exhausted without
// reaching a goal state.
var ErrUnreachable = errors.New("search: goal unreachable")

// A Result describes the outcome of a successful search.
type Result[S any] struct {
	// State is the first goal state reached.
	State S
	// Steps is the number of transitions from a start state to State.
	Steps int
	// Explored counts the states taken off the frontier.
	Explored int
}

// BFS runs a breadth-first search from starts. States are deduplicated by
// key, so two states with the same key are considered the same node.
// next enumerates successors; every transition costs 1. The search
// expands states in FIFO order, so the first goal state dequeued is at
// minimal distance from the nearest start.
func BFS[S any, K comparable](starts []S, key func(S) K, next func(S) []S, goal func(S) bool) (Result[S], error) {
	seen := make(map[K]struct{})
	var queue []bfsNode[S]
	for _, s := range starts {
		k := key(s)
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		queue = append(queue, bfsNode[S]{s, 0})
	}
	var explored int
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		explored++
		if goal(n.s) {
			return Result[S]{State: n.s, Steps: n.steps, Explored: explored}, nil
		}
		for _, s := range next(n.s) {
			k := key(s)
			if _, ok := seen[k]; ok {
				continue
			}
			seen[k] = struct{}{}
			queue = append(queue, bfsNode[S]{s, n.steps + 1})
		}
	}
	return Result[S]{Explored: explored}, ErrUnreachable
}

type bfsNode[S any] struct {
	s     S
	steps int
}

// Identity is the key func for searches whose states are their own keys.
func Identity[S comparable](s S) S { return s }

// Flood returns the BFS distance from the nearest of starts to every
// reachable state.
func Flood[S comparable](starts []S, next func(S) []S) map[S]int {
	dist := make(map[S]int)
	var queue []S
	for _, s := range starts {
		if _, ok := dist[s]; ok {
			continue
		}
		dist[s] = 0
		queue = append(queue, s)
	}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		for _, n := range next(s) {
			if _, ok := dist[n]; ok {
				continue
			}
			dist[n] = dist[s] + 1
			queue = append(queue, n)
		}
	}
	return dist
}
