package search

import "container/heap"

// A frontier is a min-heap of search nodes backed by a slice.
type frontier[E any] struct {
	s sliceHeap[E]
}

func newFrontier[E any](less func(E, E) bool) *frontier[E] {
	return &frontier[E]{sliceHeap[E]{less: less}}
}

// push adds e in O(log n).
func (f *frontier[E]) push(e E) { heap.Push(&f.s, e) }

// pop removes and returns the minimum element. It panics if the
// frontier is empty.
func (f *frontier[E]) pop() E { return heap.Pop(&f.s).(E) }

func (f *frontier[E]) len() int { return len(f.s.s) }

// sliceHeap adapts a slice and a less func to heap.Interface.
type sliceHeap[E any] struct {
	s    []E
	less func(E, E) bool
}

func (s *sliceHeap[E]) Len() int           { return len(s.s) }
func (s *sliceHeap[E]) Swap(i, j int)      { s.s[i], s.s[j] = s.s[j], s.s[i] }
func (s *sliceHeap[E]) Less(i, j int) bool { return s.less(s.s[i], s.s[j]) }
func (s *sliceHeap[E]) Push(x any)         { s.s = append(s.s, x.(E)) }

func (s *sliceHeap[E]) Pop() any {
	e := s.s[len(s.s)-1]
	var zero E
	s.s[len(s.s)-1] = zero
	s.s = s.s[:len(s.s)-1]
	return e
}
