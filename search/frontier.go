package search

import "container/heap"

type node[S comparable, A any] struct {
	state S
	path  []A
	cost  float64 // Path cost so far
}

type stack[T any] struct {
	items []T
}

func (s *stack[T]) push(item T) {
	s.items = append(s.items, item)
}

func (s *stack[T]) pop() T {
	n := len(s.items)
	item := s.items[n-1]
	var zero T
	s.items[n-1] = zero
	s.items = s.items[:n-1]
	return item
}

func (s *stack[T]) empty() bool {
	return len(s.items) == 0
}

type queue[T any] struct {
	items []T
	head  int
}

func (q *queue[T]) push(item T) {
	q.items = append(q.items, item)
}

func (q *queue[T]) pop() T {
	item := q.items[q.head]
	var zero T
	q.items[q.head] = zero
	q.head++
	// Reclaim the consumed prefix once it dominates the buffer
	if q.head > len(q.items)/2 {
		q.items = append(q.items[:0], q.items[q.head:]...)
		q.head = 0
	}
	return item
}

func (q *queue[T]) empty() bool {
	return q.head == len(q.items)
}

type entry[S comparable, T any] struct {
	key      S
	value    T
	priority float64
	seq      uint64 // Insertion order, breaks priority ties
	index    int
}

type entryHeap[S comparable, T any] []*entry[S, T]

func (h entryHeap[S, T]) Len() int { return len(h) }

func (h entryHeap[S, T]) Less(i, j int) bool {
	if h[i].priority != h[j].priority {
		return h[i].priority < h[j].priority
	}
	return h[i].seq < h[j].seq
}

func (h entryHeap[S, T]) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].index = i
	h[j].index = j
}

func (h *entryHeap[S, T]) Push(x any) {
	item := x.(*entry[S, T])
	item.index = len(*h)
	*h = append(*h, item)
}

func (h *entryHeap[S, T]) Pop() any {
	old := *h
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	item.index = -1
	*h = old[:n-1]
	return item
}

// priorityQueue is a min-priority queue holding at most one entry per key.
// The key index makes membership, lookup and decrease-key O(1) / O(log n).
type priorityQueue[S comparable, T any] struct {
	entries entryHeap[S, T]
	index   map[S]*entry[S, T]
	seq     uint64
}

func newPriorityQueue[S comparable, T any]() *priorityQueue[S, T] {
	return &priorityQueue[S, T]{
		index: make(map[S]*entry[S, T]),
	}
}

func (pq *priorityQueue[S, T]) push(key S, value T, priority float64) {
	if _, ok := pq.index[key]; ok {
		panic("priority queue already holds key")
	}
	e := &entry[S, T]{key: key, value: value, priority: priority, seq: pq.seq}
	pq.seq++
	heap.Push(&pq.entries, e)
	pq.index[key] = e
}

func (pq *priorityQueue[S, T]) pop() (S, T) {
	e := heap.Pop(&pq.entries).(*entry[S, T])
	delete(pq.index, e.key)
	return e.key, e.value
}

func (pq *priorityQueue[S, T]) priority(key S) (float64, bool) {
	e, ok := pq.index[key]
	if !ok {
		return 0, false
	}
	return e.priority, true
}

// update lowers the priority of a queued key and replaces its payload.
// It reports false when the key is absent or the new priority is not lower.
func (pq *priorityQueue[S, T]) update(key S, value T, priority float64) bool {
	e, ok := pq.index[key]
	if !ok || priority >= e.priority {
		return false
	}
	e.value = value
	e.priority = priority
	heap.Fix(&pq.entries, e.index)
	return true
}

func (pq *priorityQueue[S, T]) len() int {
	return len(pq.entries)
}

func (pq *priorityQueue[S, T]) empty() bool {
	return len(pq.entries) == 0
}
