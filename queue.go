package huffman

import (
	"container/heap"
)

// nodeQueue is a min-ordered priority queue of tree nodes keyed by weight.
// Nodes of equal weight are extracted in insertion order.
type nodeQueue struct {
	h       nodeHeap
	nextSeq uint64
}

func (q *nodeQueue) Len() int {
	return q.h.Len()
}

func (q *nodeQueue) Insert(node Node) {
	heap.Push(&q.h, queueItem{node: node, seq: q.nextSeq})
	q.nextSeq++
}

func (q *nodeQueue) ExtractMin() Node {
	return heap.Pop(&q.h).(queueItem).node
}

// type queueItem + type nodeHeap {{{

type queueItem struct {
	node Node
	seq  uint64
}

type nodeHeap struct {
	list []queueItem
}

func (h *nodeHeap) Len() int {
	return len(h.list)
}

func (h *nodeHeap) Swap(i, j int) {
	h.list[i], h.list[j] = h.list[j], h.list[i]
}

func (h *nodeHeap) Less(i, j int) bool {
	a, b := h.list[i], h.list[j]
	aw, bw := a.node.Weight(), b.node.Weight()
	if aw != bw {
		return aw < bw
	}
	return a.seq < b.seq
}

func (h *nodeHeap) Push(x interface{}) {
	h.list = append(h.list, x.(queueItem))
}

func (h *nodeHeap) Pop() interface{} {
	last := uint(len(h.list)) - 1
	x := h.list[last]
	h.list[last] = queueItem{}
	h.list = h.list[:last]
	return x
}

var _ heap.Interface = (*nodeHeap)(nil)

// }}}
