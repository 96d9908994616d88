package pathfinder

// item is one entry in the search frontier: a candidate node together with
// the g-score and f-score it was pushed with, and the trip it would have
// arrived on. Because g-scores can be improved multiple times before a node
// is finalized, popped items are checked against the current best g-score
// for that node and discarded if stale — this avoids maintaining a
// decrease-key operation on the heap.
//
// Grounded on Server/graphs_go/routing.go's pqItem/priorityQueue, extended
// with the fields the mode-masked, transfer-aware search needs.
type item struct {
	node          int
	gScore        float64
	fScore        float64
	arrivalTripID string
	index         int
}

type priorityQueue []*item

func (pq priorityQueue) Len() int { return len(pq) }

func (pq priorityQueue) Less(i, j int) bool { return pq[i].fScore < pq[j].fScore }

func (pq priorityQueue) Swap(i, j int) {
	pq[i], pq[j] = pq[j], pq[i]
	pq[i].index = i
	pq[j].index = j
}

func (pq *priorityQueue) Push(x any) {
	it := x.(*item)
	it.index = len(*pq)
	*pq = append(*pq, it)
}

func (pq *priorityQueue) Pop() any {
	old := *pq
	n := len(old)
	it := old[n-1]
	old[n-1] = nil
	it.index = -1
	*pq = old[:n-1]
	return it
}
