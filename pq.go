package astar

// frontierItem is one open-set entry. The same node may be queued more than
// once; entries for nodes that were expanded in the meantime are stale and
// skipped when popped.
type frontierItem struct {
	Node  int32   // arena index
	FCost float64 // gCost + hCost at push time
	Seq   uint64  // push order, breaks fCost ties first-in first-out
}

// frontier is a min-heap on (FCost, Seq) implementing heap.Interface.
type frontier []frontierItem

func (queue frontier) Len() int { return len(queue) }
func (queue frontier) Less(i, j int) bool {
	if queue[i].FCost != queue[j].FCost {
		return queue[i].FCost < queue[j].FCost
	}
	return queue[i].Seq < queue[j].Seq
}
func (queue frontier) Swap(i, j int) { queue[i], queue[j] = queue[j], queue[i] }

func (queue *frontier) Push(x any) {
	*queue = append(*queue, x.(frontierItem))
}

func (queue *frontier) Pop() any {
	oldQueue := *queue
	n := len(oldQueue)
	item := oldQueue[n-1]
	*queue = oldQueue[:n-1]
	return item
}
