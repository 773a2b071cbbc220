package internal

// NoParent marks an arena entry without a predecessor, i.e. the start.
const NoParent int32 = -1

// ReconstructPath rebuilds the path ending at goal by following parentOf
// back to an entry with NoParent, and returns the indices in start-to-goal
// order. It gives up after limit entries, which can only happen if the
// parent links form a cycle, and reports ok=false in that case.
func ReconstructPath(goal int32, limit int, parentOf func(int32) int32) (path []int32, ok bool) {
	current := goal
	for {
		if len(path) >= limit {
			return nil, false
		}
		path = append(path, current)
		previous := parentOf(current)
		if previous == NoParent {
			break
		}
		current = previous
	}
	// reverse path
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}
