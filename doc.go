// Package astar finds shortest obstacle-avoiding paths on a 2-D occupancy
// grid with the A* algorithm.
//
// A Grid marks each of its rows x cols cells as clear or blocked. Paths move
// between 4-connected clear cells at unit cost, guided by the Manhattan
// heuristic, so every path returned is a shortest one.
//
// It exposes two main entry points:
//
//   - FindPath: run the search to completion and get a Result.
//   - Stepper: iterate the search one expansion at a time to drive UIs or
//     to bound the work done by a single search.
//
// Each search owns its node state; a Grid may be shared by concurrent
// searches as long as it is not modified while they run.
package astar
