// Package render draws grids and search results, either as plain text or
// on a tcell terminal screen.
package render

import (
	"strings"

	astar "github.com/pdrpinto/gridastar"
)

// Cell glyphs.
const (
	GlyphObstacle = '#'
	GlyphPath     = '*'
	GlyphEmpty    = '.'
	GlyphStart    = 'S'
	GlyphGoal     = 'G'
)

// Text renders g one row per line, cells separated by a space: '#' for an
// obstacle, '*' for a cell on path and '.' otherwise. path may be nil.
func Text(g *astar.Grid, path astar.Path) string {
	return draw(g, path, nil)
}

// Scenario is like Text but also marks start with 'S' and goal with 'G'.
func Scenario(g *astar.Grid, path astar.Path, start, goal astar.Position) string {
	return draw(g, path, map[astar.Position]rune{start: GlyphStart, goal: GlyphGoal})
}

func draw(g *astar.Grid, path astar.Path, marks map[astar.Position]rune) string {
	onPath := make(map[astar.Position]bool, len(path))
	for _, p := range path {
		onPath[p] = true
	}

	var sb strings.Builder
	sb.Grow(g.Rows() * (2*g.Cols() + 1))
	for p, blocked := range g.Cells() {
		if p.Col > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteRune(glyph(p, blocked, onPath, marks))
		if p.Col == g.Cols()-1 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func glyph(p astar.Position, blocked bool, onPath map[astar.Position]bool, marks map[astar.Position]rune) rune {
	if blocked {
		return GlyphObstacle
	}
	if r, ok := marks[p]; ok {
		return r
	}
	if onPath[p] {
		return GlyphPath
	}
	return GlyphEmpty
}
