package grid

import (
	"fmt"
	"iter"
	"strings"
)

// Grid is an immutable Width×Height grid of tiles stored in row-major order.
// The zero value is not usable; build one with New or Parse.
type Grid[T fmt.Stringer] struct {
	tiles         []T
	width, height int
}

// New constructs a Grid from a row-major tile slice. The slice is copied.
// Returns ErrEmptyGrid if width or height is below 1,
// ErrTileCount if len(tiles) != width*height.
func New[T fmt.Stringer](width, height int, tiles []T) (*Grid[T], error) {
	if width < 1 || height < 1 {
		return nil, ErrEmptyGrid
	}
	if len(tiles) != width*height {
		return nil, fmt.Errorf("%w: got %d, want %d×%d", ErrTileCount, len(tiles), width, height)
	}
	cp := make([]T, len(tiles))
	copy(cp, tiles)

	return &Grid[T]{tiles: cp, width: width, height: height}, nil
}

// Parse builds a Grid from text: one row per line, one tile per rune,
// each rune converted by parse. A single trailing newline and CRLF line
// endings are accepted. Width is the rune count of the first line and
// every other line must match it.
//
// On failure Parse returns a nil grid and ErrEmptyGrid or a *ParseError
// wrapping ErrNonRectangular or ErrInvalidTile (plus the parser's own error).
func Parse[T fmt.Stringer](text string, parse func(rune) (T, error)) (*Grid[T], error) {
	// 1. Split into lines, dropping the terminating newline
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil, ErrEmptyGrid
	}
	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSuffix(lines[i], "\r")
	}

	// 2. Validate shape before parsing any tile
	width := len([]rune(lines[0]))
	if width == 0 {
		return nil, ErrEmptyGrid
	}
	for i, line := range lines {
		if n := len([]rune(line)); n != width {
			return nil, &ParseError{
				Line: i + 1,
				Err:  fmt.Errorf("%w: got %d runes, want %d", ErrNonRectangular, n, width),
			}
		}
	}

	// 3. Parse tiles row by row
	tiles := make([]T, 0, width*len(lines))
	for i, line := range lines {
		col := 0
		for _, r := range line {
			col++
			t, err := parse(r)
			if err != nil {
				return nil, &ParseError{
					Line:   i + 1,
					Column: col,
					Char:   r,
					Err:    fmt.Errorf("%w: %w", ErrInvalidTile, err),
				}
			}
			tiles = append(tiles, t)
		}
	}

	return &Grid[T]{tiles: tiles, width: width, height: len(lines)}, nil
}

// String renders the grid row by row, each tile via its String method,
// with a newline after every row including the last.
func (g *Grid[T]) String() string {
	var sb strings.Builder
	for y := 0; y < g.height; y++ {
		for _, t := range g.tiles[y*g.width : (y+1)*g.width] {
			sb.WriteString(t.String())
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// Width returns the number of columns.
func (g *Grid[T]) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid[T]) Height() int { return g.height }

// Len returns the number of tiles, always Width()*Height().
func (g *Grid[T]) Len() int { return len(g.tiles) }

// InBounds reports whether c lies within the grid.
// Complexity: O(1).
func (g *Grid[T]) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.width && c.Y >= 0 && c.Y < g.height
}

// Index maps c to its row-major index Width*Y + X.
// Returns false if c is out of bounds.
func (g *Grid[T]) Index(c Coord) (int, bool) {
	if !g.InBounds(c) {
		return 0, false
	}
	return g.width*c.Y + c.X, true
}

// Coord converts a row-major index back to a coordinate.
// Returns false if i is outside the tile slice.
func (g *Grid[T]) Coord(i int) (Coord, bool) {
	if i < 0 || i >= len(g.tiles) {
		return Coord{}, false
	}
	return Coord{X: i % g.width, Y: i / g.width}, true
}

// Tile returns the tile at row-major index i.
func (g *Grid[T]) Tile(i int) (T, bool) {
	if i < 0 || i >= len(g.tiles) {
		var zero T
		return zero, false
	}
	return g.tiles[i], true
}

// TileAt returns the tile at c, or false if c is out of bounds.
func (g *Grid[T]) TileAt(c Coord) (T, bool) {
	i, ok := g.Index(c)
	if !ok {
		var zero T
		return zero, false
	}
	return g.tiles[i], true
}

// Neighbor returns the coordinate one step from c in direction d.
// Returns false at the grid edge, for an unknown direction,
// or when c itself is out of bounds.
func (g *Grid[T]) Neighbor(c Coord, d Direction) (Coord, bool) {
	if !g.InBounds(c) || !d.valid() {
		return Coord{}, false
	}
	n := c.Move(d)
	if !g.InBounds(n) {
		return Coord{}, false
	}
	return n, true
}

// Neighbors returns every in-bounds neighbor of c in Directions order.
func (g *Grid[T]) Neighbors(c Coord) []Coord {
	out := make([]Coord, 0, len(Directions))
	for _, d := range Directions {
		if n, ok := g.Neighbor(c, d); ok {
			out = append(out, n)
		}
	}

	return out
}

// NeighborTile returns the tile one step from c in direction d.
func (g *Grid[T]) NeighborTile(c Coord, d Direction) (T, bool) {
	n, ok := g.Neighbor(c, d)
	if !ok {
		var zero T
		return zero, false
	}
	return g.TileAt(n)
}

// All iterates over every cell in row-major order.
func (g *Grid[T]) All() iter.Seq2[Coord, T] {
	return func(yield func(Coord, T) bool) {
		for i, t := range g.tiles {
			if !yield(Coord{X: i % g.width, Y: i / g.width}, t) {
				return
			}
		}
	}
}

// Find returns, in row-major order, the coordinates of every tile
// for which match reports true.
func (g *Grid[T]) Find(match func(T) bool) []Coord {
	var out []Coord
	for c, t := range g.All() {
		if match(t) {
			out = append(out, c)
		}
	}

	return out
}
