// Package grid provides an immutable, generic 2D grid of tiles with
// coordinate arithmetic and 4-directional neighbor lookup.
//
// What:
//
//   - Grid[T] stores Width×Height tiles in a flat row-major slice.
//   - Coord{X, Y} identifies a cell; index = Width*Y + X.
//   - Direction enumerates North, East, South, West in that fixed order.
//   - Parse builds a grid from text, one rune per cell, via a caller-supplied
//     rune parser; String renders it back.
//
// Why:
//
//   - Puzzle maps, game boards and terrain grids all reduce to the same
//     bounds-checked lookups.
//   - A fixed neighbor order makes every traversal built on top deterministic.
//
// Lookups never fail loudly: a coordinate or index outside the grid yields
// (zero, false), and callers treat that branch as empty.
//
// Complexity:
//
//   - Parse, New, String, Find: O(W×H) time and memory.
//   - TileAt, Index, Coord, Neighbor, NeighborTile: O(1).
//   - Neighbors: O(1), at most 4 results.
//
// Errors:
//
//   - ErrEmptyGrid: no rows, or a zero-length first row.
//   - ErrNonRectangular: a row's length differs from the first row.
//   - ErrTileCount: New received len(tiles) != width*height.
//   - ErrInvalidTile: the rune parser rejected a character.
//   - *ParseError: position of the failing character or row; wraps one of the above.
package grid
