// Package trail scores hiking trails on a topographic map built on
// grid.Grid[Tile].
//
// A trail starts at elevation 0, ends at elevation 9 and every step moves
// North, East, South or West onto a tile exactly one higher. That single
// movement rule drives everything in the package:
//
//   - PossibleSteps(c):   neighbors of c one elevation higher, in grid.Directions order.
//   - Walk(start, opts…): explicit-stack depth-first expansion from start that
//     re-expands a coordinate every time a different path reaches it.
//   - ReachableGraph(s):  the step relation discovered by Walk.
//   - Score(s):           distinct End tiles reachable from s.
//   - Rating(s):          distinct trails from s, i.e. End arrivals.
//   - TotalScore / TotalRating: sums over every trail head in row-major order.
//
// Complexity:
//
//   - PossibleSteps: O(1).
//   - Walk, Score, Rating: O(P) where P is the number of distinct paths
//     from start; exponential in the worst case, bounded in depth by 9 steps.
//
// Errors:
//
//   - ErrInvalidElevation    character or value is not an elevation 0..9.
//   - ErrStartOutOfBounds    Walk start coordinate lies outside the map.
//   - hook errors            propagated from OnVisit, wrapped with the coordinate.
package trail
