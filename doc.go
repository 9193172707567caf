// Package tilegrid is a small toolkit for puzzle-style 2D maps: parse a block
// of text into a typed grid, walk it with bounds-checked neighbor lookups,
// and build traversals on top.
//
// Under the hood, everything is organized under two subpackages:
//
//	grid/  — Grid[T], Coord, Direction: row-major storage, N/E/S/W neighbors, Parse/String
//	trail/ — elevation tiles and one-step-up trail walks: Score, Rating, ReachableGraph
//
// Quick example:
//
//	m, err := trail.ParseMap(input)
//	if err != nil {
//		// grid.ErrNonRectangular, trail.ErrInvalidElevation, ...
//	}
//	fmt.Println(m.TotalScore(), m.TotalRating())
//
//	go get github.com/katalvlaran/tilegrid
package tilegrid
