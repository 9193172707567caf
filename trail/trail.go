package trail

import "github.com/katalvlaran/tilegrid/grid"

// Map is a topographic map of elevation tiles. It is immutable once built.
type Map struct {
	g *grid.Grid[Tile]
}

// NewMap wraps an existing elevation grid.
func NewMap(g *grid.Grid[Tile]) *Map {
	return &Map{g: g}
}

// ParseMap parses rows of digits into a Map.
// Errors are those of grid.Parse; a non-digit wraps ErrInvalidElevation.
func ParseMap(text string) (*Map, error) {
	g, err := grid.Parse(text, ParseTile)
	if err != nil {
		return nil, err
	}
	return &Map{g: g}, nil
}

// Grid returns the underlying grid.
func (m *Map) Grid() *grid.Grid[Tile] { return m.g }

func (m *Map) String() string { return m.g.String() }

// TrailHeads returns every Start coordinate in row-major order.
func (m *Map) TrailHeads() []grid.Coord {
	return m.g.Find(func(t Tile) bool { return t.Kind() == KindStart })
}

// PossibleSteps returns the neighbors of c whose elevation is exactly one
// higher, in grid.Directions order. An End tile or a coordinate off the map
// has no steps.
func (m *Map) PossibleSteps(c grid.Coord) []grid.Coord {
	t, ok := m.g.TileAt(c)
	if !ok || t.Kind() == KindEnd {
		return nil
	}
	var steps []grid.Coord
	for _, n := range m.g.Neighbors(c) {
		nt, _ := m.g.TileAt(n)
		if t.Gradient(nt) == 1 {
			steps = append(steps, n)
		}
	}

	return steps
}

// ReachableGraph returns the step relation of every coordinate reachable
// from start. A start off the map yields an empty Graph.
func (m *Map) ReachableGraph(start grid.Coord) Graph {
	res, err := m.Walk(start)
	if err != nil {
		return Graph{}
	}
	return res.Graph
}

// Score counts the distinct End tiles reachable from start.
func (m *Map) Score(start grid.Coord) int {
	res, err := m.Walk(start)
	if err != nil {
		return 0
	}
	return len(res.Ends)
}

// Rating counts the distinct trails from start to any End tile.
func (m *Map) Rating(start grid.Coord) int {
	res, err := m.Walk(start)
	if err != nil {
		return 0
	}
	return res.Arrivals
}

// TotalScore sums Score over every trail head.
func (m *Map) TotalScore() int {
	total := 0
	for _, h := range m.TrailHeads() {
		total += m.Score(h)
	}

	return total
}

// TotalRating sums Rating over every trail head.
func (m *Map) TotalRating() int {
	total := 0
	for _, h := range m.TrailHeads() {
		total += m.Rating(h)
	}

	return total
}
