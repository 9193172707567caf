package grid

import "fmt"

// Coord is a zero-based (column, row) position. It is comparable and can be
// used as a map key.
type Coord struct {
	X, Y int
}

// Add returns the component-wise sum c + o.
func (c Coord) Add(o Coord) Coord {
	return Coord{X: c.X + o.X, Y: c.Y + o.Y}
}

// Sub returns the component-wise difference c - o.
func (c Coord) Sub(o Coord) Coord {
	return Coord{X: c.X - o.X, Y: c.Y - o.Y}
}

// Move returns c shifted one step in direction d.
// The result may lie outside any grid (including negative components);
// Grid lookups reject such coordinates via InBounds.
func (c Coord) Move(d Direction) Coord {
	return c.Add(d.Offset())
}

func (c Coord) String() string {
	return fmt.Sprintf("{%d,%d}", c.X, c.Y)
}

// Direction is one of the four cardinal directions.
type Direction int

const (
	// North decreases Y.
	North Direction = iota
	// East increases X.
	East
	// South increases Y.
	South
	// West decreases X.
	West
)

// Directions lists every Direction in the fixed enumeration order
// North, East, South, West. Neighbor enumeration always follows it.
var Directions = [4]Direction{North, East, South, West}

// offsets is indexed by Direction.
var offsets = [4]Coord{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}

var directionNames = [4]string{"North", "East", "South", "West"}

func (d Direction) valid() bool {
	return d >= North && d <= West
}

// Offset returns the unit vector for d, or the zero Coord for an unknown value.
func (d Direction) Offset() Coord {
	if !d.valid() {
		return Coord{}
	}
	return offsets[d]
}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	if !d.valid() {
		return d
	}
	return (d + 2) % 4
}

// TurnRight returns the direction 90° clockwise from d.
func (d Direction) TurnRight() Direction {
	if !d.valid() {
		return d
	}
	return (d + 1) % 4
}

func (d Direction) String() string {
	if !d.valid() {
		return fmt.Sprintf("Direction(%d)", int(d))
	}
	return directionNames[d]
}
