package trail

import (
	"cmp"
	"fmt"
	"strconv"
)

// Kind tags which variant a Tile is.
type Kind int

const (
	KindStart Kind = iota // KindStart: elevation 0, a trail head.
	KindPath              // KindPath: elevation 1 through 8.
	KindEnd               // KindEnd: elevation 9, where a trail finishes.
)

const (
	minElevation = 0
	maxElevation = 9
)

// Tile is one cell of a topographic map. The zero value is Start().
type Tile struct {
	kind   Kind
	height int
}

// Start returns the elevation-0 tile.
func Start() Tile { return Tile{kind: KindStart, height: minElevation} }

// End returns the elevation-9 tile.
func End() Tile { return Tile{kind: KindEnd, height: maxElevation} }

// Path returns an intermediate tile. It panics unless 1 <= n <= 8;
// use FromElevation for untrusted values.
func Path(n int) Tile {
	if n <= minElevation || n >= maxElevation {
		panic(fmt.Sprintf("trail: Path elevation %d outside 1..8", n))
	}
	return Tile{kind: KindPath, height: n}
}

// FromElevation returns the tile variant for elevation n.
// Returns ErrInvalidElevation if n is outside 0..9.
func FromElevation(n int) (Tile, error) {
	switch {
	case n == minElevation:
		return Start(), nil
	case n == maxElevation:
		return End(), nil
	case n > minElevation && n < maxElevation:
		return Path(n), nil
	}
	return Tile{}, fmt.Errorf("%w: %d", ErrInvalidElevation, n)
}

// ParseTile maps a digit rune '0'..'9' to its tile.
func ParseTile(r rune) (Tile, error) {
	if r < '0' || r > '9' {
		return Tile{}, fmt.Errorf("%w: %q", ErrInvalidElevation, r)
	}
	return FromElevation(int(r - '0'))
}

// Kind reports the tile variant.
func (t Tile) Kind() Kind { return t.kind }

// Elevation returns the height, 0..9.
func (t Tile) Elevation() int { return t.height }

// Gradient returns o's elevation minus t's. A valid step has gradient 1.
func (t Tile) Gradient(o Tile) int {
	return o.height - t.height
}

// Compare orders tiles by elevation only.
func (t Tile) Compare(o Tile) int {
	return cmp.Compare(t.height, o.height)
}

// Equal reports whether both tiles share an elevation.
func (t Tile) Equal(o Tile) bool {
	return t.height == o.height
}

func (t Tile) String() string {
	return strconv.Itoa(t.height)
}

func (k Kind) String() string {
	switch k {
	case KindStart:
		return "Start"
	case KindPath:
		return "Path"
	case KindEnd:
		return "End"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}
