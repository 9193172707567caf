package grid

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrTileCount indicates a tile slice whose length is not width*height.
	ErrTileCount = errors.New("grid: tile count does not match dimensions")
	// ErrInvalidTile indicates a character the tile parser rejected.
	ErrInvalidTile = errors.New("grid: invalid tile character")
)

// ParseError reports where Parse failed. Line and Column are 1-based;
// Column is 0 for row-level failures such as ErrNonRectangular.
type ParseError struct {
	Line, Column int
	Char         rune
	Err          error
}

func (e *ParseError) Error() string {
	if e.Column == 0 {
		return fmt.Sprintf("grid: line %d: %v", e.Line, e.Err)
	}
	return fmt.Sprintf("grid: line %d, column %d (%q): %v", e.Line, e.Column, e.Char, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
