// Package trail defines the walk options, result types and sentinel errors
// shared by the traversal functions.
package trail

import (
	"errors"
	"io"
	"log/slog"

	"github.com/katalvlaran/tilegrid/grid"
)

var (
	// ErrInvalidElevation is returned when a rune or value is not an elevation 0..9.
	ErrInvalidElevation = errors.New("trail: invalid elevation")

	// ErrStartOutOfBounds indicates that the Walk start coordinate
	// does not lie on the map.
	ErrStartOutOfBounds = errors.New("trail: start coordinate out of bounds")
)

// Graph maps each expanded coordinate to its possible steps.
type Graph map[grid.Coord][]grid.Coord

// Option configures optional behavior of Walk.
type Option func(*WalkOptions)

// WalkOptions holds configurable parameters for Walk.
type WalkOptions struct {
	// OnVisit, if non-nil, is invoked every time a coordinate is popped from
	// the stack, including repeat arrivals along different paths.
	// Returning an error aborts the walk with that error.
	OnVisit func(c grid.Coord, t Tile) error

	// MaxDepth, if non-negative, stops expansion at the given number of
	// steps from start. A depth of 0 visits only the start coordinate.
	// Default is -1 (no limit).
	MaxDepth int

	// Logger receives one Debug record summarizing each walk.
	// Defaults to a logger that discards everything.
	Logger *slog.Logger
}

// DefaultOptions returns a WalkOptions struct with:
//   - No visit hook
//   - No depth limit (MaxDepth = -1)
//   - A discarding logger
func DefaultOptions() WalkOptions {
	return WalkOptions{
		OnVisit:  nil,
		MaxDepth: -1,
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// WithOnVisit returns an Option that installs fn as the visit hook.
func WithOnVisit(fn func(c grid.Coord, t Tile) error) Option {
	return func(o *WalkOptions) {
		o.OnVisit = fn
	}
}

// WithMaxDepth returns an Option that limits expansion depth to limit.
func WithMaxDepth(limit int) Option {
	return func(o *WalkOptions) {
		o.MaxDepth = limit
	}
}

// WithLogger returns an Option that routes walk diagnostics to l.
// Passing nil has no effect.
func WithLogger(l *slog.Logger) Option {
	return func(o *WalkOptions) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WalkResult captures the outcome of a Walk.
type WalkResult struct {
	// Graph is the step relation of every expanded coordinate. End tiles map
	// to an empty slice; coordinates cut off by MaxDepth are absent.
	Graph Graph

	// Ends lists distinct End coordinates in first-arrival order.
	Ends []grid.Coord

	// Arrivals counts every time an End was reached, one per distinct trail.
	Arrivals int

	// Visits counts every coordinate popped, repeats included.
	Visits int
}
